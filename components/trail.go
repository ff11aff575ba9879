package components

import (
	"github.com/automoto/fireworks/render"
	"github.com/yohamta/donburi"
)

// TrailData is a fixed-capacity history of recent positions, newest first.
// It is full from construction on, so Len always equals the capacity.
type TrailData struct {
	points []render.Point
}

var Trail = donburi.NewComponentType[TrailData]()

// NewTrail returns a trail of the given capacity with every slot set to p.
func NewTrail(capacity int, p render.Point) TrailData {
	if capacity < 1 {
		capacity = 1
	}
	points := make([]render.Point, capacity)
	for i := range points {
		points[i] = p
	}
	return TrailData{points: points}
}

// Push evicts the oldest position and inserts p as the newest.
func (t *TrailData) Push(p render.Point) {
	copy(t.points[1:], t.points[:len(t.points)-1])
	t.points[0] = p
}

// Oldest returns the oldest retained position, where the streak starts.
func (t *TrailData) Oldest() render.Point {
	return t.points[len(t.points)-1]
}

// Newest returns the most recently pushed position.
func (t *TrailData) Newest() render.Point {
	return t.points[0]
}

func (t *TrailData) Len() int {
	return len(t.points)
}

// Cap returns the fixed capacity chosen at construction.
func (t *TrailData) Cap() int {
	return cap(t.points)
}
