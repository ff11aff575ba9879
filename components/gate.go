package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// EventGateData opens once when the clock reaches Target and never closes again.
type EventGateData struct {
	Target time.Time
	Active bool
}

var EventGate = donburi.NewComponentType[EventGateData]()

// Observe checks now against the target and reports whether this call opened the gate.
func (g *EventGateData) Observe(now time.Time) (opened bool) {
	if g.Active {
		return false
	}
	if now.Before(g.Target) {
		return false
	}
	g.Active = true
	return true
}

// Remaining returns the time left until the target, never negative.
func (g *EventGateData) Remaining(now time.Time) time.Duration {
	d := g.Target.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
