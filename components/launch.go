package components

import (
	"github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/render"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LaunchData is a rocket travelling in a straight line from Start to Target,
// accelerating every tick until it arrives and detonates.
type LaunchData struct {
	Position render.Point
	Start    render.Point
	Target   render.Point

	DistanceToTarget float64 // fixed at creation
	DistanceTraveled float64 // predicted distance from Start after the latest advance

	Angle       float64 // radians, Start toward Target
	Speed       float64
	SpeedGrowth float64
	Brightness  float64 // HSL lightness percent

	// Pulsing indicator drawn at Target
	TargetRadius float64
}

var Launch = donburi.NewComponentType[LaunchData]()

// NewLaunch builds a launch at rest on start using the configured speeds.
func NewLaunch(start, target render.Point, brightness float64) LaunchData {
	return LaunchData{
		Position:         start,
		Start:            start,
		Target:           target,
		DistanceToTarget: start.DistanceTo(target),
		Angle:            gamemath.Heading(start.X, start.Y, target.X, target.Y),
		Speed:            config.Launch.InitialSpeed,
		SpeedGrowth:      config.Launch.SpeedGrowth,
		Brightness:       brightness,
		TargetRadius:     config.Launch.RadiusMin,
	}
}

// Advance moves the launch one tick and reports whether it has arrived.
// Arrival is decided on the predicted next position, so an arriving launch
// never moves past its target; it stays where it was and should detonate at Target.
func (l *LaunchData) Advance(trail *TrailData) (arrived bool) {
	trail.Push(l.Position)

	if l.TargetRadius < config.Launch.RadiusMax {
		l.TargetRadius += config.Launch.RadiusStep
	} else {
		l.TargetRadius = config.Launch.RadiusMin
	}

	l.Speed *= l.SpeedGrowth
	vx, vy := gamemath.Velocity(l.Angle, l.Speed)

	next := render.Point{X: l.Position.X + vx, Y: l.Position.Y + vy}
	l.DistanceTraveled = l.Start.DistanceTo(next)
	if l.DistanceTraveled >= l.DistanceToTarget {
		return true
	}

	l.Position = next
	return false
}
