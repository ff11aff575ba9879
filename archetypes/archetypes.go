package archetypes

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Launch = newArchetype(
		tags.Launch,
		components.Launch,
		components.Trail,
	)
	Spark = newArchetype(
		tags.Spark,
		components.Spark,
		components.Trail,
	)
	Show = newArchetype(
		components.Show,
		components.Viewport,
		components.Surface,
	)
	Controls = newArchetype(
		components.Pointer,
		components.Scheduler,
	)
	Gate = newArchetype(
		components.EventGate,
		components.Countdown,
	)
	Overlay = newArchetype(
		components.Greeting,
		components.Instruction,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
