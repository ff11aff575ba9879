package systems

import (
	"fmt"

	"github.com/automoto/fireworks/components"
	"github.com/automoto/fireworks/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay with F3.
func UpdateDebug(ecs *ecs.ECS) {
	if !inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		return
	}
	entry, ok := components.Show.First(ecs.World)
	if !ok {
		return
	}
	show := components.Show.Get(entry)
	show.Debug = !show.Debug
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Show.First(ecs.World)
	if !ok || !components.Show.Get(entry).Debug {
		return
	}
	ebitenutil.DebugPrintAt(screen, DebugStats(ecs), 4, 4)
}

// DebugStats summarises the live simulation state.
func DebugStats(ecs *ecs.ECS) string {
	launches, sparks := 0, 0
	tags.Launch.Each(ecs.World, func(*donburi.Entry) { launches++ })
	tags.Spark.Each(ecs.World, func(*donburi.Entry) { sparks++ })

	var hue float64
	var ticks int
	if ctx, ok := getShowContext(ecs); ok {
		hue = ctx.show.Hue
		ticks = ctx.show.Ticks
	}

	return fmt.Sprintf("TPS %.1f FPS %.1f\ntick %d hue %.1f\nevent %v\nlaunches %d sparks %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), ticks, hue, IsEventActive(ecs), launches, sparks)
}
