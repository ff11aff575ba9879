package systems

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// imageCanvas is a canvas backed by an ebiten image.
type imageCanvas interface {
	Image() *ebiten.Image
}

// DrawSurface blits the persistent firework surface onto the screen.
// All entity drawing happens on the surface during Update.
func DrawSurface(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Surface.First(ecs.World)
	if !ok {
		return
	}
	canvas, ok := components.Surface.Get(entry).Canvas.(imageCanvas)
	if !ok {
		return
	}

	screen.Fill(cfg.Surface.Background)
	drawOp.GeoM.Reset()
	screen.DrawImage(canvas.Image(), drawOp)
}
