package systems

import (
	"github.com/automoto/fireworks/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// PointerSource is the device the show reads its pointer from.
type PointerSource interface {
	Position() (x, y int)
	Pressed() bool
}

// EbitenPointer reads the mouse, or the first active touch when there is one.
type EbitenPointer struct {
	touches []ebiten.TouchID
}

func (p *EbitenPointer) Position() (int, int) {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		return ebiten.TouchPosition(p.touches[0])
	}
	return ebiten.CursorPosition()
}

func (p *EbitenPointer) Pressed() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	return len(p.touches) > 0
}

// NewUpdateInput returns a system that copies src into the pointer component.
func NewUpdateInput(src PointerSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Pointer.First(e.World)
		if !ok {
			return
		}
		x, y := src.Position()
		if ApplyPointer(components.Pointer.Get(entry), x, y, src.Pressed(), IsEventActive(e)) {
			DismissInstruction(e)
		}
	}
}

// ApplyPointer updates p from one device sample and reports whether a press was
// honoured this tick. Presses only count while the event is active; releases
// always clear the held flag.
func ApplyPointer(p *components.PointerData, x, y int, pressed, active bool) (honoured bool) {
	p.X = float64(x)
	p.Y = float64(y)

	justPressed := pressed && !p.RawPressed
	p.RawPressed = pressed

	if !pressed {
		p.Held = false
		return false
	}
	if justPressed && active {
		p.Held = true
		return true
	}
	return false
}
