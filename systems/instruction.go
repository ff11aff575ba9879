package systems

import (
	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Banner draws the instruction banner at the given opacity.
type Banner interface {
	Draw(screen *ebiten.Image, alpha float32)
}

// DismissInstruction starts fading the banner out. Only the first call has an effect.
func DismissInstruction(e *ecs.ECS) {
	entry, ok := components.Instruction.First(e.World)
	if !ok {
		return
	}
	instruction := components.Instruction.Get(entry)
	if instruction.Dismissed {
		return
	}
	instruction.Dismissed = true
	if !instruction.Visible {
		return
	}
	instruction.Fade = gween.New(instruction.Alpha, 0, cfg.Instruction.FadeSeconds, ease.Linear)
}

// UpdateInstruction advances the fade and hides the banner once it is transparent.
func UpdateInstruction(e *ecs.ECS) {
	entry, ok := components.Instruction.First(e.World)
	if !ok {
		return
	}
	instruction := components.Instruction.Get(entry)
	if instruction.Fade == nil {
		return
	}

	alpha, done := instruction.Fade.Update(tickSeconds())
	instruction.Alpha = alpha
	if done {
		instruction.Alpha = 0
		instruction.Visible = false
		instruction.Fade = nil
	}
}

// NewDrawInstruction returns a renderer that draws banner while the instruction is visible.
func NewDrawInstruction(banner Banner) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Instruction.First(e.World)
		if !ok {
			return
		}
		instruction := components.Instruction.Get(entry)
		if !instruction.Visible || instruction.Alpha <= 0 {
			return
		}
		banner.Draw(screen, instruction.Alpha)
	}
}
