package systems

import (
	"fmt"
	"time"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateCountdown refreshes the countdown text while the gate is closed.
func UpdateCountdown(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}
	entry, ok := components.EventGate.First(e.World)
	if !ok || !entry.HasComponent(components.Countdown) {
		return
	}

	gate := components.EventGate.Get(entry)
	countdown := components.Countdown.Get(entry)
	if gate.Active {
		countdown.Visible = false
		return
	}

	next := FormatCountdown(gate.Remaining(ctx.show.Clock.Now()))
	next.Visible = countdown.Visible
	*countdown = next
}

// FormatCountdown splits d into whole days and two-digit hours, minutes and seconds.
// Hours wrap at a day; the days are carried separately.
func FormatCountdown(d time.Duration) components.CountdownData {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)

	return components.CountdownData{
		Days:    int(total / 86400),
		Hours:   fmt.Sprintf("%02d", (total/3600)%24),
		Minutes: fmt.Sprintf("%02d", (total/60)%60),
		Seconds: fmt.Sprintf("%02d", total%60),
	}
}

// CountdownString renders the countdown as HH:MM:SS, prefixed with the days when there are any.
func CountdownString(c components.CountdownData) string {
	s := c.Hours + ":" + c.Minutes + ":" + c.Seconds
	if c.Days > 0 {
		s = fmt.Sprintf("%dd %s", c.Days, s)
	}
	return s
}

// DrawCountdown renders the label and the remaining time in the middle of the screen.
func DrawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Countdown.First(e.World)
	if !ok {
		return
	}
	countdown := components.Countdown.Get(entry)
	if !countdown.Visible || !fonts.Loaded(fonts.Digits) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	labelFont := fonts.Label.Get()
	label := cfg.Countdown.Label
	labelY := int(height/2 - cfg.Countdown.FontSize/2 - cfg.Countdown.LabelSize)
	text.Draw(screen, label, labelFont, centerTextX(label, labelFont, width), labelY, cfg.Countdown.LabelColor)

	digitFont := fonts.Digits.Get()
	digits := CountdownString(*countdown)
	digitsY := int(height/2 + cfg.Countdown.FontSize/2)
	text.Draw(screen, digits, digitFont, centerTextX(digits, digitFont, width), digitsY, cfg.Countdown.TextColor)
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}
