package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/fireworks/components"
	cfg "github.com/automoto/fireworks/config"
	"github.com/automoto/fireworks/fonts"
	"github.com/automoto/fireworks/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowOverlay lays out the greetings and shows them together with the
// instruction banner. Calling it again once visible does nothing.
func ShowOverlay(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}
	entry, ok := components.Greeting.First(e.World)
	if !ok {
		return
	}

	greeting := components.Greeting.Get(entry)
	if greeting.Visible {
		return
	}
	greeting.Items = LayoutGreetings(ctx.show.Rand, cfg.Greetings)
	greeting.Elapsed = 0
	greeting.Visible = true

	if entry.HasComponent(components.Instruction) {
		instruction := components.Instruction.Get(entry)
		if !instruction.Dismissed {
			instruction.Visible = true
			instruction.Alpha = 1
		}
	}
}

// LayoutGreetings places the first greeting as the centred headline and
// scatters the rest around it.
func LayoutGreetings(rng *rand.Rand, greetings []cfg.GreetingText) []components.GreetingItem {
	g := cfg.Greeting
	items := make([]components.GreetingItem, 0, len(greetings))

	for i, gt := range greetings {
		item := components.GreetingItem{
			Text:       gt.Text,
			Lang:       gt.Lang,
			PulseDelay: gamemath.RandRange(rng, 0, g.PulseDelayMax),
		}

		if i == 0 {
			item.Headline = true
			item.Top, item.Left = 50, 50
			item.Scale = g.MainScale
			item.Color = cfg.HeadlinePalette[rng.Intn(len(cfg.HeadlinePalette))]
			item.ShineDelay = gamemath.RandRange(rng, 0, g.PulseDelayMax)
		} else {
			item.Top, item.Left = PlaceGreeting(rng)
			item.Rotation = gamemath.RandRange(rng, -g.RotationMax, g.RotationMax)
			item.Scale = gamemath.RandRange(rng, g.ScaleMin, g.ScaleMax)
			item.Color = cfg.GreetingPalette[rng.Intn(len(cfg.GreetingPalette))]
			item.ShineDelay = gamemath.RandRange(rng, 0, g.ShineDelayMax)
		}

		period := gamemath.RandRange(rng, g.PulseSecondsMin, g.PulseSecondsMax)
		item.PopIn = gween.New(0, 1, g.PopInSeconds, ease.OutBack)
		item.Pulse = newPulse(float32(period), g.PulseAmount)

		items = append(items, item)
	}
	return items
}

func newPulse(period, amount float32) *gween.Sequence {
	return gween.NewSequence(
		gween.New(1, 1+amount, period/2, ease.InOutSine),
		gween.New(1+amount, 1, period/2, ease.InOutSine),
	)
}

// PlaceGreeting samples a position in percent of the viewport outside the
// central exclusion zone. Sampling is bounded by MaxAttempts; after that the
// greeting is pinned to the fallback row at the last sampled left.
func PlaceGreeting(rng *rand.Rand) (top, left float64) {
	g := cfg.Greeting
	for i := 0; i < g.MaxAttempts; i++ {
		top = gamemath.RandRange(rng, g.SampleMin, g.SampleMax)
		left = gamemath.RandRange(rng, g.SampleMin, g.SampleMax)
		if !InExclusionZone(top, left) {
			return top, left
		}
	}
	return g.FallbackTop, left
}

// InExclusionZone reports whether a position falls in the area kept clear for the headline.
func InExclusionZone(top, left float64) bool {
	g := cfg.Greeting
	return top >= g.ExcludeTop[0] && top <= g.ExcludeTop[1] &&
		left >= g.ExcludeLeft[0] && left <= g.ExcludeLeft[1]
}

// UpdateGreetings advances the pop-in, pulse and shine animations.
func UpdateGreetings(e *ecs.ECS) {
	entry, ok := components.Greeting.First(e.World)
	if !ok {
		return
	}
	greeting := components.Greeting.Get(entry)
	if !greeting.Visible {
		return
	}

	dt := tickSeconds()
	greeting.Elapsed += float64(dt)

	for i := range greeting.Items {
		item := &greeting.Items[i]

		pop, _ := item.PopIn.Update(dt)
		pulse := float32(1)
		if greeting.Elapsed >= item.PulseDelay {
			v, _, done := item.Pulse.Update(dt)
			pulse = v
			if done {
				item.Pulse.Reset()
			}
		}
		item.CurrentScale = pop * pulse
		item.Shine = ShineLevel(greeting.Elapsed - item.ShineDelay)
	}
}

// ShineLevel is the highlight strength t seconds after the first shine: a
// short triangular sweep repeated every ShinePeriod.
func ShineLevel(t float64) float32 {
	g := cfg.Greeting
	if t < 0 || g.ShineSeconds <= 0 {
		return 0
	}
	phase := math.Mod(t, g.ShinePeriod)
	if phase > g.ShineSeconds {
		return 0
	}
	return float32(1 - math.Abs(2*phase/g.ShineSeconds-1))
}

// DrawGreetings renders every placed greeting centred on its anchor, scaled and rotated.
func DrawGreetings(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Greeting.First(e.World)
	if !ok {
		return
	}
	greeting := components.Greeting.Get(entry)
	source := fonts.GreetingSource()
	if !greeting.Visible || source == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	for i := range greeting.Items {
		item := &greeting.Items[i]
		if item.CurrentScale <= 0 {
			continue
		}

		face := &text.GoTextFace{Source: source, Size: cfg.Greeting.BaseFontSize * item.Scale}
		w, h := text.Measure(item.Text, face, 0)

		op := &text.DrawOptions{}
		op.GeoM.Translate(-w/2, -h/2)
		op.GeoM.Scale(float64(item.CurrentScale), float64(item.CurrentScale))
		op.GeoM.Rotate(item.Rotation * math.Pi / 180)
		op.GeoM.Translate(item.Left/100*width, item.Top/100*height)

		op.ColorScale.ScaleWithColor(item.Color)
		if item.Shine > 0 {
			boost := 1 + item.Shine*cfg.Greeting.ShineBoost
			op.ColorScale.Scale(boost, boost, boost, 1)
		}
		text.Draw(screen, item.Text, face, op)
	}
}
