package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CountdownData is the text shown while the event gate is closed.
type CountdownData struct {
	Visible bool
	Days    int
	Hours   string
	Minutes string
	Seconds string
}

var Countdown = donburi.NewComponentType[CountdownData]()

// GreetingItem is one placed greeting. Top and Left are percentages of the viewport.
type GreetingItem struct {
	Text     string
	Lang     string
	Headline bool

	Top, Left float64
	Rotation  float64 // degrees
	Scale     float64
	Color     color.RGBA

	PulseDelay float64 // seconds before the pulse starts
	ShineDelay float64 // seconds before the first shine

	// Animation state
	PopIn        *gween.Tween
	Pulse        *gween.Sequence
	CurrentScale float32 // pop-in times pulse
	Shine        float32 // 0 = none, 1 = full highlight
}

// GreetingData is the overlay shown once the event starts. Once visible it stays visible.
type GreetingData struct {
	Visible bool
	Elapsed float64 // seconds since shown
	Items   []GreetingItem
}

var Greeting = donburi.NewComponentType[GreetingData]()

// InstructionData is the "click to launch" banner.
type InstructionData struct {
	Visible   bool
	Dismissed bool // set by the first honoured pointer press
	Alpha     float32
	Fade      *gween.Tween
}

var Instruction = donburi.NewComponentType[InstructionData]()
