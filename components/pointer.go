package components

import "github.com/yohamta/donburi"

// PointerData is the latest pointer state as seen by the show.
type PointerData struct {
	X, Y float64

	// Held is only set by a press that happened while the event was active
	Held bool

	// RawPressed is the device state last tick, for edge detection
	RawPressed bool
}

var Pointer = donburi.NewComponentType[PointerData]()
