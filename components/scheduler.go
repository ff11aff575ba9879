package components

import "github.com/yohamta/donburi"

// SchedulerData holds the two launch rate gates, counted in ticks.
type SchedulerData struct {
	AutoTick   int
	AutoPeriod int

	PointerTick  int
	PointerLimit int
}

var Scheduler = donburi.NewComponentType[SchedulerData]()

// Step advances both gates by one tick and reports which of them fire.
// Counters only climb while below their threshold; at the threshold they wait
// for their condition. The auto gate therefore pauses while the pointer is
// held and fires on the first tick after release.
func (s *SchedulerData) Step(held bool) (auto, pointer bool) {
	if s.AutoTick < s.AutoPeriod {
		s.AutoTick++
	}
	if s.AutoTick >= s.AutoPeriod && !held {
		auto = true
		s.AutoTick = 0
	}

	if s.PointerTick < s.PointerLimit {
		s.PointerTick++
	}
	if s.PointerTick >= s.PointerLimit && held {
		pointer = true
		s.PointerTick = 0
	}
	return auto, pointer
}
