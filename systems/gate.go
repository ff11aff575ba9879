package systems

import (
	"log"
	"time"

	"github.com/automoto/fireworks/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEventGate checks the clock against the target. On the tick the gate
// opens it hides the countdown and shows the greeting overlay; neither is
// reverted afterwards.
func UpdateEventGate(e *ecs.ECS) {
	ctx, ok := getShowContext(e)
	if !ok {
		return
	}
	entry, ok := components.EventGate.First(e.World)
	if !ok {
		return
	}

	gate := components.EventGate.Get(entry)
	if !gate.Observe(ctx.show.Clock.Now()) {
		return
	}

	log.Printf("Event started (target %s)", gate.Target.Format(time.RFC3339))

	if entry.HasComponent(components.Countdown) {
		components.Countdown.Get(entry).Visible = false
	}
	ShowOverlay(e)
}
