package systems

import (
	"testing"
	"time"

	cfg "github.com/automoto/fireworks/config"
)

func TestEventStartsOnFirstFrameWhenTargetIsNow(t *testing.T) {
	s := newTestShow(testNow)
	s.tick(1)

	if !s.gate().Active {
		t.Fatal("expected the event active after the first frame")
	}
	greeting := s.greeting()
	if !greeting.Visible {
		t.Fatal("expected the greeting overlay visible")
	}
	if len(greeting.Items) != len(cfg.Greetings) {
		t.Fatalf("expected %d greetings, got %d", len(cfg.Greetings), len(greeting.Items))
	}
	if !s.instruction().Visible {
		t.Error("expected the instruction banner visible")
	}

	// The layout happens once; later frames only animate it
	first := &greeting.Items[0]
	s.clock.Set(testNow.Add(-time.Hour))
	s.tick(30)

	if !s.gate().Active {
		t.Error("expected the gate to stay open when the clock goes back")
	}
	if &s.greeting().Items[0] != first {
		t.Error("expected the greetings not to be laid out again")
	}
}

func TestCountdownHidesWhenEventStarts(t *testing.T) {
	s := newTestShow(testNow.Add(3 * time.Second))

	s.tick(1)
	countdown := s.countdown()
	if !countdown.Visible {
		t.Fatal("expected the countdown visible before the event")
	}
	if countdown.Seconds != "03" || countdown.Minutes != "00" || countdown.Hours != "00" {
		t.Errorf("expected 00:00:03, got %s", CountdownString(*countdown))
	}

	s.clock.Advance(3 * time.Second)
	s.tick(1)
	if s.countdown().Visible {
		t.Error("expected the countdown hidden once the event started")
	}
	if !s.greeting().Visible {
		t.Error("expected greetings shown once the event started")
	}
}
