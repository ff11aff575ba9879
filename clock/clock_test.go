package clock

import (
	"testing"
	"time"
)

func TestNextNewYear(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	now := time.Date(2026, time.October, 19, 15, 4, 5, 0, loc)

	got := NextNewYear(now)
	want := time.Date(2027, time.January, 1, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != loc {
		t.Errorf("expected location %v, got %v", loc, got.Location())
	}
}

func TestNextNewYearOnNewYearsDay(t *testing.T) {
	now := time.Date(2027, time.January, 1, 0, 0, 1, 0, time.UTC)

	got := NextNewYear(now)
	if got.Year() != 2028 {
		t.Errorf("expected 2028, got %d", got.Year())
	}
}

func TestMockAdvanceAndSet(t *testing.T) {
	start := time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)
	m := NewMock(start)

	if !m.Now().Equal(start) {
		t.Fatalf("expected %v, got %v", start, m.Now())
	}

	m.Advance(2 * time.Second)
	if want := start.Add(2 * time.Second); !m.Now().Equal(want) {
		t.Errorf("expected %v after Advance, got %v", want, m.Now())
	}

	m.Set(start)
	if !m.Now().Equal(start) {
		t.Errorf("expected %v after Set, got %v", start, m.Now())
	}
}
