package timeline

import (
	"testing"

	"github.com/xeruf/mostr-go/internal/event"
)

// One author, tracking events at t=0 (tag->A), t=60 (no tag),
// t=120 (tag->B), t=180 (tag->A), now=300.
func TestTimeTrackedScenario(t *testing.T) {
	a := event.ID{0xA}
	b := event.ID{0xB}
	tl := New()
	tl.Add(event.Event{ID: event.ID{1}, CreatedAt: 0, Tags: []event.Tag{event.EventTag(a, "")}})
	tl.Add(event.Event{ID: event.ID{2}, CreatedAt: 60})
	tl.Add(event.Event{ID: event.ID{3}, CreatedAt: 120, Tags: []event.Tag{event.EventTag(b, "")}})
	tl.Add(event.Event{ID: event.ID{4}, CreatedAt: 180, Tags: []event.Tag{event.EventTag(a, "")}})

	timeA := tl.TimeTracked(map[event.ID]bool{a: true}, 300)
	if timeA != 180 {
		t.Fatalf("time(A) = %d, want 180 (60 + 120)", timeA)
	}
	timeB := tl.TimeTracked(map[event.ID]bool{b: true}, 300)
	if timeB != 60 {
		t.Fatalf("time(B) = %d, want 60", timeB)
	}
}

func TestTimeTrackedNeverNegative(t *testing.T) {
	a := event.ID{0xA}
	tl := New()
	tl.Add(event.Event{ID: event.ID{1}, CreatedAt: 500, Tags: []event.Tag{event.EventTag(a, "")}})
	got := tl.TimeTracked(map[event.ID]bool{a: true}, 100)
	if got != 0 {
		t.Fatalf("expected clamped 0 when now precedes start, got %d", got)
	}
}

func TestTimeTrackedIdempotentAdd(t *testing.T) {
	a := event.ID{0xA}
	tl := New()
	ev := event.Event{ID: event.ID{1}, CreatedAt: 0, Tags: []event.Tag{event.EventTag(a, "")}}
	tl.Add(ev)
	tl.Add(ev)
	if len(tl.Events()) != 1 {
		t.Fatalf("expected dedup, got %d events", len(tl.Events()))
	}
}

func TestTimeTrackedOpenIntervalAtQueryTime(t *testing.T) {
	a := event.ID{0xA}
	tl := New()
	tl.Add(event.Event{ID: event.ID{1}, CreatedAt: 400, Tags: []event.Tag{event.EventTag(a, "")}})
	got := tl.TimeTracked(map[event.ID]bool{a: true}, 500)
	if got != 100 {
		t.Fatalf("expected 100s open interval, got %d", got)
	}
}
