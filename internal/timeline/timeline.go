// Package timeline implements the per-author activity timeline: an
// ordered, append-only log of "now working on X" events, and the time
// computation folded over it.
package timeline

import (
	"sort"

	"github.com/xeruf/mostr-go/internal/event"
)

// Timeline is one author's ordered set of tracking events (kind 1650),
// ordered by (created_at, id). Append-only; never evicts.
type Timeline struct {
	events []event.Event
	seen map[event.ID]bool
}

// New creates an empty timeline.
func New() *Timeline {
	return &Timeline{seen: make(map[event.ID]bool)}
}

// Add idempotently appends a tracking event, keeping (created_at, id)
// order.
func (tl *Timeline) Add(ev event.Event) {
	if tl.seen[ev.ID] {
		return
	}
	tl.seen[ev.ID] = true
	tl.events = append(tl.events, ev)
	sort.SliceStable(tl.events, func(i, j int) bool {
		return event.Less(tl.events[i], tl.events[j])
	})
}

// Events returns the retained tracking events in timestamp order.
func (tl *Timeline) Events() []event.Event {
	return tl.events
}

// TaskAt returns the task id a tracking event refers to, or false if the
// event is a tag-less "stop" marker.
func TaskAt(ev event.Event) (event.ID, bool) {
	tag, ok := ev.FirstEventTag()
	if !ok {
		return event.ID{}, false
	}
	return tag.EventID, true
}

// TimeTracked scans the timeline in timestamp order, accumulating the
// duration spent on any task id in target:
//
// - entering a tracking event whose task is in target while unstarted
// sets "started at" to that event's time;
// - any tracking event whose task is NOT in target (including a
// tag-less stop) while started closes the interval;
// - a still-open interval at the end is closed at `now`.
//
// Durations are unsigned; nowSec must be >= every event's CreatedAt for
// the result to be meaningful, but the function never produces a
// negative total regardless.
func (tl *Timeline) TimeTracked(target map[event.ID]bool, nowSec int64) int64 {
	var total int64
	var started int64
	haveStart := false
	for _, ev := range tl.events {
		id, ok := TaskAt(ev)
		inTarget := ok && target[id]
		if inTarget {
			if !haveStart {
				started = ev.CreatedAt
				haveStart = true
			}
			continue
		}
		if haveStart {
			total += clampNonNegative(ev.CreatedAt - started)
			haveStart = false
		}
	}
	if haveStart {
		total += clampNonNegative(nowSec - started)
	}
	return total
}

func clampNonNegative(d int64) int64 {
	if d < 0 {
		return 0
	}
	return d
}
