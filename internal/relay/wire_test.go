package relay

import (
	"testing"

	"github.com/xeruf/mostr-go/internal/event"
)

func TestWireRoundTrip(t *testing.T) {
	ev := event.Event{
		ID:        event.ID{1, 2, 3},
		Author:    event.PubKey{9},
		CreatedAt: 42,
		Kind:      event.KindTaskDefinition,
		Content:   "a task",
		Tags: []event.Tag{
			event.EventTag(event.ID{5}, "parent"),
			event.HashtagTag("work"),
		},
	}
	line, err := marshalLine(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := unmarshalLine(line[:len(line)-1])
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != ev.ID || got.CreatedAt != ev.CreatedAt || got.Kind != ev.Kind || got.Content != ev.Content {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, ev)
	}
	if len(got.Tags) != 2 || !got.Tags[0].IsParentMarker() || got.Tags[1].Hashtag != "work" {
		t.Fatalf("tag round trip mismatch: %+v", got.Tags)
	}
}

func TestSyntheticIDDeterministic(t *testing.T) {
	author := event.PubKey{1}
	b := event.NewBuilder(event.KindTaskDefinition, "x", nil)
	a := syntheticID(author, 100, b)
	c := syntheticID(author, 100, b)
	if a != c {
		t.Fatal("expected synthetic id to be deterministic for identical inputs")
	}
	d := syntheticID(author, 101, b)
	if a == d {
		t.Fatal("expected synthetic id to change with created_at")
	}
}
