package task

import (
	"testing"

	"github.com/xeruf/mostr-go/internal/event"
)

func def(id event.ID, content string, createdAt int64, tags ...event.Tag) event.Event {
	return event.Event{ID: id, Content: content, CreatedAt: createdAt, Kind: event.KindTaskDefinition, Tags: tags}
}

func TestPlaceholderHasNoName(t *testing.T) {
	tk := NewPlaceholder(event.ID{9})
	if tk.HasDefinition() {
		t.Fatal("placeholder must not have a definition")
	}
	if _, ok := tk.Name(); ok {
		t.Fatal("placeholder must not resolve a name")
	}
	if tk.Title() != tk.ID().String() {
		t.Fatalf("placeholder title should fall back to id, got %q", tk.Title())
	}
}

func TestParentIDImmutableAfterFirstSet(t *testing.T) {
	parent := event.ID{1}
	tk := NewPlaceholder(event.ID{2})
	tk.SetDefinition(def(event.ID{2}, "child", 10, event.EventTag(parent, "")))
	got, ok := tk.ParentID()
	if !ok || got != parent {
		t.Fatalf("expected parent %v, got %v ok=%v", parent, got, ok)
	}
	// Second SetDefinition must not change anything.
	tk.SetDefinition(def(event.ID{2}, "different", 99))
	got2, _ := tk.ParentID()
	if got2 != parent {
		t.Fatalf("parent id must stay immutable, got %v", got2)
	}
}

func TestCurrentStateImplicitOpen(t *testing.T) {
	tk := NewPlaceholder(event.ID{3})
	tk.SetDefinition(def(event.ID{3}, "t", 500))
	cs := tk.CurrentState()
	if cs.State != Open || cs.CreatedAt != 500 {
		t.Fatalf("expected implicit Open@500, got %+v", cs)
	}
}

func TestCurrentStateTiebreakByGreaterID(t *testing.T) {
	tk := NewPlaceholder(event.ID{4})
	tk.SetDefinition(def(event.ID{4}, "t", 1))
	tk.AddProperty(event.Event{ID: event.ID{1}, Kind: event.KindStateDone, CreatedAt: 100, Content: "done-a"})
	tk.AddProperty(event.Event{ID: event.ID{2}, Kind: event.KindStateClosed, CreatedAt: 100, Content: "closed-b"})
	cs := tk.CurrentState()
	if cs.State != Closed || cs.Content != "closed-b" {
		t.Fatalf("expected greater-id tiebreak to win with Closed, got %+v", cs)
	}
}

func TestIdempotentPropertyInsert(t *testing.T) {
	tk := NewPlaceholder(event.ID{5})
	ev := event.Event{ID: event.ID{7}, Kind: event.KindTextNote, CreatedAt: 1, Content: "hi"}
	tk.AddProperty(ev)
	tk.AddProperty(ev)
	if len(tk.Properties()) != 1 {
		t.Fatalf("expected dedup, got %d props", len(tk.Properties()))
	}
}

func TestGetUnknownPropertyNotRecognized(t *testing.T) {
	tk := NewPlaceholder(event.ID{6})
	tk.SetDefinition(def(event.ID{6}, "t", 1))
	if _, ok := tk.Get("time"); ok {
		t.Fatal("base task.Get must not resolve view-derived properties like 'time'")
	}
}

func TestDescriptionsOrderPreserved(t *testing.T) {
	tk := NewPlaceholder(event.ID{8})
	tk.SetDefinition(def(event.ID{8}, "t", 1))
	tk.AddProperty(event.Event{ID: event.ID{1}, Kind: event.KindTextNote, CreatedAt: 10, Content: "first"})
	tk.AddProperty(event.Event{ID: event.ID{2}, Kind: event.KindTextNote, CreatedAt: 20, Content: "second"})
	descs := tk.Descriptions()
	if len(descs) != 2 || descs[0] != "first" || descs[1] != "second" {
		t.Fatalf("unexpected descriptions order: %v", descs)
	}
}
