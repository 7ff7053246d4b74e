package view

import (
	"testing"

	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/store"
)

// testSender is a deterministic in-memory stand-in for the relay
// transport: it assigns a monotonically increasing id/created_at pair to
// every builder it accepts, and can be made to always refuse (fail)
// submissions to exercise the "transport failure" error path.
type testSender struct {
	next int64
	author event.PubKey
	fail bool
}

func (s *testSender) Submit(b event.Builder) (event.Event, bool) {
	if s.fail {
		return event.Event{}, false
	}
	s.next++
	var id event.ID
	id[30] = byte(s.next >> 8)
	id[31] = byte(s.next)
	return event.Event{
		ID: id,
		Author: s.author,
		CreatedAt: s.next,
		Kind: b.Kind,
		Content: b.Content,
		Tags: b.Tags,
	}, true
}

func newTestView() (*View, *store.Store, *testSender) {
	s := store.New()
	sender := &testSender{author: event.PubKey{7}}
	return New(s, sender, sender.author), s, sender
}

func TestMoveToNoopOnSamePosition(t *testing.T) {
	v, _, sender := newTestView()
	id, ok := v.CreateTask("t1")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	v.MoveTo(&id)
	before := sender.next
	v.MoveTo(&id)
	if sender.next != before {
		t.Fatal("moving to the current position must not submit a tracking event")
	}
}

func TestMoveClearsTagsAndExplicitIDs(t *testing.T) {
	v, _, _ := newTestView()
	id, _ := v.CreateTask("t1")
	v.AddTag("work")
	v.SetFilter([]event.ID{id})
	v.MoveTo(&id)
	if len(v.Tags()) != 0 {
		t.Fatal("expected tags cleared by a non-trivial move")
	}
	if len(v.explicitIDs) != 0 {
		t.Fatal("expected explicit id list cleared by a non-trivial move")
	}
}

func TestNoteRefusedWithoutPosition(t *testing.T) {
	v, _, _ := newTestView()
	if v.Note("hello") {
		t.Fatal("expected note to be refused with no position")
	}
}

func TestCreateTaskTokenizer(t *testing.T) {
	v, _, _ := newTestView()
	id, ok := v.CreateTask("test: work  urgent")
	if !ok {
		t.Fatal("expected create to succeed")
	}
	tk, _ := v.Store().GetByID(id)
	name, _ := tk.Name()
	if name != "test" {
		t.Fatalf("expected name %q, got %q", "test", name)
	}
	tags := tk.Hashtags()
	if len(tags) != 2 || tags[0] != "work" || tags[1] != "urgent" {
		t.Fatalf("expected ASCII-whitespace-collapsed hashtags [work urgent], got %v", tags)
	}
}

func TestCreateTaskNoSeparatorNoHashtags(t *testing.T) {
	v, _, _ := newTestView()
	id, _ := v.CreateTask("plain name")
	tk, _ := v.Store().GetByID(id)
	name, _ := tk.Name()
	if name != "plain name" {
		t.Fatalf("expected whole input as name, got %q", name)
	}
	if len(tk.Hashtags()) != 0 {
		t.Fatalf("expected no hashtags, got %v", tk.Hashtags())
	}
}
