// Package store implements the task store: the forest formed by folding
// an unordered, duplicate-tolerant stream of events into tasks with
// property sets and child indices, plus per-author activity timelines.
// It is a single-owner, single-threaded mutator — callers must serialize
// calls to Accept themselves if shared across goroutines; the store
// performs no internal locking.
package store

import (
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
	"github.com/xeruf/mostr-go/internal/timeline"
)

// Store is the forest of tasks plus per-author activity timelines.
type Store struct {
	tasks map[event.ID]*task.Task
	timelines map[event.PubKey]*timeline.Timeline
}

// New creates an empty store.
func New() *Store {
	return &Store{
		tasks: make(map[event.ID]*task.Task),
		timelines: make(map[event.PubKey]*timeline.Timeline),
	}
}

// GetByID returns the task for id, if any record (placeholder or real)
// exists.
func (s *Store) GetByID(id event.ID) (*task.Task, bool) {
	t, ok := s.tasks[id]
	return t, ok
}

// getOrCreate returns the task for id, synthesizing a placeholder if this
// is the first reference to it.
func (s *Store) getOrCreate(id event.ID) *task.Task {
	t, ok := s.tasks[id]
	if !ok {
		t = task.NewPlaceholder(id)
		s.tasks[id] = t
	}
	return t
}

// Timeline returns the activity timeline for an author, creating it on
// first occurrence.
func (s *Store) Timeline(author event.PubKey) *timeline.Timeline {
	tl, ok := s.timelines[author]
	if !ok {
		tl = timeline.New()
		s.timelines[author] = tl
	}
	return tl
}

// Timelines returns every author's timeline, for computations (like
// RTime) that must scan every author.
func (s *Store) Timelines() map[event.PubKey]*timeline.Timeline {
	return s.timelines
}

// Accept is the single ingest entry point. It dispatches on
// kind and is idempotent with respect to event id; it never returns an
// error because every malformed or out-of-order input degrades
// gracefully.
func (s *Store) Accept(ev event.Event) {
	switch {
	case ev.Kind == event.KindTaskDefinition || ev.Kind == event.KindProcedure:
		s.acceptDefinition(ev)
	case ev.Kind == event.KindTracking:
		s.Timeline(ev.Author).Add(ev)
	default:
		// State events (1630-1633), text notes (1), and any unknown
		// annotation kind are all attached as properties.
		s.acceptProperty(ev)
	}
}

func (s *Store) acceptDefinition(ev event.Event) {
	t := s.getOrCreate(ev.ID)
	t.SetDefinition(ev)
	for _, tag := range ev.EventTags() {
		s.getOrCreate(tag.EventID).AddChild(ev.ID)
	}
}

func (s *Store) acceptProperty(ev event.Event) {
	for _, tag := range ev.EventTags() {
		s.getOrCreate(tag.EventID).AddProperty(ev)
	}
}

// AllTasks returns every task record the store holds (real and
// placeholder), in no particular order.
func (s *Store) AllTasks() []*task.Task {
	out := make([]*task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	return out
}

// ChildrenOf returns the child index of the task id (nil if no record
// exists). The root position has no record; its children come from
// RootChildren.
func (s *Store) ChildrenOf(id event.ID) []event.ID {
	if t, ok := s.GetByID(id); ok {
		return t.Children()
	}
	return nil
}

// RootChildren returns the ids of every task record without a parent (the
// "root" position): tasks whose definition carries no parent tag, and
// placeholders, which have no definition yet.
func (s *Store) RootChildren() []event.ID {
	var out []event.ID
	for id, t := range s.tasks {
		if _, ok := t.ParentID(); !ok {
			out = append(out, id)
		}
	}
	return out
}
