// Package view implements the navigation state the Task Store exposes on
// top of the forest: current position, depth, active filters, and the
// derived rendering and outbound-event-construction operations built on
// top of a store.Store.
package view

import (
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/store"
	"github.com/xeruf/mostr-go/internal/task"
)

// DefaultProperties mirrors the original tool's default column set.
var DefaultProperties = []string{"state", "progress", "rtime", "hashtags", "rpath", "desc"}

// View owns the mutable navigation state layered over a Store: it borrows
// from the store's tasks and timelines and never mutates them except via
// Store.Accept on the local optimistic application of an outbound event.
type View struct {
	store *store.Store
	sender event.Sender
	author event.PubKey

	position *event.ID
	tags []string // active hashtag set, insertion order
	stateFilter *string // nil = no filter
	explicitIDs []event.ID
	Depth int
	Properties []string

	// Plugin is an optional fallback property resolver consulted by Get
	// after the view-derived and base task properties are exhausted.
	// Nil by default.
	Plugin PropertyResolver
}

// New creates a view over store for the given author identity (used to
// sign/attribute outbound events and to select "my" timeline for the
// per-user `time` property). Defaults match the reference tool: depth 1,
// the default property set, and an initial "Open" state filter (so a
// freshly created task, which defaults to Open, is immediately visible).
func New(s *store.Store, sender event.Sender, author event.PubKey) *View {
	open := task.Open.String()
	return &View{
		store: s,
		sender: sender,
		author: author,
		Depth: 1,
		Properties: append([]string(nil), DefaultProperties...),
		stateFilter: &open,
	}
}

// Store exposes the underlying store for read-only queries from callers
// that need it directly (e.g. the CLI's plugin/archive layers).
func (v *View) Store() *store.Store { return v.store }

// Position returns the current task id, or false at the root.
func (v *View) Position() (event.ID, bool) {
	if v.position == nil {
		return event.ID{}, false
	}
	return *v.position, true
}

// SetFilter pins an explicit id list, overriding position-based selection
// until cleared.
func (v *View) SetFilter(ids []event.ID) {
	v.explicitIDs = ids
}

// ClearFilter drops the explicit id list, returning to position-based
// browsing.
func (v *View) ClearFilter() {
	v.explicitIDs = nil
}

// AddTag adds a hashtag to the active filter set and clears any explicit
// id list (matches the reference tool's add_tag).
func (v *View) AddTag(tag string) {
	v.explicitIDs = nil
	for _, t := range v.tags {
		if t == tag {
			return
		}
	}
	v.tags = append(v.tags, tag)
}

// ClearTags empties the active hashtag filter.
func (v *View) ClearTags() {
	v.tags = nil
}

// Tags returns the active hashtag filter set.
func (v *View) Tags() []string {
	return v.tags
}

// SetStateFilter sets (or, if nil, clears) the active state-name filter
// and clears any explicit id list.
func (v *View) SetStateFilter(state *string) {
	v.explicitIDs = nil
	v.stateFilter = state
}

// StateFilter returns the active state-name filter, if any.
func (v *View) StateFilter() (string, bool) {
	if v.stateFilter == nil {
		return "", false
	}
	return *v.stateFilter, true
}

// MoveUp moves the position to the current task's parent (root if none
// or if there is no current task).
func (v *View) MoveUp() {
	var parent *event.ID
	if t, ok := v.currentTask(); ok {
		if p, ok := t.ParentID(); ok {
			parent = &p
		}
	}
	v.MoveTo(parent)
}

// MoveTo updates the position and emits a tracking event tagged with the
// new position (tag-less if moving to root). Moving to the current
// position is a no-op; any non-trivial move clears the active hashtag
// set and the explicit id list.
func (v *View) MoveTo(id *event.ID) {
	if samePosition(v.position, id) {
		return
	}
	v.explicitIDs = nil
	v.tags = nil
	v.position = id

	var tags []event.Tag
	if id != nil {
		tags = append(tags, event.EventTag(*id, ""))
	}
	builder := event.NewBuilder(event.KindTracking, "", tags)
	if ev, ok := v.sender.Submit(builder); ok {
		v.store.Accept(ev)
	}
}

func samePosition(a, b *event.ID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (v *View) currentTask() (*task.Task, bool) {
	if v.position == nil {
		return nil, false
	}
	return v.store.GetByID(*v.position)
}
