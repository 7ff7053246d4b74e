// Package task implements the per-task aggregate: the definition event
// (if known), the retained set of property events (state transitions and
// notes), and the child index, plus the derivations built on top of them.
package task

import (
	"sort"

	"github.com/xeruf/mostr-go/internal/event"
)

// Task is the aggregate keyed by the id of its definition event. It may
// exist without a definition — a placeholder created in response to a
// forward reference.
type Task struct {
	id event.ID
	definition *event.Event // nil until the definition event arrives
	props []event.Event
	propSeen map[event.ID]bool
	children []event.ID
	childSeen map[event.ID]bool
}

// NewPlaceholder creates a task record with no definition, awaiting one.
func NewPlaceholder(id event.ID) *Task {
	return &Task{
		id: id,
		propSeen: make(map[event.ID]bool),
		childSeen: make(map[event.ID]bool),
	}
}

// SetDefinition attaches the definition event, transitioning a placeholder
// into a real task. Calling it twice with the same id is a no-op; it must
// never be called with an event whose id differs from the task's.
func (t *Task) SetDefinition(ev event.Event) {
	if t.definition != nil {
		return
	}
	cp := ev
	t.definition = &cp
}

// HasDefinition reports whether the task's definition event has arrived.
func (t *Task) HasDefinition() bool {
	return t.definition != nil
}

// ID returns the task's id, which is stable regardless of whether the
// definition has arrived yet.
func (t *Task) ID() event.ID {
	return t.id
}

// Definition returns the definition event, if present.
func (t *Task) Definition() (event.Event, bool) {
	if t.definition == nil {
		return event.Event{}, false
	}
	return *t.definition, true
}

// ParentID is a pure function of the definition event: the first
// event-tag with no marker or marker "parent". Immutable once the
// definition is present.
func (t *Task) ParentID() (event.ID, bool) {
	if t.definition == nil {
		return event.ID{}, false
	}
	for _, tag := range t.definition.Tags {
		if tag.IsParentMarker() {
			return tag.EventID, true
		}
	}
	return event.ID{}, false
}

// AddChild idempotently records id as a child of this task.
func (t *Task) AddChild(id event.ID) {
	if t.childSeen[id] {
		return
	}
	t.childSeen[id] = true
	t.children = append(t.children, id)
}

// Children returns the ids of this task's children, in first-seen order.
func (t *Task) Children() []event.ID {
	return t.children
}

// AddProperty idempotently attaches a property event (state or note or
// unknown annotation) to this task, maintaining (created_at, id) order.
func (t *Task) AddProperty(ev event.Event) {
	if t.propSeen[ev.ID] {
		return
	}
	t.propSeen[ev.ID] = true
	t.props = append(t.props, ev)
	sort.SliceStable(t.props, func(i, j int) bool {
		return event.Less(t.props[i], t.props[j])
	})
}

// Properties returns the retained property-event set in (created_at, id)
// order. Never shrinks.
func (t *Task) Properties() []event.Event {
	return t.props
}

// StateHistory returns the (state_kind, created_at, content) triples drawn
// from the property set, filtering kinds 1630..=1633, in retained order.
// Stable under duplicate insertion because AddProperty already dedupes.
func (t *Task) StateHistory() []StateEvent {
	var out []StateEvent
	for _, ev := range t.props {
		if s, ok := stateForKind(ev.Kind); ok {
			out = append(out, StateEvent{
				State: s,
				CreatedAt: ev.CreatedAt,
				ID: ev.ID,
				Content: ev.Content,
			})
		}
	}
	return out
}

// CurrentState is the maximum of StateHistory by (created_at, id), or the
// implicit Open state at the definition's creation time if no state event
// exists. If the definition itself hasn't arrived yet, the implicit time
// is 0 — a placeholder has no meaningful creation time, and callers must
// already be tolerating an absent definition.
func (t *Task) CurrentState() CurrentState {
	hist := t.StateHistory()
	if len(hist) == 0 {
		var createdAt int64
		if t.definition != nil {
			createdAt = t.definition.CreatedAt
		}
		return CurrentState{State: Open, CreatedAt: createdAt}
	}
	best := hist[0]
	for _, s := range hist[1:] {
		if s.CreatedAt > best.CreatedAt ||
			(s.CreatedAt == best.CreatedAt && idGreater(s.ID, best.ID)) {
			best = s
		}
	}
	return CurrentState{State: best.State, CreatedAt: best.CreatedAt, Content: best.Content}
}

func idGreater(a, b event.ID) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// Descriptions returns the content strings of every text-note property
// event (kind 1), in property-set order.
func (t *Task) Descriptions() []string {
	var out []string
	for _, ev := range t.props {
		if ev.Kind == event.KindTextNote {
			out = append(out, ev.Content)
		}
	}
	return out
}

// Name returns the task's display name: its definition content, or
// (false) if no definition has arrived — callers render the id instead.
func (t *Task) Name() (string, bool) {
	if t.definition == nil {
		return "", false
	}
	return t.definition.Content, true
}

// Title is the name if known, else the id rendered as a string — the
// fallback used throughout path rendering.
func (t *Task) Title() string {
	if name, ok := t.Name(); ok {
		return name
	}
	return t.id.String()
}

// Hashtags returns the hashtags carried by the definition event, or nil
// if the definition hasn't arrived.
func (t *Task) Hashtags() []string {
	if t.definition == nil {
		return nil
	}
	return t.definition.Hashtags()
}

// Get resolves one of the base recognized property names.
// Names not recognized here are the View layer's (and plugin layer's)
// responsibility to resolve.
func (t *Task) Get(name string) (string, bool) {
	switch name {
	case "id":
		return t.id.String(), true
	case "parentid":
		if p, ok := t.ParentID(); ok {
			return p.String(), true
		}
		return "", false
	case "name":
		return t.Title(), true
	case "created":
		if t.definition == nil {
			return "", false
		}
		return formatUnix(t.definition.CreatedAt), true
	case "author":
		if t.definition == nil {
			return "", false
		}
		return t.definition.Author.String(), true
	case "status", "state":
		return t.CurrentState().Label(), true
	case "hashtags":
		return joinStrings(t.Hashtags(), " "), true
	case "tags":
		return joinStrings(rawTagValues(t), " "), true
	case "desc":
		descs := t.Descriptions()
		if len(descs) == 0 {
			return "", false
		}
		return descs[len(descs)-1], true
	case "description":
		descs := t.Descriptions()
		if len(descs) == 0 {
			return "", false
		}
		return joinStrings(descs, " "), true
	case "kind":
		if t.definition == nil {
			return "", false
		}
		return kindString(t.definition.Kind), true
	case "pubkey":
		if t.definition == nil {
			return "", false
		}
		return t.definition.Author.String(), true
	case "props":
		return formatPropCount(t.props), true
	case "alltags":
		return joinStrings(allTagStrings(t), ", "), true
	case "descriptions":
		return joinStrings(t.Descriptions(), "\n"), true
	default:
		return "", false
	}
}
