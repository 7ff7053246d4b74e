package view

import (
	"strings"

	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
)

// CreateTask parses input and submits a task-definition builder (spec
// §4.5 step 1). If input contains the separator ": ", the substring
// before it is the name and the substring after it is split on ASCII
// whitespace into hashtags; otherwise the whole input is the name and no
// hashtags are added. Active hashtags and the current position (as a
// parent event-tag) are appended. On success the new task is
// optimistically applied locally.
func (v *View) CreateTask(input string) (event.ID, bool) {
	name := input
	var hashtags []string
	if idx := strings.Index(input, ": "); idx >= 0 {
		name = input[:idx]
		hashtags = strings.Fields(input[idx+2:])
	}

	var tags []event.Tag
	for _, h := range hashtags {
		tags = append(tags, event.HashtagTag(h))
	}
	for _, h := range v.tags {
		tags = append(tags, event.HashtagTag(h))
	}
	if v.position != nil {
		tags = append(tags, event.EventTag(*v.position, ""))
	}

	builder := event.NewBuilder(event.KindTaskDefinition, name, tags)
	ev, ok := v.sender.Submit(builder)
	if !ok {
		return event.ID{}, false
	}
	v.store.Accept(ev)
	return ev.ID, true
}

// Note submits a text-note builder tagged with the current position.
// Refused (no-op, false) if there is no position.
func (v *View) Note(text string) bool {
	if v.position == nil {
		return false
	}
	builder := event.NewBuilder(event.KindTextNote, text, []event.Tag{event.EventTag(*v.position, "")})
	ev, ok := v.sender.Submit(builder)
	if !ok {
		return false
	}
	v.store.Accept(ev)
	return true
}

// SetState submits a state-transition builder of the kind corresponding
// to state, tagged with taskID and carrying comment as content (spec
// §4.5 step 3).
func (v *View) SetState(taskID event.ID, state task.State, comment string) bool {
	kind, ok := kindForState(state)
	if !ok {
		return false
	}
	builder := event.NewBuilder(kind, comment, []event.Tag{event.EventTag(taskID, "")})
	ev, ok := v.sender.Submit(builder)
	if !ok {
		return false
	}
	v.store.Accept(ev)
	return true
}

func kindForState(s task.State) (event.Kind, bool) {
	switch s {
	case task.Open:
		return event.KindStateOpen, true
	case task.Done:
		return event.KindStateDone, true
	case task.Closed:
		return event.KindStateClosed, true
	case task.Active:
		return event.KindStateActive, true
	default:
		return 0, false
	}
}
