package view

import (
	"fmt"
	"strings"

	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
)

// PropertyResolver is the extension point for property names unknown to
// both the view layer and task.Task.Get — realized by internal/plugin.
type PropertyResolver interface {
	Get(t *task.Task, name string) (string, bool)
}

// ancestorsUpFrom walks from id up through parent_id links, stopping
// either when the chain runs out (no further task record, or no parent
// tag) or — if stopAtPosition — upon reaching the current position
// (exclusive). Defensively guards against a cyclic parent chain.
func (v *View) ancestorsUpFrom(id event.ID, stopAtPosition bool) []*task.Task {
	var anc []*task.Task
	visited := map[event.ID]bool{}
	cur := id
	for {
		if visited[cur] {
			break
		}
		visited[cur] = true
		if stopAtPosition {
			if pos, ok := v.Position(); ok && cur == pos {
				break
			}
		}
		t, ok := v.store.GetByID(cur)
		if !ok {
			break
		}
		anc = append(anc, t)
		parent, ok := t.ParentID()
		if !ok {
			break
		}
		cur = parent
	}
	return anc
}

func (v *View) buildPath(id event.ID, stopAtPosition, includeLastID bool) string {
	anc := v.ancestorsUpFrom(id, stopAtPosition)
	if len(anc) == 0 {
		return id.String()
	}
	titles := make([]string, len(anc))
	for i, t := range anc {
		titles[len(anc)-1-i] = t.Title()
	}
	parts := titles
	if includeLastID {
		if p, ok := anc[len(anc)-1].ParentID(); ok {
			parts = append([]string{p.String()}, titles...)
		}
	}
	result := strings.Join(parts, ">")
	if includeLastID && result == "" {
		return id.String()
	}
	return result
}

// Path renders the sequence of task names from the root to id, joined by
// ">". If the root ancestor's parent id has no task record, that id is
// put in front of the root name as a leading pseudo-name.
func (v *View) Path(id event.ID) string {
	return v.buildPath(id, false, true)
}

// RPath is the same construction as Path but truncated at (not
// including) the current position.
func (v *View) RPath(id event.ID) string {
	return v.buildPath(id, true, false)
}

// Get resolves a rendered property for a task: the view-derived
// properties first (time, rtime, progress, subtasks, path, rpath), then
// the task's own base properties, then an optional plugin fallback.
func (v *View) Get(t *task.Task, name string, nowSec int64) (string, bool) {
	switch name {
	case "time":
		return formatMinutes(v.store.Time(v.author, t.ID(), nowSec)), true
	case "rtime":
		return formatMinutes(v.store.RTime(t.ID(), nowSec)), true
	case "progress":
		if p, ok := v.store.Progress(t.ID()); ok {
			return fmt.Sprintf("%.0f%%", p*100), true
		}
		return "", true
	case "subtasks":
		done, total := v.store.SubtaskCounts(t.ID())
		if total == 0 {
			return "", true
		}
		return fmt.Sprintf("%d/%d", done, total), true
	case "path":
		return v.Path(t.ID()), true
	case "rpath":
		return v.RPath(t.ID()), true
	}
	if s, ok := t.Get(name); ok {
		return s, true
	}
	if v.Plugin != nil {
		if s, ok := v.Plugin.Get(t, name); ok {
			return s, true
		}
	}
	return "", false
}

func formatMinutes(sec int64) string {
	if sec <= 0 {
		return ""
	}
	mins := sec / 60
	return fmt.Sprintf("%dm", mins)
}
