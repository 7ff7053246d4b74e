package store

import (
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
)

// Subtree returns the ids of id and all of its transitive descendants,
// including id itself. Traversal is breadth-first and defensively
// visited-guarded: a malformed event stream could present a cycle in the
// child graph , so a revisited
// id is simply not re-expanded.
func (s *Store) Subtree(id event.ID) []event.ID {
	visited := map[event.ID]bool{id: true}
	out := []event.ID{id}
	for i := 0; i < len(out); i++ {
		for _, child := range s.ChildrenOf(out[i]) {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
		}
	}
	return out
}

// Progress is the recursive completion ratio :
// - a Closed task contributes no signal (ok=false — its parent treats
// it as absent for the purpose of averaging);
// - a Done task contributes 1.0;
// - any other task's progress is the unweighted mean of its non-Closed
// children's progress; a task with zero non-Closed children and not
// Done has progress 0.0.
func (s *Store) Progress(id event.ID) (float64, bool) {
	return s.progressRec(id, map[event.ID]bool{})
}

func (s *Store) progressRec(id event.ID, visiting map[event.ID]bool) (float64, bool) {
	if visiting[id] {
		// Defensive cycle guard : treat a revisited id as
		// contributing no signal rather than recursing forever.
		return 0, false
	}
	t, ok := s.GetByID(id)
	if !ok {
		return 0, false
	}
	visiting[id] = true
	defer delete(visiting, id)

	cs := t.CurrentState()
	switch cs.State {
	case task.Closed:
		return 0, false
	case task.Done:
		return 1.0, true
	}

	children := t.Children()
	if len(children) == 0 {
		return 0.0, true
	}
	var sum float64
	var count int
	for _, c := range children {
		if p, ok := s.progressRec(c, visiting); ok {
			sum += p
			count++
		}
	}
	if count == 0 {
		return 0.0, true
	}
	return sum / float64(count), true
}

// SubtaskCounts renders the "subtasks" property's done/total: total
// counts direct children whose current state is not Closed, done counts
// direct children whose current state is Done.
func (s *Store) SubtaskCounts(id event.ID) (done, total int) {
	t, ok := s.GetByID(id)
	if !ok {
		return 0, 0
	}
	for _, c := range t.Children() {
		ct, ok := s.GetByID(c)
		if !ok {
			continue
		}
		cs := ct.CurrentState()
		if cs.State == task.Closed {
			continue
		}
		total++
		if cs.State == task.Done {
			done++
		}
	}
	return done, total
}

// RTime is the total time tracked on id and its transitive descendants by
// every author's timeline.
func (s *Store) RTime(id event.ID, nowSec int64) int64 {
	subtree := s.Subtree(id)
	target := make(map[event.ID]bool, len(subtree))
	for _, c := range subtree {
		target[c] = true
	}
	var total int64
	for _, tl := range s.timelines {
		total += tl.TimeTracked(target, nowSec)
	}
	return total
}

// Time is the time tracked on id alone by a single author's timeline.
func (s *Store) Time(author event.PubKey, id event.ID, nowSec int64) int64 {
	return s.Timeline(author).TimeTracked(map[event.ID]bool{id: true}, nowSec)
}
