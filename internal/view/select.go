package view

import (
	"github.com/xeruf/mostr-go/internal/event"
	"github.com/xeruf/mostr-go/internal/task"
)

// CurrentTasks computes the visible task list for the current navigation
// state.
func (v *View) CurrentTasks() []*task.Task {
	if v.Depth == 0 {
		if t, ok := v.currentTask(); ok {
			return []*task.Task{t}
		}
		return nil
	}

	if len(v.explicitIDs) > 0 {
		res := v.resolveDepth(v.explicitIDs, v.Depth)
		if len(res) > 0 {
			// Filters never apply to an explicit-id seed.
			return res
		}
		// Step 5: an explicit seed that resolves to nothing is returned
		// as-is (whatever of it exists), filter intentionally ignored.
		return v.resolveExisting(v.explicitIDs)
	}

	seed := v.positionSeed()
	resolved := v.resolveDepth(seed, v.Depth)
	return v.applyFilters(resolved)
}

func (v *View) positionSeed() []event.ID {
	if v.position == nil {
		return v.store.RootChildren()
	}
	return v.store.ChildrenOf(*v.position)
}

// resolveDepth is the recursive depth-expansion helper : depth > 0 expands down 'depth' levels, emitting descendants before
// the task itself (post-order); depth < 0 recurses unboundedly emitting
// only leaves, falling back to the branch root if a branch yields
// nothing; depth == 1 emits the task itself without recursing further.
// Callers never pass depth 0 (CurrentTasks handles it before expansion).
func (v *View) resolveDepth(ids []event.ID, depth int) []*task.Task {
	var out []*task.Task
	for _, id := range ids {
		t, ok := v.store.GetByID(id)
		if !ok {
			continue
		}
		newDepth := depth - 1
		switch {
		case newDepth < 0:
			children := v.resolveDepth(t.Children(), newDepth)
			if len(children) == 0 {
				out = append(out, t)
			} else {
				out = append(out, children...)
			}
		case newDepth > 0:
			children := v.resolveDepth(t.Children(), newDepth)
			out = append(out, children...)
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	return out
}

// resolveExisting maps ids to whatever task records already exist,
// without depth expansion or filtering.
func (v *View) resolveExisting(ids []event.ID) []*task.Task {
	var out []*task.Task
	for _, id := range ids {
		if t, ok := v.store.GetByID(id); ok {
			out = append(out, t)
		}
	}
	return out
}

// applyFilters applies the state-name filter and hashtag filter (spec
// §4.3 step 4): the state filter requires the task's current-state label
// to equal the filter string; the hashtag filter requires every active
// hashtag to appear among the task's hashtags.
func (v *View) applyFilters(tasks []*task.Task) []*task.Task {
	if v.stateFilter == nil && len(v.tags) == 0 {
		return tasks
	}
	out := tasks[:0:0]
	for _, t := range tasks {
		if v.stateFilter != nil && t.CurrentState().Label() != *v.stateFilter {
			continue
		}
		if len(v.tags) > 0 && !hasAllTags(t.Hashtags(), v.tags) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func hasAllTags(have []string, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, h := range have {
		set[h] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}
