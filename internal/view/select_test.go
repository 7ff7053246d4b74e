package view

import (
	"testing"

	"github.com/xeruf/mostr-go/internal/event"
)

// TestDepthScenario is the literal walkthrough from the depth-expansion
// contract: a sequence of creations, moves, and depth/filter changes,
// each asserting the resulting current_tasks() count.
func TestDepthScenario(t *testing.T) {
	v, _, _ := newTestView()

	v.Depth = 1
	t1, ok := v.CreateTask("t1")
	if !ok {
		t.Fatal("create t1 failed")
	}
	if n := len(v.CurrentTasks()); n != 1 {
		t.Fatalf("depth=1 at root after creating t1: expected 1, got %d", n)
	}

	v.Depth = 0
	if n := len(v.CurrentTasks()); n != 0 {
		t.Fatalf("depth=0 at root: expected 0, got %d", n)
	}

	v.MoveTo(&t1)
	v.Depth = 2
	if n := len(v.CurrentTasks()); n != 0 {
		t.Fatalf("depth=2 at t1 with no children: expected 0, got %d", n)
	}

	t2, _ := v.CreateTask("t2")
	if n := len(v.CurrentTasks()); n != 1 {
		t.Fatalf("depth=2 at t1 after creating t2: expected 1, got %d", n)
	}
	if got := v.Path(t2); got != "t1>t2" {
		t.Fatalf("path(t2): expected t1>t2, got %q", got)
	}
	if got := v.RPath(t2); got != "t2" {
		t.Fatalf("rpath(t2): expected t2, got %q", got)
	}

	v.CreateTask("t3")
	if n := len(v.CurrentTasks()); n != 2 {
		t.Fatalf("depth=2 at t1 after creating t3: expected 2, got %d", n)
	}

	v.MoveTo(&t2)
	t4, _ := v.CreateTask("t4")
	if n := len(v.CurrentTasks()); n != 1 {
		t.Fatalf("depth=2 at t2 after creating t4: expected 1, got %d", n)
	}
	if got := v.Path(t4); got != "t1>t2>t4" {
		t.Fatalf("path(t4): expected t1>t2>t4, got %q", got)
	}

	v.Depth = -1
	if n := len(v.CurrentTasks()); n != 1 {
		t.Fatalf("depth=-1 at t2: expected 1 (t4 is the only leaf), got %d", n)
	}

	v.MoveTo(&t1)
	v.Depth = 2
	if n := len(v.CurrentTasks()); n != 3 {
		t.Fatalf("depth=2 at t1: expected 3 (t2,t3,t4), got %d", n)
	}

	v.SetFilter([]event.ID{t2})
	v.Depth = 2
	if n := len(v.CurrentTasks()); n != 2 {
		t.Fatalf("set_filter([t2]) depth=2: expected 2 (t2,t4), got %d", n)
	}

	v.Depth = -1
	if n := len(v.CurrentTasks()); n != 1 {
		t.Fatalf("set_filter([t2]) depth=-1: expected 1 (t4), got %d", n)
	}

	t3ID := secondChild(v, t1, t2)
	v.SetFilter([]event.ID{t2, t3ID})
	v.Depth = 2
	if n := len(v.CurrentTasks()); n != 3 {
		t.Fatalf("set_filter([t2,t3]) depth=2: expected 3, got %d", n)
	}

	v.Depth = 1
	if n := len(v.CurrentTasks()); n != 2 {
		t.Fatalf("set_filter([t2,t3]) depth=1: expected 2, got %d", n)
	}

	v.MoveTo(nil)
	v.Depth = 3
	if n := len(v.CurrentTasks()); n != 4 {
		t.Fatalf("move_to(none) depth=3: expected 4, got %d", n)
	}

	v.Depth = 9
	if n := len(v.CurrentTasks()); n != 4 {
		t.Fatalf("depth=9: expected 4, got %d", n)
	}

	v.Depth = -1
	if n := len(v.CurrentTasks()); n != 2 {
		t.Fatalf("depth=-1 at root: expected 2 (t3,t4 as leaves), got %d", n)
	}
}

func secondChild(v *View, t1, t2 event.ID) event.ID {
	for _, c := range v.Store().ChildrenOf(t1) {
		if c != t2 {
			return c
		}
	}
	return event.ID{}
}

func TestEmptyNameScenario(t *testing.T) {
	v, _, _ := newTestView()
	id, ok := v.CreateTask("")
	if !ok {
		t.Fatal("create with empty name failed")
	}
	if got := v.Path(id); got != id.String() {
		t.Fatalf("path of empty-name task: expected id string %q, got %q", id.String(), got)
	}
}

func TestDanglingParentScenario(t *testing.T) {
	v, _, _ := newTestView()
	zero := event.ZeroID
	v.MoveTo(&zero)
	child, ok := v.CreateTask("test")
	if !ok {
		t.Fatal("create child failed")
	}
	want := zero.String() + ">test"
	if got := v.Path(child); got != want {
		t.Fatalf("path(child): expected %q, got %q", want, got)
	}
	if got := v.RPath(child); got != "test" {
		t.Fatalf("rpath(child): expected %q, got %q", "test", got)
	}
}
