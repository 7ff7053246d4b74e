package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xeruf/mostr-go/internal/task"
	"github.com/xeruf/mostr-go/internal/view"
)

// stdoutMu is the single exclusive handle stdout writes acquire for the
// duration of one render.
var stdoutMu sync.Mutex

// Print renders v's current tasks as a table to w, one row per task and
// one column per v.Properties entry, header included. Acquires the
// process-wide stdout lock for the duration of the render.
func Print(w io.Writer, v *view.View, now time.Time) {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	tasks := v.CurrentTasks()
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(headerRow(v.Properties)...)

	for _, tk := range tasks {
		t.Row(taskRow(v, tk, now)...)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return HeaderStyle
		}
		if col == 0 && len(v.Properties) > 0 && v.Properties[0] == "state" && row-1 < len(tasks) {
			return StateStyle(tasks[row-1].CurrentState().Label())
		}
		return lipgloss.NewStyle()
	})

	fmt.Fprintln(w, t.Render())
}

func headerRow(properties []string) []string {
	out := make([]string, len(properties))
	copy(out, properties)
	return out
}

func taskRow(v *view.View, t *task.Task, now time.Time) []string {
	row := make([]string, len(v.Properties))
	for i, name := range v.Properties {
		val, _ := v.Get(t, name, now.Unix())
		row[i] = val
	}
	return row
}
