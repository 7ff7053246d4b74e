package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/xeruf/mostr-go/internal/task"
)

// PrintDetail renders a single task's full description history as
// markdown — the detail view for a position with a note trail too long
// for a table cell.
func PrintDetail(w io.Writer, t *task.Task) {
	stdoutMu.Lock()
	defer stdoutMu.Unlock()

	title := t.Title()
	body := strings.Join(t.Descriptions(), "\n\n---\n\n")
	md := fmt.Sprintf("# %s\n\n%s\n", title, body)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(Width()-4),
	)
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprintln(w, md)
		return
	}
	fmt.Fprint(w, out)
}
