package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
)

// recorder collects the gestures a component delegates.
type recorder struct {
	calls []string
}

func (r *recorder) OnEdit(id int) tea.Cmd {
	r.calls = append(r.calls, fmt.Sprintf("edit %d", id))
	return nil
}

func (r *recorder) OnDelete(id int) tea.Cmd {
	r.calls = append(r.calls, fmt.Sprintf("delete %d", id))
	return nil
}

func (r *recorder) OnToggle(id int) tea.Cmd {
	r.calls = append(r.calls, fmt.Sprintf("toggle %d", id))
	return nil
}

func (r *recorder) OnMove(id int, status api.Status) tea.Cmd {
	r.calls = append(r.calls, fmt.Sprintf("move %d %s", id, status))
	return nil
}

func (r *recorder) OnOpenDay(date string) tea.Cmd {
	r.calls = append(r.calls, "open "+date)
	return nil
}

func (r *recorder) last() string {
	if len(r.calls) == 0 {
		return ""
	}
	return r.calls[len(r.calls)-1]
}
