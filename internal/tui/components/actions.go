package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
)

// TaskActions receives the task gestures made inside a component. Components
// pass the id of the row or card under the cursor; they never look tasks up
// themselves.
type TaskActions interface {
	OnEdit(id int) tea.Cmd
	OnDelete(id int) tea.Cmd
	OnToggle(id int) tea.Cmd
	OnMove(id int, status api.Status) tea.Cmd
	OnOpenDay(date string) tea.Cmd
}

// NoActions ignores every gesture.
type NoActions struct{}

func (NoActions) OnEdit(int) tea.Cmd { return nil }
func (NoActions) OnDelete(int) tea.Cmd { return nil }
func (NoActions) OnToggle(int) tea.Cmd { return nil }
func (NoActions) OnMove(int, api.Status) tea.Cmd { return nil }
func (NoActions) OnOpenDay(string) tea.Cmd { return nil }
