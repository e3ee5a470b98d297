package logic

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

// Init implements tea.Model.
func (h *Handler) Init() tea.Cmd {
	cmds := []tea.Cmd{
		h.Spinner.Tick,
		h.refreshCmd(),
		checkDueCmd(),
	}
	if tick := h.refreshTickCmd(); tick != nil {
		cmds = append(cmds, tick)
	}
	return tea.Batch(cmds...)
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

// refreshedMsg reports a finished Cache.Refresh. changed is false when the
// call was skipped because another refresh was running.
type refreshedMsg struct {
	changed bool
	err     error
}

type dayLoadedMsg struct {
	date  string
	tasks []api.Task
	err   error
}

// syncedMsg carries the refresh and day fetch run after a successful
// mutation or save.
type syncedMsg struct {
	status     string
	mutation   bool
	refreshErr error
	date       string
	dayTasks   []api.Task
	dayErr     error
}

type mutationFailedMsg struct {
	action string
	id     int
	err    error
}

type taskSavedMsg struct {
	// form is the form the save was issued from; it may be closed by now.
	form    *state.TaskForm
	task    *api.Task
	created bool
	err     error
}

type refreshTickMsg time.Time

// refreshTickCmd schedules the next periodic refresh, nil when disabled.
func (h *Handler) refreshTickCmd() tea.Cmd {
	if h.Config == nil || h.Config.UI.RefreshInterval <= 0 {
		return nil
	}
	return tea.Tick(h.Config.UI.RefreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}
