package logic

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

// OnEdit opens the form bound to task id.
func (h *Handler) OnEdit(id int) tea.Cmd {
	task, ok := h.findTask(id)
	if !ok {
		h.StatusMsg = "Task not found"
		return nil
	}

	f := state.NewEditTaskForm(task)
	if h.DayOpen {
		f.Context = state.FormContextDay
		f.PresetDate = h.SelectedDate
	}
	f.SetWidth(formInputWidth(h.Width))
	return h.openForm(f)
}

// OnDelete asks for confirmation before deleting id.
func (h *Handler) OnDelete(id int) tea.Cmd {
	if _, ok := h.findTask(id); !ok {
		return nil
	}
	h.ConfirmDelete = true
	h.DeleteTaskID = id
	return nil
}

// OnToggle flips id between done and in progress.
func (h *Handler) OnToggle(id int) tea.Cmd {
	task, ok := h.findTask(id)
	if !ok {
		return nil
	}
	next := task.ToggledStatus()
	done := "Task reopened"
	if next == api.StatusCompleta {
		done = "Task completed"
	}
	return h.moveCmd("Toggle", id, next, done)
}

// OnMove sends id to status. Dropping a card on its own column still issues
// the update.
func (h *Handler) OnMove(id int, status api.Status) tea.Cmd {
	return h.moveCmd("Move", id, status, "Moved to "+status.Label())
}

// OnOpenDay shows the tasks of date, fetched from the server.
func (h *Handler) OnOpenDay(date string) tea.Cmd {
	h.SelectedDate = date
	h.DayOpen = true
	h.DayTasks = nil
	h.DayComp.SetDate(date)
	h.CalendarComp.Select(date)
	h.TaskForm = state.NewDayTaskForm(date)
	h.CurrentView = state.ViewDay
	return h.loadDayCmd(date)
}

func (h *Handler) openForm(f *state.TaskForm) tea.Cmd {
	h.TaskForm = f
	if h.CurrentView != state.ViewTaskForm {
		h.PreviousView = h.CurrentView
	}
	h.CurrentView = state.ViewTaskForm
	h.ConfirmDelete = false
	return textinput.Blink
}

// closeForm drops the form and returns to the view it was opened from.
func (h *Handler) closeForm() {
	if h.TaskForm != nil {
		if h.DayOpen {
			h.TaskForm = state.NewDayTaskForm(h.SelectedDate)
		} else {
			h.TaskForm.Reset()
		}
	}
	h.CurrentView = h.PreviousView
	if h.CurrentView == state.ViewTaskForm || h.CurrentView == state.ViewHelp {
		h.CurrentView = h.MainView()
	}
	if h.CurrentView == state.ViewDay && !h.DayOpen {
		h.CurrentView = h.MainView()
	}
}
