package logic

import (
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

// findTask looks a task up in the open day first, then in the cache.
func (h *Handler) findTask(id int) (api.Task, bool) {
	if h.DayOpen {
		for _, t := range h.DayTasks {
			if t.ID == id {
				return t, true
			}
		}
	}
	return h.Cache.Get(id)
}

// selectedID returns the task under the cursor of the current view.
func (h *Handler) selectedID() (int, bool) {
	switch h.CurrentView {
	case state.ViewKanban:
		return h.KanbanComp.SelectedID()
	case state.ViewDay:
		return h.DayComp.SelectedID()
	}
	return 0, false
}

// openDate returns the date of the open day view, "" when closed.
func (h *Handler) openDate() string {
	if !h.DayOpen {
		return ""
	}
	return h.SelectedDate
}

// formInputWidth sizes form inputs to the terminal, within sane bounds.
func formInputWidth(width int) int {
	w := width - 20
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}
