package logic

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/tui/components"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (h *Handler) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if h.ConfirmDelete {
		return h.handleConfirmDelete(msg)
	}

	switch h.CurrentView {
	case state.ViewTaskForm:
		return h.handleFormKey(msg)
	case state.ViewHelp:
		_, cmd := h.HelpComp.Update(msg)
		return cmd
	}

	action, handled := h.KeyState.HandleKey(msg, h.Keymap)
	if !handled || action == "" {
		return nil
	}
	return h.handleAction(action)
}

func (h *Handler) handleConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		h.ConfirmDelete = false
		return h.deleteCmd(h.DeleteTaskID)
	case "n", "N", "esc":
		h.ConfirmDelete = false
		h.DeleteTaskID = 0
	}
	return nil
}

func (h *Handler) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	f := h.TaskForm
	if f == nil {
		h.CurrentView = h.MainView()
		return nil
	}

	switch msg.String() {
	case "esc":
		h.closeForm()
		return nil
	case "ctrl+s":
		return h.submitForm()
	case "enter":
		if f.FocusIndex == state.FormFieldSubmit {
			return h.submitForm()
		}
	}
	return f.Update(msg)
}

// handleAction runs a resolved key action. Actions the handler does not own
// go to the component of the current view.
func (h *Handler) handleAction(action string) tea.Cmd {
	switch action {
	case "quit":
		return tea.Quit

	case "help":
		h.PreviousView = h.CurrentView
		h.CurrentView = state.ViewHelp
		return nil

	case "refresh":
		h.Loading = true
		h.StatusMsg = "Refreshing..."
		return h.syncCmd("Refreshed", afterReload)

	case "switch_view":
		if h.CurrentTab == state.TabCalendar {
			h.switchTab(state.TabKanban)
		} else {
			h.switchTab(state.TabCalendar)
		}
		return nil

	case "tab_calendar":
		h.switchTab(state.TabCalendar)
		return nil

	case "tab_kanban":
		h.switchTab(state.TabKanban)
		return nil

	case "add":
		if h.CurrentView == state.ViewDay && h.DayOpen {
			f := state.NewDayTaskForm(h.SelectedDate)
			f.SetWidth(formInputWidth(h.Width))
			return h.openForm(f)
		}
		f := state.NewTaskForm()
		f.SetWidth(formInputWidth(h.Width))
		return h.openForm(f)

	case "add_inbox":
		f := state.NewInboxTaskForm()
		f.SetWidth(formInputWidth(h.Width))
		return h.openForm(f)

	case "copy":
		return h.copySelected()

	case "back":
		if h.CurrentView == state.ViewDay {
			h.closeDay()
			return nil
		}
	}

	if c := h.currentComponent(); c != nil {
		return c.HandleAction(action)
	}
	return nil
}

func (h *Handler) switchTab(tab state.Tab) {
	h.KeyState.Reset()
	h.KanbanComp.CancelPick()
	h.SwitchTab(tab)
	h.DayTasks = nil
}

// currentComponent returns the component receiving actions in the current
// view.
func (h *Handler) currentComponent() components.ActionHandler {
	switch h.CurrentView {
	case state.ViewCalendar:
		return h.CalendarComp
	case state.ViewKanban:
		return h.KanbanComp
	case state.ViewDay:
		return h.DayComp
	}
	return nil
}

// copySelected copies the first link of the selected task, or its title when
// it has none.
func (h *Handler) copySelected() tea.Cmd {
	id, ok := h.selectedID()
	if !ok {
		return nil
	}
	task, ok := h.findTask(id)
	if !ok {
		return nil
	}

	content, what := task.Titulo, "title"
	if len(task.Enlaces) > 0 {
		content, what = task.Enlaces[0].URL, "link"
	}
	if err := writeClipboard(content); err != nil {
		h.StatusMsg = "Failed to copy: " + err.Error()
		return nil
	}
	h.StatusMsg = fmt.Sprintf("Copied %s: %s", what, content)
	return nil
}

func (h *Handler) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	if h.ConfirmDelete {
		return nil
	}
	switch h.CurrentView {
	case state.ViewHelp, state.ViewTaskForm:
		return nil
	}

	if msg.Y < state.HeaderHeight {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			h.handleTabClick(msg.X)
		}
		return nil
	}

	msg.Y -= state.HeaderHeight
	var cmd tea.Cmd
	switch h.CurrentView {
	case state.ViewCalendar:
		_, cmd = h.CalendarComp.Update(msg)
	case state.ViewKanban:
		_, cmd = h.KanbanComp.Update(msg)
	case state.ViewDay:
		_, cmd = h.DayComp.Update(msg)
	}
	return cmd
}

// handleTabClick switches to the tab under column x. The positions follow
// the tab bar layout: one column of padding, tabs separated by a space.
func (h *Handler) handleTabClick(x int) {
	pos := 1
	for _, t := range state.GetTabDefinitions() {
		label := t.Label(h.Width)
		rendered := styles.Tab.Render(label)
		if h.CurrentTab == t.Tab {
			rendered = styles.TabActive.Render(label)
		}
		end := pos + lipgloss.Width(rendered)
		if x >= pos && x < end {
			h.switchTab(t.Tab)
			return
		}
		pos = end + 1
	}
}
