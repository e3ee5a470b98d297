package logic

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/components"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

// Handler owns the planner state and reacts to every message of the program.
// It is also the TaskActions receiver of all components.
type Handler struct {
	*state.State
}

// NewHandler wires the components of s to a new Handler.
func NewHandler(s *state.State) *Handler {
	h := &Handler{State: s}
	s.CalendarComp.SetActions(h)
	s.KanbanComp.SetActions(h)
	s.DayComp.SetActions(h)
	return h
}

func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return h.handleKeyMsg(msg)

	case tea.MouseMsg:
		return h.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		return h.handleWindowSizeMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		h.Spinner, cmd = h.Spinner.Update(msg)
		return cmd

	case checkDueMsg:
		return tea.Batch(checkDueCmd(), h.handleCheckDue(time.Time(msg)))

	case refreshTickMsg:
		return tea.Batch(h.refreshTickCmd(), h.refreshCmd())

	case errMsg:
		h.Loading = false
		h.Err = msg.err
		return nil

	case statusMsg:
		h.StatusMsg = msg.msg
		return nil

	case refreshedMsg:
		return h.handleRefreshed(msg)

	case dayLoadedMsg:
		h.handleDayLoaded(msg.date, msg.tasks, msg.err)
		return nil

	case syncedMsg:
		return h.handleSynced(msg)

	case mutationFailedMsg:
		h.Mutation.End()
		h.Loading = false
		h.Err = nil
		h.StatusMsg = msg.action + " failed: " + api.UserMessage(msg.err)
		log.Printf("%s task %d: %v", msg.action, msg.id, msg.err)
		return nil

	case taskSavedMsg:
		return h.handleTaskSaved(msg)

	case components.BackRequestMsg:
		h.goBack()
		return nil
	}

	return nil
}

func (h *Handler) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	h.Width = msg.Width
	h.Height = msg.Height

	// Tab bar above, status bar below.
	body := msg.Height - state.HeaderHeight - 1
	if body < 5 {
		body = 5
	}
	h.CalendarComp.SetSize(msg.Width, body)
	h.KanbanComp.SetSize(msg.Width, body)
	h.DayComp.SetSize(msg.Width, body)
	h.HelpComp.SetSize(msg.Width, msg.Height)

	if h.TaskForm != nil {
		h.TaskForm.SetWidth(formInputWidth(msg.Width))
	}
	return nil
}

// handleRefreshed re-renders the views after a plain refresh.
func (h *Handler) handleRefreshed(msg refreshedMsg) tea.Cmd {
	h.Loading = false
	if msg.err != nil {
		h.StatusMsg = "Refresh failed: " + api.UserMessage(msg.err)
		log.Printf("refresh: %v", msg.err)
		return nil
	}
	if !msg.changed {
		return nil
	}
	h.Err = nil
	h.renderFromCache()
	return h.handleCheckDue(time.Now())
}

// handleSynced applies the results of the refresh and day fetch that follow
// a mutation. Nothing is re-rendered before both are in.
func (h *Handler) handleSynced(msg syncedMsg) tea.Cmd {
	if msg.mutation {
		h.Mutation.End()
	}
	h.Loading = false
	h.StatusMsg = msg.status

	if msg.refreshErr != nil {
		h.StatusMsg = msg.status + " (refresh failed: " + api.UserMessage(msg.refreshErr) + ")"
		log.Printf("sync refresh: %v", msg.refreshErr)
	}
	if msg.date != "" {
		h.handleDayLoaded(msg.date, msg.dayTasks, msg.dayErr)
	}

	h.renderFromCache()
	return h.handleCheckDue(time.Now())
}

func (h *Handler) handleDayLoaded(date string, tasks []api.Task, err error) {
	if date != h.SelectedDate {
		return
	}
	if err != nil {
		h.StatusMsg = "Could not load day: " + api.UserMessage(err)
		log.Printf("load day %s: %v", date, err)
		h.DayComp.SetData(h.DayTasks)
		return
	}
	h.DayTasks = tasks
	h.DayComp.SetData(tasks)
}

// renderFromCache recomputes every cache-derived view.
func (h *Handler) renderFromCache() {
	tasks := h.Cache.All()
	h.CalendarComp.SetTasks(tasks)
	h.KanbanComp.SetData(tasks)
}

// goBack closes the topmost view.
func (h *Handler) goBack() {
	switch h.CurrentView {
	case state.ViewHelp:
		h.CurrentView = h.PreviousView
	case state.ViewTaskForm:
		h.closeForm()
	case state.ViewDay:
		h.closeDay()
	}
}

func (h *Handler) closeDay() {
	h.DayOpen = false
	h.DayTasks = nil
	h.CurrentView = h.MainView()
}
