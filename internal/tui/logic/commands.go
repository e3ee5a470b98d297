package logic

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"golang.org/x/sync/errgroup"
)

// refreshCmd reloads the task cache. Overlapping calls collapse into the one
// already running.
func (h *Handler) refreshCmd() tea.Cmd {
	cache := h.Cache
	return func() tea.Msg {
		changed, err := cache.Refresh()
		return refreshedMsg{changed: changed, err: err}
	}
}

// loadDayCmd fetches the tasks of one date from the server, bypassing the
// cache.
func (h *Handler) loadDayCmd(date string) tea.Cmd {
	client := h.Client
	return func() tea.Msg {
		tasks, err := client.ListTasksByDate(date)
		return dayLoadedMsg{date: date, tasks: tasks, err: err}
	}
}

// syncAfter tells a sync what preceded it.
type syncAfter int

const (
	afterReload   syncAfter = iota // the user asked for fresh data
	afterSave                      // a form save changed a task
	afterMutation                  // a toggle, move or delete; releases State.Mutation
)

// syncCmd refreshes the cache and, when a day is open, re-fetches that day.
// Both run concurrently; the message is sent once both are done.
func (h *Handler) syncCmd(status string, after syncAfter) tea.Cmd {
	cache := h.Cache
	client := h.Client
	date := h.openDate()
	return func() tea.Msg {
		return runSync(cache, client, status, after, date)
	}
}

func runSync(cache *state.Cache, client *api.Client, status string, after syncAfter, date string) syncedMsg {
	msg := syncedMsg{status: status, mutation: after == afterMutation, date: date}

	refresh := cache.Invalidate
	if after == afterReload {
		refresh = cache.Refresh
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := refresh()
		msg.refreshErr = err
		return err
	})
	if date != "" {
		g.Go(func() error {
			tasks, err := client.ListTasksByDate(date)
			msg.dayTasks = tasks
			msg.dayErr = err
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("sync after %q: %v", status, err)
	}
	return msg
}

// mutate runs one status update or delete, then syncs. Only one mutation runs
// at a time; a gesture made while another is in flight is dropped.
func (h *Handler) mutate(action string, id int, done string, call func(*api.Client) error) tea.Cmd {
	if !h.Mutation.TryBegin() {
		h.StatusMsg = "Still saving, try again in a moment"
		log.Printf("%s task %d: mutation already in flight, skipping", action, id)
		return nil
	}
	h.Loading = true

	client := h.Client
	sync := h.syncCmd(done, afterMutation)
	return func() tea.Msg {
		if err := call(client); err != nil {
			return mutationFailedMsg{action: action, id: id, err: err}
		}
		return sync()
	}
}

// moveCmd sends a status-only update.
func (h *Handler) moveCmd(action string, id int, status api.Status, done string) tea.Cmd {
	return h.mutate(action, id, done, func(c *api.Client) error {
		_, err := c.UpdateTask(id, api.StatusUpdate(status))
		return err
	})
}

func (h *Handler) deleteCmd(id int) tea.Cmd {
	return h.mutate("Delete", id, "Task deleted", func(c *api.Client) error {
		return c.DeleteTask(id)
	})
}

// submitForm saves the open form. Only one save runs at a time, whichever
// form it came from; a submit made meanwhile is dropped.
func (h *Handler) submitForm() tea.Cmd {
	f := h.TaskForm
	if f == nil {
		return nil
	}
	if err := f.Validate(); err != nil {
		f.Err = err.Error()
		return nil
	}
	if !h.Save.TryBegin() {
		if !f.Saving() {
			f.Err = "Still saving the previous task, try again in a moment"
		}
		log.Printf("form: save already in flight, skipping")
		return nil
	}
	f.BeginSave()
	h.Loading = true

	client := h.Client
	if f.IsEdit() {
		id, req := f.TaskID, f.ToUpdateRequest()
		return func() tea.Msg {
			task, err := client.UpdateTask(id, req)
			return taskSavedMsg{form: f, task: task, err: err}
		}
	}

	req := f.ToCreateRequest()
	return func() tea.Msg {
		task, err := client.CreateTask(req)
		return taskSavedMsg{form: f, task: task, created: true, err: err}
	}
}

// handleTaskSaved closes the form on success and keeps it open with its data
// on failure. A result for a form that is no longer open only reaches the
// status bar.
func (h *Handler) handleTaskSaved(msg taskSavedMsg) tea.Cmd {
	h.Save.End()
	h.Loading = false

	f := msg.form
	open := f != nil && f == h.TaskForm && h.CurrentView == state.ViewTaskForm
	if f != nil {
		f.EndSave()
	}

	if msg.err != nil {
		log.Printf("save task: %v", msg.err)
		if open {
			f.Err = api.UserMessage(msg.err)
		} else {
			h.StatusMsg = "Save failed: " + api.UserMessage(msg.err)
		}
		return nil
	}

	status := "Task updated"
	if msg.created {
		status = "Task created"
	}
	if open {
		h.closeForm()
	}
	h.Loading = true
	return h.syncCmd(status, afterSave)
}
