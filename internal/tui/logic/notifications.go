package logic

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/hy4ri/planner-tui/internal/api"
)

// notify sends a desktop notification. Tests replace it.
var notify = func(title, message string) error {
	return beeep.Notify(title, message, "")
}

type checkDueMsg time.Time

func checkDueCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return checkDueMsg(t)
	})
}

// handleCheckDue notifies once per session about every open task dated today.
// Tasks are marked here; the notifications themselves are sent by the
// returned commands.
func (h *Handler) handleCheckDue(now time.Time) tea.Cmd {
	if h.Config != nil && !h.Config.UI.Notifications {
		return nil
	}

	var cmds []tea.Cmd
	today := now.Format(api.DateLayout)
	for _, task := range h.Cache.ByDate(today) {
		if h.NotifiedTasks[task.ID] || task.IsCompleted() {
			continue
		}
		h.NotifiedTasks[task.ID] = true

		id := task.ID
		body := task.Titulo
		if task.Asunto != "" {
			body += " (" + task.Asunto + ")"
		}
		cmds = append(cmds, func() tea.Msg {
			if err := notify("Due today", body); err != nil {
				log.Printf("notify task %d: %v", id, err)
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}
