package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/config"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

func newTestRenderer(width, height int) *Renderer {
	s := state.New(nil, config.DefaultConfig())
	s.Width, s.Height = width, height
	s.Loading = false
	s.CalendarComp.SetSize(width, height-state.HeaderHeight-1)
	s.KanbanComp.SetSize(width, height-state.HeaderHeight-1)
	s.DayComp.SetSize(width, height-state.HeaderHeight-1)
	return NewRenderer(s)
}

func TestView_NotSized(t *testing.T) {
	r := newTestRenderer(0, 0)
	if got := r.View(); got != "Loading..." {
		t.Errorf("expected the loading placeholder, got %q", got)
	}
}

func TestView_TabBarHeight(t *testing.T) {
	r := newTestRenderer(100, 30)
	if h := lipgloss.Height(r.renderTabBar()); h != state.HeaderHeight {
		t.Errorf("tab bar height = %d, want %d", h, state.HeaderHeight)
	}

	bar := r.renderTabBar()
	for _, want := range []string{"Calendar", "Board"} {
		if !strings.Contains(bar, want) {
			t.Errorf("tab bar missing %q: %s", want, bar)
		}
	}

	r.Width = 60
	if bar := r.renderTabBar(); !strings.Contains(bar, "Brd") {
		t.Errorf("narrow tab bar should use short names: %s", bar)
	}
}

func TestView_MainViews(t *testing.T) {
	r := newTestRenderer(100, 30)
	tasks := []api.Task{
		{ID: 1, Titulo: "Study", Fecha: "2025-03-15", Status: api.StatusIncompleta},
		{ID: 2, Titulo: "Call Ana", Status: api.StatusInbox},
	}
	r.Cache.Replace(tasks)
	r.CalendarComp.SetTasks(tasks)
	r.KanbanComp.SetData(tasks)
	r.CalendarComp.Select("2025-03-15")

	if out := r.View(); !strings.Contains(out, "March 2025") {
		t.Errorf("calendar view should show the month:\n%s", out)
	}

	r.SwitchTab(state.TabKanban)
	out := r.View()
	for _, want := range []string{"Inbox", "In progress", "Done", "Call Ana", "Study"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q", want)
		}
	}
	if lines := lipgloss.Height(out); lines != r.Height {
		t.Errorf("main view should fill the screen, got %d lines", lines)
	}
}

func TestView_StatusBar(t *testing.T) {
	r := newTestRenderer(100, 30)

	r.StatusMsg = "Task created"
	if out := r.renderStatusBar(); !strings.Contains(out, "Task created") {
		t.Errorf("status missing: %s", out)
	}

	r.Err = errors.New("boom")
	if out := r.renderStatusBar(); !strings.Contains(out, "Error:") {
		t.Errorf("error missing: %s", out)
	}
}

func TestView_DeleteDialog(t *testing.T) {
	r := newTestRenderer(100, 30)
	r.Cache.Replace([]api.Task{{ID: 4, Titulo: "Old report"}})
	r.ConfirmDelete = true
	r.DeleteTaskID = 4

	out := r.View()
	if !strings.Contains(out, `Delete "Old report"?`) {
		t.Errorf("dialog should name the task:\n%s", out)
	}
}

func TestView_TaskForm(t *testing.T) {
	r := newTestRenderer(100, 40)
	f := state.NewDayTaskForm("2025-03-15")
	f.AddLink("Paper (https://example.com)")
	f.Err = "title is required"
	r.TaskForm = f
	r.CurrentView = state.ViewTaskForm

	out := r.View()
	for _, want := range []string{"Add Task for Sat, Mar 15", "Paper (https://example.com)", "title is required", "(•) baja", "[ Save ]"} {
		if !strings.Contains(out, want) {
			t.Errorf("form missing %q:\n%s", want, out)
		}
	}

	f.Focus(state.FormFieldLinks)
	f.TagCursor = 0
	if out := r.View(); !strings.Contains(out, "× Paper (https://example.com)") {
		t.Errorf("picked chip should be marked:\n%s", out)
	}

	r.TaskForm = state.NewEditTaskForm(api.Task{ID: 1, Titulo: "Study"})
	if out := r.View(); !strings.Contains(out, "Edit Task") {
		t.Errorf("edit form should say so:\n%s", out)
	}
}
