// Package tui provides the terminal user interface for the planner.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/config"
	"github.com/hy4ri/planner-tui/internal/tui/logic"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"github.com/hy4ri/planner-tui/internal/tui/ui"
)

// App is the main Bubble Tea model for the application. State changes go
// through the handler, drawing through the renderer; both share one State.
type App struct {
	handler  *logic.Handler
	renderer *ui.Renderer
}

// NewApp creates the application model. initialView ("calendar" or
// "kanban") overrides the configured start view when set.
func NewApp(client *api.Client, cfg *config.Config, initialView string) *App {
	s := state.New(client, cfg)
	switch initialView {
	case "calendar":
		s.SwitchTab(state.TabCalendar)
	case "kanban":
		s.SwitchTab(state.TabKanban)
	}

	return &App{
		handler:  logic.NewHandler(s),
		renderer: ui.NewRenderer(s),
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.handler.Init()
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.handler.Update(msg)
}

// View implements tea.Model.
func (a *App) View() string {
	return a.renderer.View()
}
