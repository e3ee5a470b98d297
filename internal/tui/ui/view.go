package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
)

type Renderer struct {
	*state.State
}

func NewRenderer(s *state.State) *Renderer {
	return &Renderer{State: s}
}

func (r *Renderer) View() string {
	if r.Width == 0 {
		return "Loading..."
	}

	var content string
	switch r.CurrentView {
	case state.ViewHelp:
		content = r.HelpComp.View()
	case state.ViewTaskForm:
		content = r.renderTaskForm()
	default:
		content = r.renderMainView()
	}

	type overlaySpec struct {
		active bool
		render func() string
	}

	overlays := []overlaySpec{
		{r.ConfirmDelete, r.renderDeleteDialog},
	}

	for _, o := range overlays {
		if o.active {
			content = r.overlayContent(o.render())
		}
	}

	return content
}

// renderMainView renders the tab bar, the body of the current view and the
// status bar.
func (r *Renderer) renderMainView() string {
	tabBar := r.renderTabBar()
	bottomBar := r.renderStatusBar()

	contentHeight := r.Height - lipgloss.Height(tabBar) - lipgloss.Height(bottomBar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	switch r.CurrentView {
	case state.ViewKanban:
		body = r.KanbanComp.View()
	case state.ViewDay:
		body = r.DayComp.View()
	default:
		body = r.CalendarComp.View()
	}

	body = lipgloss.NewStyle().MaxHeight(contentHeight).Render(body)
	body = lipgloss.Place(r.Width, contentHeight, lipgloss.Left, lipgloss.Top, body)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, body, bottomBar)
}

// renderTabBar renders the top tab bar. Its layout is mirrored by the mouse
// handler, which maps clicks back to tabs.
func (r *Renderer) renderTabBar() string {
	var tabStrs []string
	for _, t := range state.GetTabDefinitions() {
		label := t.Label(r.Width)
		if r.CurrentTab == t.Tab {
			tabStrs = append(tabStrs, styles.TabActive.Render(label))
		} else {
			tabStrs = append(tabStrs, styles.Tab.Render(label))
		}
	}

	tabLine := strings.Join(tabStrs, " ")

	maxWidth := r.Width - 4
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(r.Width).Render(tabLine)
}

// overlayContent centers a dialog over the screen.
func (r *Renderer) overlayContent(dialog string) string {
	return lipgloss.Place(r.Width, r.Height, lipgloss.Center, lipgloss.Center, dialog)
}
