package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
	"github.com/hy4ri/planner-tui/internal/tui/utils"
)

// renderStatusBar renders the bottom status bar.
func (r *Renderer) renderStatusBar() string {
	left := ""
	if r.Loading {
		left = r.Spinner.View() + " "
	}
	if r.Err != nil {
		errStr := strings.ReplaceAll(api.UserMessage(r.Err), "\n", " ")
		left += styles.StatusBarError.Render("Error: " + errStr)
	} else if r.StatusMsg != "" {
		msgStr := strings.ReplaceAll(r.StatusMsg, "\n", " ")
		if strings.Contains(msgStr, "failed") {
			left += styles.StatusBarError.Render(msgStr)
		} else {
			left += styles.StatusBarSuccess.Render(msgStr)
		}
	}

	right := strings.Join(r.contextualHints(), " ")

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	padding := styles.StatusBar.GetHorizontalFrameSize()

	maxLeftWidth := r.Width - rightWidth - padding - 4
	if leftWidth > maxLeftWidth && maxLeftWidth > 10 {
		left = utils.TruncateString(left, maxLeftWidth)
		leftWidth = lipgloss.Width(left)
	}

	spacing := r.Width - leftWidth - rightWidth - padding
	if spacing < 0 {
		spacing = 0
	}

	return styles.StatusBar.Width(r.Width).Render(left + strings.Repeat(" ", spacing) + right)
}

// contextualHints returns the key hints of the current view.
func (r *Renderer) contextualHints() []string {
	key := func(k string) string { return styles.StatusBarKey.Render(k) }
	desc := func(d string) string { return styles.StatusBarText.Render(d) }

	switch r.CurrentView {
	case state.ViewKanban:
		if _, picked := r.KanbanComp.Picked(); picked {
			return []string{
				key("h/l") + desc(":target"),
				key("space") + desc(":drop"),
				key("esc") + desc(":cancel"),
			}
		}
		return []string{
			key("space") + desc(":pick"),
			key("x") + desc(":done"),
			key("e") + desc(":edit"),
			key("a") + desc(":add"),
			key("?") + desc(":help"),
		}
	case state.ViewDay:
		return []string{
			key("x") + desc(":toggle"),
			key("a") + desc(":add"),
			key("esc") + desc(":back"),
			key("?") + desc(":help"),
		}
	}
	return []string{
		key("enter") + desc(":open"),
		key("[/]") + desc(":month"),
		key("v") + desc(":view"),
		key("a") + desc(":add"),
		key("?") + desc(":help"),
	}
}
