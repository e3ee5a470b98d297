package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
)

const (
	helpColumnWidth = 44
	helpKeyWidth    = 14
)

// HelpBinding is one key and what it does.
type HelpBinding struct {
	Key  string
	Desc string
}

// HelpSection groups the bindings of one screen or concern.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// HelpModel lists the key bindings, grouped by section.
type HelpModel struct {
	width, height int
	sections      []HelpSection
	offset        int
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component. j/k scroll when the sections do not fit.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch key.String() {
	case "esc", "?", "q":
		h.offset = 0
		return h, func() tea.Msg { return BackRequestMsg{} }
	case "j", "down":
		h.scroll(1)
	case "k", "up":
		h.scroll(-1)
	}
	return h, nil
}

func (h *HelpModel) scroll(delta int) {
	h.offset += delta
	if limit := len(h.lines()) - h.bodyHeight(); h.offset > limit {
		h.offset = limit
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

// bodyHeight is the room left for sections under the title and above the
// footer.
func (h *HelpModel) bodyHeight() int {
	if h.height <= 0 {
		return 1 << 30
	}
	return max(h.height-4, 1)
}

// View implements Component.
func (h *HelpModel) View() string {
	if len(h.sections) == 0 {
		return styles.Dialog.Render("No keybindings registered")
	}

	lines := h.lines()
	end := min(h.offset+h.bodyHeight(), len(lines))
	body := strings.Join(lines[h.offset:end], "\n")

	footer := "Press esc or ? to close"
	if len(lines) > h.bodyHeight() {
		footer = "j/k scroll | " + footer
	}

	return styles.Title.Render("Keyboard shortcuts") + "\n\n" +
		body + "\n\n" +
		lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(styles.HelpDesc.Render(footer))
}

// lines lays the sections out in as many columns as fit, each section going
// to the shortest column so far.
func (h *HelpModel) lines() []string {
	cols := max(h.width/helpColumnWidth, 1)
	cols = min(cols, len(h.sections))

	blocks := make([][]string, cols)
	for _, s := range h.sections {
		shortest := 0
		for i := range blocks {
			if len(blocks[i]) < len(blocks[shortest]) {
				shortest = i
			}
		}
		blocks[shortest] = append(blocks[shortest], renderHelpSection(s)...)
	}

	rendered := make([]string, cols)
	column := lipgloss.NewStyle().Width(helpColumnWidth).PaddingLeft(2)
	for i, b := range blocks {
		rendered[i] = column.Render(strings.Join(b, "\n"))
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, rendered...), "\n")
}

func renderHelpSection(s HelpSection) []string {
	keyStyle := styles.HelpKey.Width(helpKeyWidth).Align(lipgloss.Right).PaddingRight(2)

	out := []string{styles.SectionHeader.Render(" " + s.Title + " ")}
	for _, b := range s.Bindings {
		out = append(out, keyStyle.Render(b.Key)+styles.HelpDesc.Render(b.Desc))
	}
	return append(out, "")
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.scroll(0)
}

// SetSections sets the bindings to list.
func (h *HelpModel) SetSections(sections []HelpSection) {
	h.sections = sections
	h.offset = 0
}
