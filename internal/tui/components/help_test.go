package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testSections() []HelpSection {
	var sections []HelpSection
	for _, title := range []string{"Navigation", "Calendar", "Board", "General"} {
		sections = append(sections, HelpSection{Title: title, Bindings: []HelpBinding{
			{Key: "a", Desc: title + " first"},
			{Key: "b", Desc: title + " second"},
		}})
	}
	return sections
}

func TestHelp_Columns(t *testing.T) {
	h := NewHelp()
	h.SetSections(testSections())

	h.SetSize(200, 60)
	wide := len(h.lines())
	h.SetSize(50, 60)
	narrow := len(h.lines())
	if wide >= narrow {
		t.Errorf("a wide screen should use more columns: %d lines wide, %d narrow", wide, narrow)
	}

	view := h.View()
	for _, want := range []string{"Navigation", "General second", "Press esc or ? to close"} {
		if !strings.Contains(view, want) {
			t.Errorf("help should contain %q", want)
		}
	}
	if strings.Contains(view, "j/k scroll") {
		t.Error("no scroll hint when everything fits")
	}
}

func TestHelp_Scroll(t *testing.T) {
	h := NewHelp()
	h.SetSections(testSections())
	h.SetSize(50, 8)

	if !strings.Contains(h.View(), "j/k scroll") {
		t.Fatal("expected a scroll hint on a short screen")
	}
	if strings.Contains(h.View(), "General second") {
		t.Fatal("the last section should be off screen")
	}

	for i := 0; i < 100; i++ {
		h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	if !strings.Contains(h.View(), "General second") {
		t.Error("scrolling down should reach the last section")
	}
	if h.offset != len(h.lines())-h.bodyHeight() {
		t.Errorf("scroll should stop at the end, offset %d", h.offset)
	}

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should close help")
	}
	if _, ok := cmd().(BackRequestMsg); !ok {
		t.Error("esc should emit BackRequestMsg")
	}
	if h.offset != 0 {
		t.Error("closing should reset the scroll")
	}
}

func TestHelp_Empty(t *testing.T) {
	if !strings.Contains(NewHelp().View(), "No keybindings") {
		t.Error("expected a placeholder without sections")
	}
}
