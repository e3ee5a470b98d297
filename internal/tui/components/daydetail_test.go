package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
)

func TestDayDetail_EmptyAndLoading(t *testing.T) {
	d := NewDayDetail()
	d.SetDate("2025-03-15")
	if !strings.Contains(d.View(), "Loading") {
		t.Error("expected loading state before data arrives")
	}

	d.SetData(nil)
	view := d.View()
	if !strings.Contains(view, "No tasks for this day.") {
		t.Error("expected empty message")
	}
	if !strings.Contains(view, "Saturday, March 15 2025") {
		t.Error("expected formatted date title")
	}
}

func TestDayDetail_Actions(t *testing.T) {
	rec := &recorder{}
	d := NewDayDetail()
	d.SetActions(rec)
	d.SetDate("2025-03-15")
	d.SetData([]api.Task{
		{ID: 7, Titulo: "Study", Status: api.StatusIncompleta},
		{ID: 8, Titulo: "Read", Status: api.StatusCompleta},
	})

	d.HandleAction("complete")
	d.HandleAction("down")
	d.HandleAction("select")
	d.HandleAction("delete")
	d.HandleAction("down") // stays on the last row
	d.HandleAction("pick")

	want := "toggle 7,edit 8,delete 8,toggle 8"
	if got := strings.Join(rec.calls, ","); got != want {
		t.Errorf("got %s, want %s", got, want)
	}

	cmd := d.HandleAction("back")
	if cmd == nil {
		t.Fatal("back should request closing")
	}
	if _, ok := cmd().(BackRequestMsg); !ok {
		t.Error("back should emit BackRequestMsg")
	}
}

func TestDayDetail_MouseDelegation(t *testing.T) {
	rec := &recorder{}
	d := NewDayDetail()
	d.SetActions(rec)
	d.SetData([]api.Task{
		{ID: 7, Titulo: "Study"},
		{ID: 8, Titulo: "Read"},
	})

	d.Update(tea.MouseMsg{X: 3, Y: dayListTop + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	d.Update(tea.MouseMsg{X: 12, Y: dayListTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	d.Update(tea.MouseMsg{X: 12, Y: dayListTop + 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	want := "toggle 8,edit 7"
	if got := strings.Join(rec.calls, ","); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDayDetail_CompletedMarker(t *testing.T) {
	d := NewDayDetail()
	d.SetSize(80, 20)
	d.SetData([]api.Task{
		{ID: 1, Titulo: "Done task", Status: api.StatusCompleta, Importancia: api.ImportanceAlta},
		{ID: 2, Titulo: "Open task", Status: api.StatusIncompleta},
	})

	view := d.View()
	if !strings.Contains(view, "[x]") || !strings.Contains(view, "[ ]") {
		t.Error("expected one checked and one unchecked marker")
	}
	if !strings.Contains(view, "alta") {
		t.Error("expected importance label")
	}
}

func TestDayDetail_Description(t *testing.T) {
	d := NewDayDetail()
	d.SetData([]api.Task{{ID: 1, Titulo: "Study", Descripcion: "Chapter 4", Status: api.StatusIncompleta}})

	d.SetSize(100, 20)
	if !strings.Contains(d.View(), "Chapter 4") {
		t.Error("wide rows should show the description")
	}

	d.SetSize(24, 20)
	if strings.Contains(d.View(), "Chapter") {
		t.Error("narrow rows should leave the description out")
	}
}
