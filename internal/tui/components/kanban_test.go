package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
)

func sampleTasks() []api.Task {
	return []api.Task{
		{ID: 1, Titulo: "Write report", Status: api.StatusInbox},
		{ID: 2, Titulo: "Study", Status: api.StatusIncompleta, Fecha: "2025-03-15"},
		{ID: 3, Titulo: "Ship", Status: api.StatusCompleta},
		{ID: 4, Titulo: "Unknown", Status: "archived"},
		{ID: 5, Titulo: "Call Ana", Status: api.StatusIncompleta},
	}
}

func TestPartitionBoard(t *testing.T) {
	tasks := append(sampleTasks(), api.Task{ID: 2, Titulo: "Study again", Status: api.StatusCompleta})
	b := PartitionBoard(tasks)

	if len(b.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(b.Columns))
	}
	if b.Size() != 5 {
		t.Errorf("expected 5 unique cards, got %d", b.Size())
	}

	seen := map[int]bool{}
	for _, col := range b.Columns {
		for _, task := range col.Tasks {
			if seen[task.ID] {
				t.Errorf("task %d appears twice", task.ID)
			}
			seen[task.ID] = true
		}
	}

	inbox := b.Column(api.StatusInbox)
	if len(inbox.Tasks) != 2 || inbox.Tasks[0].ID != 1 || inbox.Tasks[1].ID != 4 {
		t.Errorf("unexpected inbox column: %+v", inbox.Tasks)
	}
	progress := b.Column(api.StatusIncompleta)
	if len(progress.Tasks) != 2 || progress.Tasks[0].ID != 2 || progress.Tasks[1].ID != 5 {
		t.Errorf("input order should be kept: %+v", progress.Tasks)
	}
	if len(b.Column(api.StatusCompleta).Tasks) != 1 {
		t.Errorf("duplicate id must not add a second card")
	}
}

func TestPartitionBoard_Empty(t *testing.T) {
	b := PartitionBoard(nil)
	if b.Size() != 0 {
		t.Errorf("expected empty board, got %d cards", b.Size())
	}
	for i, s := range api.Statuses {
		if b.Columns[i].Status != s {
			t.Errorf("column %d: got %q, want %q", i, b.Columns[i].Status, s)
		}
	}
}

func newTestBoard(rec *recorder) *KanbanModel {
	k := NewKanban()
	k.SetActions(rec)
	k.SetSize(90, 30)
	k.SetData(sampleTasks())
	return k
}

func TestKanban_KeyboardDragAndDrop(t *testing.T) {
	tests := []struct {
		name    string
		actions []string
		want    []string
	}{
		{"drop on done", []string{"pick", "right", "right", "pick"}, []string{"move 1 completa"}},
		{"drop on same column", []string{"pick", "pick"}, []string{"move 1 inbox"}},
		{"target stops at last column", []string{"pick", "right", "right", "right", "pick"}, []string{"move 1 completa"}},
		{"escape cancels", []string{"pick", "right", "back", "pick"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			k := newTestBoard(rec)
			for _, a := range tt.actions {
				k.HandleAction(a)
			}
			// A cancelled drag leaves the last "pick" holding the card.
			if len(tt.want) == 0 {
				if len(rec.calls) != 0 {
					t.Errorf("expected no moves, got %v", rec.calls)
				}
				return
			}
			if strings.Join(rec.calls, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", rec.calls, tt.want)
			}
			if _, picked := k.Picked(); picked {
				t.Error("drop should clear the picked card")
			}
		})
	}
}

func TestKanban_CardActions(t *testing.T) {
	rec := &recorder{}
	k := newTestBoard(rec)

	k.HandleAction("right")
	k.HandleAction("down")
	k.HandleAction("edit")
	k.HandleAction("complete")
	k.HandleAction("delete")

	want := "edit 5,toggle 5,delete 5"
	if got := strings.Join(rec.calls, ","); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestKanban_MouseDrag(t *testing.T) {
	rec := &recorder{}
	k := newTestBoard(rec)
	firstCardY := 1 + kanbanHeaderLines

	k.Update(tea.MouseMsg{X: 5, Y: firstCardY, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	k.Update(tea.MouseMsg{X: 40, Y: firstCardY, Action: tea.MouseActionMotion})
	k.Update(tea.MouseMsg{X: 70, Y: firstCardY, Action: tea.MouseActionMotion})
	k.Update(tea.MouseMsg{X: 70, Y: firstCardY, Action: tea.MouseActionRelease})

	if len(rec.calls) != 1 || rec.calls[0] != "move 1 completa" {
		t.Fatalf("expected one move to completa, got %v", rec.calls)
	}

	// A click without motion only selects.
	k.Update(tea.MouseMsg{X: 35, Y: firstCardY + kanbanCardLines, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	k.Update(tea.MouseMsg{X: 35, Y: firstCardY + kanbanCardLines, Action: tea.MouseActionRelease})
	if len(rec.calls) != 1 {
		t.Errorf("click should not move, got %v", rec.calls)
	}
	if id, _ := k.SelectedID(); id != 5 {
		t.Errorf("click should select card 5, got %d", id)
	}
}

func TestKanban_CursorFollowsMovedCard(t *testing.T) {
	k := newTestBoard(&recorder{})
	k.HandleAction("right") // Study, incompleta

	moved := sampleTasks()
	moved[1].Status = api.StatusCompleta
	k.SetData(moved)

	if id, _ := k.SelectedID(); id != 2 {
		t.Errorf("cursor should stay on task 2, got %d", id)
	}
	if k.FocusedColumn() != 2 {
		t.Errorf("cursor should move to the done column, got %d", k.FocusedColumn())
	}
}

func TestKanban_View(t *testing.T) {
	k := newTestBoard(&recorder{})
	view := k.View()

	for _, want := range []string{"Inbox (2)", "In progress (2)", "Done (1)", "Write report", "Study", "2025-03-15"} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
	if strings.Count(view, "Study") != 1 {
		t.Error("each task should be rendered once")
	}
}

func TestKanban_CardShowsDescription(t *testing.T) {
	k := NewKanban()
	k.SetSize(90, 30)
	k.SetData([]api.Task{
		{ID: 1, Titulo: "Study", Descripcion: "Chapter 4", Status: api.StatusInbox},
		{ID: 2, Titulo: "Read", Status: api.StatusInbox},
	})

	lines := strings.Split(k.View(), "\n")
	title, desc := -1, -1
	for i, line := range lines {
		if strings.Contains(line, "Study") {
			title = i
		}
		if strings.Contains(line, "Chapter 4") {
			desc = i
		}
	}
	if title < 0 || desc != title+1 {
		t.Errorf("description should sit under the title, got title line %d, description line %d", title, desc)
	}
}
