package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
	"github.com/hy4ri/planner-tui/internal/tui/utils"
)

const (
	kanbanHeaderLines = 2 // column title and the blank line under it
	kanbanCardLines   = 3 // title, description, meta
	kanbanMinColumn   = 20
)

// Column is one status bucket of the board.
type Column struct {
	Status api.Status
	Tasks  []api.Task
}

// Board is the three-column partition of the task list.
type Board struct {
	Columns []Column
}

// PartitionBoard splits tasks into the inbox, incompleta and completa
// columns, keeping input order inside each column. A task id appears at most
// once on the board; unknown statuses land in inbox.
func PartitionBoard(tasks []api.Task) Board {
	b := Board{Columns: make([]Column, len(api.Statuses))}
	index := make(map[api.Status]int, len(api.Statuses))
	for i, s := range api.Statuses {
		b.Columns[i] = Column{Status: s, Tasks: []api.Task{}}
		index[s] = i
	}

	seen := make(map[int]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		i := index[t.Bucket()]
		b.Columns[i].Tasks = append(b.Columns[i].Tasks, t)
	}
	return b
}

// Size returns the number of cards on the board.
func (b Board) Size() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// Column returns the column for status.
func (b Board) Column(status api.Status) Column {
	for _, c := range b.Columns {
		if c.Status == status {
			return c
		}
	}
	return Column{Status: status}
}

// Find returns the position of the card with the given id.
func (b Board) Find(id int) (col, row int, ok bool) {
	for ci, c := range b.Columns {
		for ri, t := range c.Tasks {
			if t.ID == id {
				return ci, ri, true
			}
		}
	}
	return 0, 0, false
}

// KanbanModel renders the board and turns pick-up/drop gestures into moves.
type KanbanModel struct {
	board   Board
	col     int
	rows    []int
	offsets []int

	// Drag state: the picked card and the column it would drop into.
	picked    int
	hasPick   bool
	target    int
	mouseDrag bool
	dragMoved bool

	width, height int
	focused       bool
	actions       TaskActions
}

// NewKanban creates an empty board.
func NewKanban() *KanbanModel {
	k := &KanbanModel{
		board:   PartitionBoard(nil),
		focused: true,
		actions: NoActions{},
	}
	k.rows = make([]int, len(k.board.Columns))
	k.offsets = make([]int, len(k.board.Columns))
	return k
}

// SetActions sets the receiver of card gestures.
func (k *KanbanModel) SetActions(a TaskActions) {
	k.actions = a
}

// Init implements Component.
func (k *KanbanModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (k *KanbanModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		return k, k.handleMouse(msg)
	}
	return k, nil
}

// SetData implements DataReceiver. The board is rebuilt from scratch and the
// cursor follows the card it was on.
func (k *KanbanModel) SetData(tasks []api.Task) {
	current, hadCurrent := k.SelectedID()

	k.board = PartitionBoard(tasks)

	if hadCurrent {
		if col, row, ok := k.board.Find(current); ok {
			k.col = col
			k.rows[col] = row
		}
	}
	for i := range k.rows {
		k.clampRow(i)
	}
	if k.hasPick {
		if _, _, ok := k.board.Find(k.picked); !ok {
			k.CancelPick()
		}
	}
}

// Board returns the current partition.
func (k *KanbanModel) Board() Board {
	return k.board
}

// FocusedColumn returns the index of the column holding the cursor.
func (k *KanbanModel) FocusedColumn() int {
	return k.col
}

// SelectedTask returns the card under the cursor.
func (k *KanbanModel) SelectedTask() (api.Task, bool) {
	tasks := k.board.Columns[k.col].Tasks
	row := k.rows[k.col]
	if row < 0 || row >= len(tasks) {
		return api.Task{}, false
	}
	return tasks[row], true
}

// SelectedID returns the id of the card under the cursor.
func (k *KanbanModel) SelectedID() (int, bool) {
	t, ok := k.SelectedTask()
	return t.ID, ok
}

// Picked returns the id of the card being dragged.
func (k *KanbanModel) Picked() (int, bool) {
	return k.picked, k.hasPick
}

// DropTarget returns the column a picked card would land in.
func (k *KanbanModel) DropTarget() int {
	return k.target
}

// CancelPick drops the drag without moving anything.
func (k *KanbanModel) CancelPick() {
	k.picked = 0
	k.hasPick = false
	k.mouseDrag = false
	k.dragMoved = false
}

// HandleAction implements ActionHandler.
func (k *KanbanModel) HandleAction(action string) tea.Cmd {
	last := len(k.board.Columns) - 1
	switch action {
	case "left":
		if k.hasPick {
			k.target = max(k.target-1, 0)
		} else {
			k.col = max(k.col-1, 0)
		}
	case "right":
		if k.hasPick {
			k.target = min(k.target+1, last)
		} else {
			k.col = min(k.col+1, last)
		}
	case "up":
		k.rows[k.col]--
		k.clampRow(k.col)
	case "down":
		k.rows[k.col]++
		k.clampRow(k.col)
	case "top":
		k.rows[k.col] = 0
		k.clampRow(k.col)
	case "bottom":
		k.rows[k.col] = len(k.board.Columns[k.col].Tasks) - 1
		k.clampRow(k.col)
	case "pick":
		return k.togglePick()
	case "back":
		k.CancelPick()
	case "select", "edit":
		if id, ok := k.SelectedID(); ok {
			return k.actions.OnEdit(id)
		}
	case "delete":
		if id, ok := k.SelectedID(); ok {
			return k.actions.OnDelete(id)
		}
	case "complete":
		if id, ok := k.SelectedID(); ok {
			return k.actions.OnToggle(id)
		}
	}
	return nil
}

func (k *KanbanModel) togglePick() tea.Cmd {
	if k.hasPick {
		return k.drop(k.target)
	}
	id, ok := k.SelectedID()
	if !ok {
		return nil
	}
	k.picked = id
	k.hasPick = true
	k.target = k.col
	return nil
}

// drop releases the picked card over column col. A drop on the source
// column still issues the move.
func (k *KanbanModel) drop(col int) tea.Cmd {
	if !k.hasPick || col < 0 || col >= len(k.board.Columns) {
		k.CancelPick()
		return nil
	}
	id := k.picked
	status := k.board.Columns[col].Status
	k.CancelPick()
	return k.actions.OnMove(id, status)
}

func (k *KanbanModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		col, ok := k.columnAt(msg.X)
		if !ok {
			return nil
		}
		k.col = col
		if row, ok := k.cardAt(col, msg.Y); ok {
			k.rows[col] = row
			k.CancelPick()
			if id, ok := k.SelectedID(); ok {
				k.picked = id
				k.hasPick = true
				k.target = col
				k.mouseDrag = true
			}
		}
	case tea.MouseActionMotion:
		if k.mouseDrag {
			k.dragMoved = true
			if col, ok := k.columnAt(msg.X); ok {
				k.target = col
			}
		}
	case tea.MouseActionRelease:
		if !k.mouseDrag {
			return nil
		}
		// A press and release without motion is a click, not a drag.
		col, ok := k.columnAt(msg.X)
		if !ok || !k.dragMoved {
			k.CancelPick()
			return nil
		}
		return k.drop(col)
	}
	return nil
}

func (k *KanbanModel) columnWidth() int {
	w := k.width / len(k.board.Columns)
	if w < kanbanMinColumn {
		w = kanbanMinColumn
	}
	return w
}

func (k *KanbanModel) columnAt(x int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	col := x / k.columnWidth()
	if col >= len(k.board.Columns) {
		return 0, false
	}
	return col, true
}

// cardAt maps a y position inside the board to a card row of column col.
func (k *KanbanModel) cardAt(col, y int) (int, bool) {
	top := 1 + kanbanHeaderLines // border
	if y < top {
		return 0, false
	}
	row := (y-top)/kanbanCardLines + k.offsets[col]
	if row >= len(k.board.Columns[col].Tasks) {
		return 0, false
	}
	return row, true
}

func (k *KanbanModel) clampRow(col int) {
	n := len(k.board.Columns[col].Tasks)
	if k.rows[col] >= n {
		k.rows[col] = n - 1
	}
	if k.rows[col] < 0 {
		k.rows[col] = 0
	}
	k.ensureVisible(col)
}

func (k *KanbanModel) visibleCards() int {
	inner := k.height - 1 - 2 - kanbanHeaderLines // hint line, border
	if n := inner / kanbanCardLines; n > 1 {
		return n
	}
	return 1
}

func (k *KanbanModel) ensureVisible(col int) {
	visible := k.visibleCards()
	row := k.rows[col]
	if row < k.offsets[col] {
		k.offsets[col] = row
	}
	if row >= k.offsets[col]+visible {
		k.offsets[col] = row - visible + 1
	}
	if k.offsets[col] < 0 {
		k.offsets[col] = 0
	}
}

// View implements Component.
func (k *KanbanModel) View() string {
	colWidth := k.columnWidth()
	inner := colWidth - 4 // border and padding
	bodyHeight := k.height - 1 - 2
	if bodyHeight < kanbanHeaderLines+kanbanCardLines {
		bodyHeight = kanbanHeaderLines + kanbanCardLines
	}

	columns := make([]string, 0, len(k.board.Columns))
	for i, column := range k.board.Columns {
		style := styles.KanbanColumn
		switch {
		case k.hasPick && i == k.target:
			style = styles.KanbanColumnDropTarget
		case k.focused && i == k.col:
			style = styles.KanbanColumnFocused
		}
		body := k.renderColumn(i, column, inner)
		columns = append(columns, style.Width(colWidth-2).Height(bodyHeight).Render(body))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	hint := styles.HelpDesc.Render("space pick/drop | h/l move | e edit | dd delete | x complete | n new inbox task | yy copy")
	return board + "\n" + hint
}

func (k *KanbanModel) renderColumn(i int, column Column, width int) string {
	var b strings.Builder

	title := fmt.Sprintf("%s (%d)", column.Status.Label(), len(column.Tasks))
	if k.hasPick && i == k.target {
		title += " ⇣"
	}
	b.WriteString(styles.SectionHeader.Render(utils.TruncateString(title, width)))
	b.WriteString("\n\n")

	if len(column.Tasks) == 0 {
		b.WriteString(styles.TaskMeta.Render("(empty)"))
		return b.String()
	}

	start := k.offsets[i]
	end := min(start+k.visibleCards(), len(column.Tasks))
	for row := start; row < end; row++ {
		t := column.Tasks[row]
		selected := k.focused && i == k.col && row == k.rows[i]
		picked := k.hasPick && t.ID == k.picked
		b.WriteString(renderCard(t, selected, picked, width))
		if row < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCard(t api.Task, selected, picked bool, width int) string {
	style := styles.KanbanCard
	switch {
	case picked:
		style = styles.KanbanCardPicked
	case selected:
		style = styles.KanbanCardSelected
	}
	textWidth := width - 2 // card border and padding

	marker := styles.GetImportanceStyle(string(t.Priority())).Render("●")
	title := utils.TruncateString(t.Titulo, textWidth-2)
	if t.IsCompleted() {
		title = styles.TaskCompleted.Render(title)
	}
	desc := styles.TaskDescription.Render(utils.TruncateString(t.Descripcion, textWidth))
	meta := styles.TaskMeta.Render(utils.TruncateString(cardMeta(t), textWidth))

	return style.Width(width - 1).Render(marker + " " + title + "\n" + desc + "\n" + meta)
}

func cardMeta(t api.Task) string {
	var parts []string
	if t.Asunto != "" {
		parts = append(parts, t.Asunto)
	}
	if d := t.DateKey(); d != "" {
		parts = append(parts, d)
	} else {
		parts = append(parts, "no date")
	}
	if n := len(t.Enlaces); n > 0 {
		parts = append(parts, fmt.Sprintf("%d link(s)", n))
	}
	return strings.Join(parts, " · ")
}

// SetSize implements Component.
func (k *KanbanModel) SetSize(width, height int) {
	k.width = width
	k.height = height
	for i := range k.rows {
		k.ensureVisible(i)
	}
}

// Focus sets focus on the board.
func (k *KanbanModel) Focus() {
	k.focused = true
}

// Blur removes focus.
func (k *KanbanModel) Blur() {
	k.focused = false
}

// Focused returns focus state.
func (k *KanbanModel) Focused() bool {
	return k.focused
}
