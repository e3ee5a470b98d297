package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
	"github.com/hy4ri/planner-tui/internal/tui/utils"
	"github.com/mattn/go-runewidth"
)

const (
	dayListTop     = 3 // title, hint, blank line
	dayCheckboxEnd = 5 // "> [x]" occupies the first columns of a row
)

// DayDetailModel lists the tasks of one date.
type DayDetailModel struct {
	date    string
	tasks   []api.Task
	cursor  int
	loading bool

	width, height int
	focused       bool
	actions       TaskActions
}

// NewDayDetail creates an empty day list.
func NewDayDetail() *DayDetailModel {
	return &DayDetailModel{
		focused: true,
		actions: NoActions{},
	}
}

// SetActions sets the receiver of row gestures.
func (d *DayDetailModel) SetActions(a TaskActions) {
	d.actions = a
}

// SetDate switches the list to date and marks it as loading until SetData.
func (d *DayDetailModel) SetDate(date string) {
	if date != d.date {
		d.cursor = 0
		d.tasks = nil
	}
	d.date = date
	d.loading = true
}

// Date returns the shown date.
func (d *DayDetailModel) Date() string {
	return d.date
}

// SetData implements DataReceiver.
func (d *DayDetailModel) SetData(tasks []api.Task) {
	d.tasks = tasks
	d.loading = false
	if d.cursor >= len(d.tasks) {
		d.cursor = len(d.tasks) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// Tasks returns the listed tasks.
func (d *DayDetailModel) Tasks() []api.Task {
	return d.tasks
}

// SelectedID returns the id of the row under the cursor.
func (d *DayDetailModel) SelectedID() (int, bool) {
	if d.cursor < 0 || d.cursor >= len(d.tasks) {
		return 0, false
	}
	return d.tasks[d.cursor].ID, true
}

// Init implements Component.
func (d *DayDetailModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (d *DayDetailModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		return d, d.handleMouse(msg)
	}
	return d, nil
}

// HandleAction implements ActionHandler.
func (d *DayDetailModel) HandleAction(action string) tea.Cmd {
	switch action {
	case "up":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down":
		if d.cursor < len(d.tasks)-1 {
			d.cursor++
		}
	case "top":
		d.cursor = 0
	case "bottom":
		d.cursor = max(len(d.tasks)-1, 0)
	case "complete", "pick":
		if id, ok := d.SelectedID(); ok {
			return d.actions.OnToggle(id)
		}
	case "delete":
		if id, ok := d.SelectedID(); ok {
			return d.actions.OnDelete(id)
		}
	case "select", "edit":
		if id, ok := d.SelectedID(); ok {
			return d.actions.OnEdit(id)
		}
	case "back":
		return func() tea.Msg { return BackRequestMsg{} }
	}
	return nil
}

// handleMouse toggles on a checkbox click and edits on a click on the title.
func (d *DayDetailModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	row := msg.Y - dayListTop
	if row < 0 || row >= len(d.tasks) {
		return nil
	}
	d.cursor = row
	id := d.tasks[row].ID
	if msg.X < dayCheckboxEnd {
		return d.actions.OnToggle(id)
	}
	return d.actions.OnEdit(id)
}

// View implements Component.
func (d *DayDetailModel) View() string {
	var b strings.Builder

	title := d.date
	if t, err := time.Parse(api.DateLayout, d.date); err == nil {
		title = t.Format("Monday, January 2 2006")
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("x toggle | enter edit | dd delete | a add task | esc back"))
	b.WriteString("\n\n")

	if d.loading && len(d.tasks) == 0 {
		b.WriteString(styles.HelpDesc.Render("Loading..."))
		return b.String()
	}
	if len(d.tasks) == 0 {
		b.WriteString(styles.HelpDesc.Render("No tasks for this day."))
		return b.String()
	}

	width := d.width - 4
	if width < 20 {
		width = 20
	}
	for i, t := range d.tasks {
		b.WriteString(d.renderRow(t, i == d.cursor && d.focused, width))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *DayDetailModel) renderRow(t api.Task, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	check := styles.CheckboxUnchecked
	if t.IsCompleted() {
		check = styles.CheckboxChecked
	}

	importance := string(t.Priority())
	meta := importance
	if t.Asunto != "" {
		meta += " · " + t.Asunto
	}
	if n := len(t.Contactos); n > 0 {
		meta += fmt.Sprintf(" · %d contact(s)", n)
	}

	room := width - len(cursor) - len(check) - 1 - len(meta) - 2
	title := utils.TruncateString(t.Titulo, max(room, 8))

	// The description takes whatever the title leaves.
	desc := ""
	if left := room - runewidth.StringWidth(title) - 1; t.Descripcion != "" && left >= 6 {
		desc = " " + styles.TaskDescription.Render(utils.TruncateString(t.Descripcion, left))
	}

	if t.IsCompleted() {
		title = styles.TaskCompleted.Render(title)
	} else if selected {
		title = styles.TaskTitleSelected.Render(title)
	}

	return cursor + check + " " + title + desc + "  " + styles.GetImportanceStyle(importance).Render(meta)
}

// SetSize implements Component.
func (d *DayDetailModel) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// Focus sets focus on the list.
func (d *DayDetailModel) Focus() {
	d.focused = true
}

// Blur removes focus.
func (d *DayDetailModel) Blur() {
	d.focused = false
}

// Focused returns focus state.
func (d *DayDetailModel) Focused() bool {
	return d.focused
}
