package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
	"github.com/hy4ri/planner-tui/internal/tui/utils"
)

// CalendarViewModeType represents the calendar display mode.
type CalendarViewModeType int

const (
	CalendarViewModeCompact  CalendarViewModeType = iota // Small grid view
	CalendarViewModeExpanded                             // Grid with task names in cells
)

const (
	compactCellWidth     = 8
	calendarGridTop      = 4 // title, hint, blank line, weekday header
	expandedGridTop      = 5 // same plus the top border
	expandedTasksPerCell = 2
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DayCell is one cell of a month grid. Blank cells pad the first week.
type DayCell struct {
	Blank    bool
	Day      int
	Date     string
	Count    int
	Today    bool
	Selected bool
}

// Badge returns the task count label, "" when the day has no tasks.
func (c DayCell) Badge() string {
	if c.Blank || c.Count <= 0 {
		return ""
	}
	return fmt.Sprintf("(%d)", c.Count)
}

// MonthGrid is the computed layout of one month.
type MonthGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    int
	Cells   []DayCell
}

// BuildMonthGrid lays out the month containing cursor: one blank cell per
// weekday before the 1st (weeks start on Sunday), then one cell per day.
// counts maps YYYY-MM-DD to the number of tasks on that day.
func BuildMonthGrid(cursor, today time.Time, counts map[string]int, selected string) MonthGrid {
	first := firstOfMonth(cursor)
	days := daysIn(first)
	leading := int(first.Weekday())
	todayKey := today.Format(api.DateLayout)

	g := MonthGrid{
		Year:    first.Year(),
		Month:   first.Month(),
		Leading: leading,
		Days:    days,
		Cells:   make([]DayCell, 0, leading+days),
	}
	for i := 0; i < leading; i++ {
		g.Cells = append(g.Cells, DayCell{Blank: true})
	}
	for d := 1; d <= days; d++ {
		date := first.AddDate(0, 0, d-1).Format(api.DateLayout)
		g.Cells = append(g.Cells, DayCell{
			Day:      d,
			Date:     date,
			Count:    counts[date],
			Today:    date == todayKey,
			Selected: date == selected,
		})
	}
	return g
}

// Weeks splits the cells into rows of seven, padding the last row with blanks.
func (g MonthGrid) Weeks() [][]DayCell {
	var weeks [][]DayCell
	for start := 0; start < len(g.Cells); start += 7 {
		week := make([]DayCell, 7)
		for i := range week {
			if start+i < len(g.Cells) {
				week[i] = g.Cells[start+i]
			} else {
				week[i] = DayCell{Blank: true}
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Cell returns the cell for day d of the month.
func (g MonthGrid) Cell(d int) (DayCell, bool) {
	if d < 1 || d > g.Days {
		return DayCell{}, false
	}
	return g.Cells[g.Leading+d-1], true
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysIn(first time.Time) int {
	return first.AddDate(0, 1, -1).Day()
}

// CalendarModel manages the calendar view.
type CalendarModel struct {
	month         time.Time // first day of the shown month
	day           int
	selected      string
	viewMode      CalendarViewModeType
	counts        map[string]int
	byDate        map[string][]api.Task
	now           func() time.Time
	width, height int
	focused       bool
	actions       TaskActions
}

// NewCalendar creates a CalendarModel showing the month of now.
func NewCalendar(now time.Time) *CalendarModel {
	return &CalendarModel{
		month:    firstOfMonth(now),
		day:      now.Day(),
		viewMode: CalendarViewModeCompact,
		counts:   map[string]int{},
		byDate:   map[string][]api.Task{},
		now:      time.Now,
		focused:  true,
		actions:  NoActions{},
	}
}

// SetActions sets the receiver of day-open gestures.
func (c *CalendarModel) SetActions(a TaskActions) {
	c.actions = a
}

// SetClock overrides the source of "today".
func (c *CalendarModel) SetClock(now func() time.Time) {
	c.now = now
}

// Init implements Component.
func (c *CalendarModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (c *CalendarModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.MouseMsg); ok {
		return c, c.handleMouse(msg)
	}
	return c, nil
}

// HandleAction implements ActionHandler.
func (c *CalendarModel) HandleAction(action string) tea.Cmd {
	cursor := c.CursorTime()
	switch action {
	case "left":
		c.moveTo(cursor.AddDate(0, 0, -1))
	case "right":
		c.moveTo(cursor.AddDate(0, 0, 1))
	case "up":
		c.moveTo(cursor.AddDate(0, 0, -7))
	case "down":
		c.moveTo(cursor.AddDate(0, 0, 7))
	case "top":
		c.day = 1
	case "bottom":
		c.day = daysIn(c.month)
	case "prev_month":
		c.shiftMonth(-1)
	case "next_month":
		c.shiftMonth(1)
	case "today":
		c.moveTo(c.now())
	case "calendar_view":
		c.ToggleViewMode()
	case "select":
		return c.open()
	}
	return nil
}

func (c *CalendarModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		c.shiftMonth(-1)
		return nil
	case tea.MouseButtonWheelDown:
		c.shiftMonth(1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	day, ok := c.dayAt(msg.X, msg.Y)
	if !ok {
		return nil
	}
	c.day = day
	return c.open()
}

// open selects the cursor day exclusively and asks for its day view.
func (c *CalendarModel) open() tea.Cmd {
	date := c.CursorDate()
	c.selected = date
	return c.actions.OnOpenDay(date)
}

// dayAt maps a position relative to the component to a day of the month.
func (c *CalendarModel) dayAt(x, y int) (int, bool) {
	var row, col int
	if c.viewMode == CalendarViewModeExpanded {
		if y < expandedGridTop || x < 1 {
			return 0, false
		}
		row = (y - expandedGridTop) / (expandedTasksPerCell + 2)
		col = (x - 1) / (c.expandedCellWidth() + 1)
	} else {
		if y < calendarGridTop {
			return 0, false
		}
		row = y - calendarGridTop
		col = x / compactCellWidth
	}
	if col < 0 || col > 6 {
		return 0, false
	}

	weeks := c.Grid().Weeks()
	if row < 0 || row >= len(weeks) {
		return 0, false
	}
	cell := weeks[row][col]
	if cell.Blank {
		return 0, false
	}
	return cell.Day, true
}

func (c *CalendarModel) moveTo(t time.Time) {
	c.month = firstOfMonth(t)
	c.day = t.Day()
}

func (c *CalendarModel) shiftMonth(n int) {
	c.month = c.month.AddDate(0, n, 0)
	if last := daysIn(c.month); c.day > last {
		c.day = last
	}
}

// View implements Component.
func (c *CalendarModel) View() string {
	if c.viewMode == CalendarViewModeExpanded {
		return c.renderExpanded()
	}
	return c.renderCompact()
}

// SetSize implements Component.
func (c *CalendarModel) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Focus sets focus on the calendar.
func (c *CalendarModel) Focus() {
	c.focused = true
}

// Blur removes focus.
func (c *CalendarModel) Blur() {
	c.focused = false
}

// Focused returns focus state.
func (c *CalendarModel) Focused() bool {
	return c.focused
}

// SetData implements DataReceiver.
func (c *CalendarModel) SetData(tasks []api.Task) {
	c.SetTasks(tasks)
}

// SetTasks recomputes the per-day counts and previews from tasks.
func (c *CalendarModel) SetTasks(tasks []api.Task) {
	counts := make(map[string]int)
	byDate := make(map[string][]api.Task)
	for _, t := range tasks {
		d := t.DateKey()
		if d == "" {
			continue
		}
		counts[d]++
		byDate[d] = append(byDate[d], t)
	}
	c.counts = counts
	c.byDate = byDate
}

// Grid returns the layout of the shown month.
func (c *CalendarModel) Grid() MonthGrid {
	return BuildMonthGrid(c.month, c.now(), c.counts, c.selected)
}

// CursorTime returns the day under the cursor.
func (c *CalendarModel) CursorTime() time.Time {
	return c.month.AddDate(0, 0, c.day-1)
}

// CursorDate returns the day under the cursor as YYYY-MM-DD.
func (c *CalendarModel) CursorDate() string {
	return c.CursorTime().Format(api.DateLayout)
}

// Selected returns the day last opened, "" if none.
func (c *CalendarModel) Selected() string {
	return c.selected
}

// Select makes date the only selected day and moves the cursor to it.
func (c *CalendarModel) Select(date string) {
	t, err := time.Parse(api.DateLayout, date)
	if err != nil {
		return
	}
	c.selected = date
	c.moveTo(t)
}

// Month returns the first day of the shown month.
func (c *CalendarModel) Month() time.Time {
	return c.month
}

// Day returns the day under the cursor.
func (c *CalendarModel) Day() int {
	return c.day
}

// ViewMode returns the current view mode.
func (c *CalendarModel) ViewMode() CalendarViewModeType {
	return c.viewMode
}

// SetViewMode sets the view mode.
func (c *CalendarModel) SetViewMode(mode CalendarViewModeType) {
	c.viewMode = mode
}

// ToggleViewMode switches between compact and expanded.
func (c *CalendarModel) ToggleViewMode() {
	if c.viewMode == CalendarViewModeCompact {
		c.viewMode = CalendarViewModeExpanded
	} else {
		c.viewMode = CalendarViewModeCompact
	}
}

func (c *CalendarModel) cellStyleFor(cell DayCell, weekday int) func(...string) string {
	style := styles.CalendarDay
	switch {
	case cell.Day == c.day && c.focused:
		style = styles.CalendarDaySelected
	case cell.Today:
		style = styles.CalendarDayToday
	case cell.Count > 0:
		style = styles.CalendarDayWithTasks
	case weekday == 0 || weekday == 6:
		style = styles.CalendarDayWeekend
	}
	if cell.Selected {
		style = style.Underline(true)
	}
	return style.Render
}

func (c *CalendarModel) header(b *strings.Builder) {
	b.WriteString(styles.Title.Render(c.month.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("[ ] prev/next month | h j k l move | t today | v toggle view | enter open day"))
	b.WriteString("\n\n")
}

// renderCompact renders the compact calendar view.
func (c *CalendarModel) renderCompact() string {
	var b strings.Builder
	c.header(&b)

	for _, wd := range weekdayNames {
		b.WriteString(styles.CalendarWeekday.Render(utils.PadRight(" "+wd, compactCellWidth)))
	}
	b.WriteString("\n")

	grid := c.Grid()
	for _, week := range grid.Weeks() {
		for weekday, cell := range week {
			if cell.Blank {
				b.WriteString(strings.Repeat(" ", compactCellWidth))
				continue
			}
			text := utils.PadRight(fmt.Sprintf(" %2d%s", cell.Day, cell.Badge()), compactCellWidth)
			b.WriteString(c.cellStyleFor(cell, weekday)(text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	cursor := c.CursorTime()
	b.WriteString(styles.Subtitle.Render(cursor.Format("Monday, January 2")))
	b.WriteString("\n\n")

	if n := c.counts[c.CursorDate()]; n == 0 {
		b.WriteString(styles.HelpDesc.Render("No tasks for this day"))
	} else {
		b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("%d task(s) - press Enter for details", n)))
	}

	return b.String()
}

func (c *CalendarModel) expandedCellWidth() int {
	available := c.width - 8
	if available < 35 {
		available = 35
	}
	cellWidth := available / 7
	if cellWidth < 5 {
		cellWidth = 5
	}
	if cellWidth > 20 {
		cellWidth = 20
	}
	return cellWidth
}

// renderExpanded renders the expanded calendar view with task names.
func (c *CalendarModel) renderExpanded() string {
	var b strings.Builder
	c.header(&b)

	cellWidth := c.expandedCellWidth()
	rule := func(left, mid, right string) string {
		return left + strings.Repeat(strings.Repeat("─", cellWidth)+mid, 6) + strings.Repeat("─", cellWidth) + right + "\n"
	}
	blank := strings.Repeat(" ", cellWidth)

	b.WriteString("│")
	for _, wd := range weekdayNames {
		b.WriteString(styles.CalendarWeekday.Render(utils.PadRight(" "+wd, cellWidth)) + "│")
	}
	b.WriteString("\n")
	b.WriteString(rule("├", "┼", "┤"))

	weeks := c.Grid().Weeks()
	for i, week := range weeks {
		b.WriteString("│")
		for weekday, cell := range week {
			if cell.Blank {
				b.WriteString(blank + "│")
				continue
			}
			text := utils.PadRight(fmt.Sprintf(" %2d %s", cell.Day, cell.Badge()), cellWidth)
			b.WriteString(c.cellStyleFor(cell, weekday)(text) + "│")
		}
		b.WriteString("\n")

		for line := 0; line < expandedTasksPerCell; line++ {
			b.WriteString("│")
			for _, cell := range week {
				b.WriteString(c.previewLine(cell, line, cellWidth) + "│")
			}
			b.WriteString("\n")
		}

		if i < len(weeks)-1 {
			b.WriteString(rule("├", "┼", "┤"))
		}
	}
	b.WriteString(rule("└", "┴", "┘"))

	return b.String()
}

// previewLine renders line n of the task preview inside one expanded cell.
func (c *CalendarModel) previewLine(cell DayCell, n, width int) string {
	if cell.Blank {
		return strings.Repeat(" ", width)
	}
	tasks := c.byDate[cell.Date]
	last := n == expandedTasksPerCell-1

	switch {
	case last && len(tasks) > expandedTasksPerCell:
		more := fmt.Sprintf("+%d more", len(tasks)-expandedTasksPerCell+1)
		return styles.CalendarMoreTasks.Render(utils.PadRight(" "+more, width))
	case n < len(tasks):
		t := tasks[n]
		text := utils.PadRight(" "+t.Titulo, width)
		if t.IsCompleted() {
			return styles.TaskCompleted.Render(text)
		}
		return styles.GetImportanceStyle(string(t.Priority())).Render(text)
	}
	return strings.Repeat(" ", width)
}
