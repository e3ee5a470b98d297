// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Importance colors: alta=red, media=orange, baja=blue.
var (
	ImportanceAltaColor  = lipgloss.Color("#D0473D")
	ImportanceMediaColor = lipgloss.Color("#EA8811")
	ImportanceBajaColor  = lipgloss.Color("#296FDF")
)

// Base styles
var (
	// Title is the style for section titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Task styles
var (
	// TaskTitleSelected is the title of the row under the cursor
	TaskTitleSelected = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// TaskCompleted is the style for completed tasks
	TaskCompleted = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	// TaskMeta is for category, date and tag details
	TaskMeta = lipgloss.NewStyle().
			Foreground(Subtle)

	// TaskDescription is the description line of cards and day rows
	TaskDescription = lipgloss.NewStyle().
			Foreground(Subtle).
			Faint(true).
			Italic(true)
)

// Importance styles
var (
	ImportanceAlta  = lipgloss.NewStyle().Foreground(ImportanceAltaColor)
	ImportanceMedia = lipgloss.NewStyle().Foreground(ImportanceMediaColor)
	ImportanceBaja  = lipgloss.NewStyle().Foreground(ImportanceBajaColor)
)

// GetImportanceStyle returns the style for an importance level.
func GetImportanceStyle(importance string) lipgloss.Style {
	switch importance {
	case "alta":
		return ImportanceAlta
	case "media":
		return ImportanceMedia
	default:
		return ImportanceBaja
	}
}

// Kanban styles
var (
	// KanbanColumn is an unfocused board column
	KanbanColumn = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	// KanbanColumnFocused is the column holding the cursor
	KanbanColumnFocused = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(Highlight).
				Padding(0, 1)

	// KanbanColumnDropTarget is the column a picked card would land in
	KanbanColumnDropTarget = lipgloss.NewStyle().
				BorderStyle(lipgloss.DoubleBorder()).
				BorderForeground(WarningColor).
				Padding(0, 1)

	// KanbanCard is a card in a column
	KanbanCard = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder())

	// KanbanCardSelected is the card under the cursor
	KanbanCardSelected = KanbanCard.
				Bold(true).
				Background(lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A2A"})

	// KanbanCardPicked is the card being dragged
	KanbanCardPicked = KanbanCard.
				Italic(true).
				Foreground(WarningColor)
)

// StatusBar styles
var (
	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Padding(0, 1)

	// StatusBarKey is for keyboard shortcut hints
	StatusBarKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarText is for status bar descriptions
	StatusBarText = lipgloss.NewStyle().
			Foreground(Subtle).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"})

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Input styles
var (
	// InputLabel is for input labels
	InputLabel = lipgloss.NewStyle().
			Bold(true)

	// InputLabelFocused is for the label of the focused field
	InputLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Foreground(Highlight)

	// FormError is for validation and save errors inside the form
	FormError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Tag is for link and contact chips
	Tag = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#5A3FC0"}).
		Padding(0, 1)

	// TagSelected is the chip picked for removal
	TagSelected = Tag.
			Foreground(lipgloss.Color("#000000")).
			Background(WarningColor).
			Bold(true)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)

	// DialogTitle is for dialog titles
	DialogTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			MarginBottom(1)
)

// Spinner style
var (
	Spinner = lipgloss.NewStyle().
		Foreground(Highlight)
)

// Section header style
var (
	SectionHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Subtle).
		Underline(true)
)

// Calendar styles
var (
	// CalendarWeekday is for day-of-week headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarDay is for regular days
	CalendarDay = lipgloss.NewStyle()

	// CalendarDaySelected is for the selected day
	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(lipgloss.Color("#ffffff"))

	// CalendarDayToday is for today's date
	CalendarDayToday = lipgloss.NewStyle().
				Bold(true).
				Foreground(SuccessColor)

	// CalendarDayWithTasks is for days that have tasks
	CalendarDayWithTasks = lipgloss.NewStyle().
				Foreground(WarningColor)

	// CalendarDayWeekend is for Saturday and Sunday
	CalendarDayWeekend = lipgloss.NewStyle().
				Foreground(Subtle)

	// CalendarMoreTasks is for "+N more" indicator in cells
	CalendarMoreTasks = lipgloss.NewStyle().
				Foreground(Subtle).
				Italic(true)
)

// Checkbox styles
const (
	CheckboxUnchecked = "[ ]"
	CheckboxChecked   = "[x]"
)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// TabActive is for the active tab
	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)
