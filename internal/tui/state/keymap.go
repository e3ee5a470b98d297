package state

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/tui/components"
)

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// KeymapData contains all key bindings for the application.
type KeymapData struct {
	// Navigation
	Up     Key
	Down   Key
	Left   Key
	Right  Key
	Top    Key
	Bottom Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key

	// Task actions
	AddTask      Key
	AddInbox     Key
	EditTask     Key
	DeleteTask   Key
	CompleteTask Key
	PickCard     Key
	CopyTask     Key

	// Views
	SwitchView   Key
	CalendarTab  Key
	KanbanTab    Key
	CalendarView Key
	PrevMonth    Key
	NextMonth    Key
	Today        Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() KeymapData {
	return KeymapData{
		Up:     Key{Key: "k", Help: "up"},
		Down:   Key{Key: "j", Help: "down"},
		Left:   Key{Key: "h", Help: "left"},
		Right:  Key{Key: "l", Help: "right"},
		Top:    Key{Key: "g", Help: "top (gg)"},
		Bottom: Key{Key: "G", Help: "bottom"},

		Select:  Key{Key: "enter", Help: "select"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},

		AddTask:      Key{Key: "a", Help: "add task"},
		AddInbox:     Key{Key: "n", Help: "new inbox task"},
		EditTask:     Key{Key: "e", Help: "edit task"},
		DeleteTask:   Key{Key: "d", Help: "delete (dd)"},
		CompleteTask: Key{Key: "x", Help: "complete/uncomplete"},
		PickCard:     Key{Key: " ", Help: "pick up / drop card"},
		CopyTask:     Key{Key: "y", Help: "copy link (yy)"},

		SwitchView:   Key{Key: "tab", Help: "switch calendar/board"},
		CalendarTab:  Key{Key: "c", Help: "calendar"},
		KanbanTab:    Key{Key: "b", Help: "board"},
		CalendarView: Key{Key: "v", Help: "switch calendar view"},
		PrevMonth:    Key{Key: "[", Help: "previous month"},
		NextMonth:    Key{Key: "]", Help: "next month"},
		Today:        Key{Key: "t", Help: "today"},
	}
}

// KeyState tracks multi-key sequences (like 'gg' or 'dd' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingD bool // Waiting for second 'd' in 'dd'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey processes a key press and returns the action to take.
// Returns the action name and whether the key was consumed.
func (ks *KeyState) HandleKey(msg tea.KeyMsg, keymap KeymapData) (string, bool) {
	key := msg.String()

	if ks.WaitingG {
		ks.WaitingG = false
		if key == "g" {
			return "top", true
		}
	}

	if ks.WaitingD {
		ks.WaitingD = false
		if key == keymap.DeleteTask.Key {
			return "delete", true
		}
	}

	if ks.WaitingY {
		ks.WaitingY = false
		if key == keymap.CopyTask.Key {
			return "copy", true
		}
	}

	switch key {
	case "g":
		ks.WaitingG = true
		ks.LastKey = key
		return "", true
	case keymap.DeleteTask.Key:
		ks.WaitingD = true
		ks.LastKey = key
		return "", true
	case keymap.CopyTask.Key:
		ks.WaitingY = true
		ks.LastKey = key
		return "", true
	}

	switch key {
	case keymap.Up.Key, "up":
		return "up", true
	case keymap.Down.Key, "down":
		return "down", true
	case keymap.Left.Key, "left":
		return "left", true
	case keymap.Right.Key, "right":
		return "right", true
	case keymap.Bottom.Key:
		return "bottom", true
	case keymap.Select.Key:
		return "select", true
	case keymap.Back.Key:
		return "back", true
	case keymap.Quit.Key, "ctrl+c":
		return "quit", true
	case keymap.Help.Key:
		return "help", true
	case keymap.Refresh.Key:
		return "refresh", true
	case keymap.AddTask.Key:
		return "add", true
	case keymap.AddInbox.Key:
		return "add_inbox", true
	case keymap.EditTask.Key:
		return "edit", true
	case keymap.CompleteTask.Key:
		return "complete", true
	case keymap.PickCard.Key:
		return "pick", true
	case keymap.SwitchView.Key:
		return "switch_view", true
	case keymap.CalendarTab.Key, "1":
		return "tab_calendar", true
	case keymap.KanbanTab.Key, "2":
		return "tab_kanban", true
	case keymap.CalendarView.Key:
		return "calendar_view", true
	case keymap.PrevMonth.Key:
		return "prev_month", true
	case keymap.NextMonth.Key:
		return "next_month", true
	case keymap.Today.Key:
		return "today", true
	}

	return "", false
}

// Reset clears any pending multi-key sequences.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingD = false
	ks.WaitingY = false
	ks.LastKey = ""
}

// HelpSections lists the bindings shown in the help view.
func (k KeymapData) HelpSections() []components.HelpSection {
	return []components.HelpSection{
		{Title: "Navigation", Bindings: []components.HelpBinding{
			{Key: k.Up.Key + "/" + k.Down.Key, Desc: "Move up/down"},
			{Key: k.Left.Key + "/" + k.Right.Key, Desc: "Move left/right"},
			{Key: "gg/G", Desc: "Go to top/bottom"},
			{Key: k.SwitchView.Key, Desc: "Switch calendar/board"},
			{Key: k.CalendarTab.Key + "/1", Desc: "Calendar"},
			{Key: k.KanbanTab.Key + "/2", Desc: "Board"},
		}},
		{Title: "Calendar", Bindings: []components.HelpBinding{
			{Key: k.Select.Key, Desc: "Open the day"},
			{Key: k.PrevMonth.Key + "/" + k.NextMonth.Key, Desc: "Previous/next month"},
			{Key: k.Today.Key, Desc: "Jump to today"},
			{Key: k.CalendarView.Key, Desc: "Compact/expanded cells"},
		}},
		{Title: "Day", Bindings: []components.HelpBinding{
			{Key: k.AddTask.Key, Desc: "Add a task on this day"},
			{Key: k.CompleteTask.Key + "/space", Desc: "Complete/reopen"},
			{Key: k.Select.Key, Desc: "Edit task"},
			{Key: k.Back.Key, Desc: "Back to the calendar"},
		}},
		{Title: "Board", Bindings: []components.HelpBinding{
			{Key: "space", Desc: "Pick up / drop card"},
			{Key: "h/l", Desc: "Move the picked card"},
			{Key: "drag", Desc: "Move a card with the mouse"},
			{Key: k.AddInbox.Key, Desc: "Add task to inbox"},
		}},
		{Title: "Tasks", Bindings: []components.HelpBinding{
			{Key: k.EditTask.Key, Desc: "Edit task"},
			{Key: k.CompleteTask.Key, Desc: "Complete/reopen"},
			{Key: "dd", Desc: "Delete task"},
			{Key: "yy", Desc: "Copy link or title"},
			{Key: k.AddTask.Key, Desc: "Add task"},
		}},
		{Title: "Form", Bindings: []components.HelpBinding{
			{Key: "tab/shift+tab", Desc: "Next/previous field"},
			{Key: "1-3 or h/l", Desc: "Importance"},
			{Key: "enter", Desc: "Add link/contact tag"},
			{Key: "←/→", Desc: "Pick a tag"},
			{Key: "ctrl+x", Desc: "Remove picked or last tag"},
			{Key: "ctrl+s", Desc: "Save"},
		}},
		{Title: "General", Bindings: []components.HelpBinding{
			{Key: k.Refresh.Key, Desc: "Refresh data"},
			{Key: k.Help.Key, Desc: "Toggle help"},
			{Key: k.Back.Key, Desc: "Go back / cancel"},
			{Key: k.Quit.Key, Desc: "Quit"},
		}},
	}
}
