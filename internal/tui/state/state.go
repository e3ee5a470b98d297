package state

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/config"
	"github.com/hy4ri/planner-tui/internal/tui/components"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
)

// View represents the current view/screen.
type View int

const (
	ViewCalendar View = iota
	ViewKanban
	ViewDay // Day detail opened from the calendar
	ViewTaskForm
	ViewHelp
)

// Tab represents a top-level tab.
type Tab int

const (
	TabCalendar Tab = iota
	TabKanban
)

// HeaderHeight is the number of lines the tab bar takes above the main view.
const HeaderHeight = 2

// State holds the application state.
// All fields are exported to allow access from logic and ui packages.
type State struct {
	// Dependencies
	Client *api.Client
	Config *config.Config
	Cache  *Cache

	// View state
	CurrentView  View
	PreviousView View
	CurrentTab   Tab

	// Day detail, always filled from ListTasksByDate.
	SelectedDate string
	DayTasks     []api.Task
	DayOpen      bool

	// Form state
	TaskForm *TaskForm

	// Delete confirmation
	ConfirmDelete bool
	DeleteTaskID  int

	// Mutation guards toggle, move and delete so they never overlap.
	Mutation Flight
	// Save guards form submits across every form instance.
	Save Flight

	// UI state
	Loading   bool
	Err       error
	StatusMsg string
	Width     int
	Height    int

	// Components
	Spinner  spinner.Model
	Keymap   KeymapData
	KeyState *KeyState

	CalendarComp *components.CalendarModel
	KanbanComp   *components.KanbanModel
	DayComp      *components.DayDetailModel
	HelpComp     *components.HelpModel

	// Due-today reminders already sent this session, by task id.
	NotifiedTasks map[int]bool
}

// New builds the state for one program run.
func New(client *api.Client, cfg *config.Config) *State {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	keymap := DefaultKeymap()

	st := &State{
		Client:        client,
		Config:        cfg,
		Cache:         NewCache(client),
		CurrentView:   ViewCalendar,
		CurrentTab:    TabCalendar,
		Loading:       true,
		Spinner:       s,
		Keymap:        keymap,
		KeyState:      &KeyState{},
		CalendarComp:  components.NewCalendar(time.Now()),
		KanbanComp:    components.NewKanban(),
		DayComp:       components.NewDayDetail(),
		HelpComp:      components.NewHelp(),
		NotifiedTasks: make(map[int]bool),
	}

	if cfg != nil {
		if cfg.UI.CalendarDefaultView == "expanded" {
			st.CalendarComp.SetViewMode(components.CalendarViewModeExpanded)
		}
		if cfg.StartsInKanban() {
			st.CurrentView = ViewKanban
			st.CurrentTab = TabKanban
		}
	}

	st.HelpComp.SetSections(keymap.HelpSections())
	return st
}

// SwitchTab moves to the main view of tab.
func (s *State) SwitchTab(tab Tab) {
	s.CurrentTab = tab
	s.DayOpen = false
	s.ConfirmDelete = false
	switch tab {
	case TabKanban:
		s.CurrentView = ViewKanban
	default:
		s.CurrentView = ViewCalendar
	}
}

// MainView returns the view the current tab falls back to.
func (s *State) MainView() View {
	if s.CurrentTab == TabKanban {
		return ViewKanban
	}
	return ViewCalendar
}

// TabInfo holds tab metadata.
type TabInfo struct {
	Tab       Tab
	Icon      string
	Name      string
	ShortName string
}

// Label is the text of the tab for the given terminal width.
func (t TabInfo) Label(width int) string {
	switch {
	case width > 0 && width < 50:
		return t.Icon
	case width > 0 && width < 80:
		return t.Icon + " " + t.ShortName
	}
	return t.Icon + " " + t.Name
}

// GetTabDefinitions returns the tab definitions.
func GetTabDefinitions() []TabInfo {
	return []TabInfo{
		{TabCalendar, "🗓️", "Calendar", "Cal"},
		{TabKanban, "📋", "Board", "Brd"},
	}
}
