package state

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldDate
	FormFieldImportance
	FormFieldAsunto
	FormFieldLinks
	FormFieldContacts
	FormFieldSubmit
)

const formFieldCount = 8

// FormMode tells whether the form creates a task or edits a bound one.
type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

// Form contexts shown in the form header.
const (
	FormContextGeneral = "general"
	FormContextDay     = "day"
	FormContextInbox   = "inbox"
)

// Validation errors.
var (
	ErrTitleRequired = errors.New("title is required")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

// TaskForm represents the state of the task creation/editing form.
type TaskForm struct {
	Title        textinput.Model
	Description  textinput.Model
	Date         textinput.Model
	Asunto       textinput.Model
	LinkInput    textinput.Model
	ContactInput textinput.Model

	Importance api.Importance
	Links      []api.Link
	Contacts   []api.Contact

	FocusIndex int
	Context    string
	PresetDate string

	// Mode tracking
	Mode   FormMode
	TaskID int

	// Err is the last save error, shown inside the form.
	Err string

	// TagCursor is the chip picked on the focused links or contacts row, -1
	// while the cursor sits in the input.
	TagCursor int

	saving bool
}

// NewTaskForm creates an empty form in create mode.
func NewTaskForm() *TaskForm {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.Width = 50

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 1000
	desc.Width = 50

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD (optional)"
	date.CharLimit = 10
	date.Width = 20

	asunto := textinput.New()
	asunto.Placeholder = "Subject"
	asunto.CharLimit = 100
	asunto.Width = 30

	link := textinput.New()
	link.Placeholder = "https://… or Title (https://…), enter to add"
	link.Width = 50

	contact := textinput.New()
	contact.Placeholder = "Name or Name (email), enter to add"
	contact.Width = 50

	f := &TaskForm{
		Title:        title,
		Description:  desc,
		Date:         date,
		Asunto:       asunto,
		LinkInput:    link,
		ContactInput: contact,
		Importance:   api.ImportanceBaja,
		Links:        []api.Link{},
		Contacts:     []api.Contact{},
		Context:      FormContextGeneral,
	}
	f.Focus(FormFieldTitle)
	return f
}

// NewDayTaskForm creates a create-mode form preset to a calendar day.
func NewDayTaskForm(date string) *TaskForm {
	f := NewTaskForm()
	f.Context = FormContextDay
	f.PresetDate = date
	f.Date.SetValue(date)
	return f
}

// NewInboxTaskForm creates a create-mode form without a date, so the task
// lands in the inbox column.
func NewInboxTaskForm() *TaskForm {
	f := NewTaskForm()
	f.Context = FormContextInbox
	return f
}

// NewEditTaskForm creates a form bound to an existing task.
func NewEditTaskForm(t api.Task) *TaskForm {
	f := NewTaskForm()
	f.LoadTask(t)
	return f
}

// LoadTask binds the form to t and fills every field (create → edit).
func (f *TaskForm) LoadTask(t api.Task) {
	f.Mode = FormModeEdit
	f.TaskID = t.ID
	f.Err = ""

	f.Title.SetValue(t.Titulo)
	f.Description.SetValue(t.Descripcion)
	f.Date.SetValue(t.DateKey())
	f.Asunto.SetValue(t.Asunto)
	f.Importance = t.Priority()

	f.Links = append([]api.Link{}, t.Enlaces...)
	f.Contacts = append([]api.Contact{}, t.Contactos...)
	f.LinkInput.SetValue("")
	f.ContactInput.SetValue("")

	f.Focus(FormFieldTitle)
}

// Reset clears the form and unbinds it (edit → create). A day form keeps its
// preset date.
func (f *TaskForm) Reset() {
	f.Mode = FormModeCreate
	f.TaskID = 0
	f.Err = ""

	f.Title.SetValue("")
	f.Description.SetValue("")
	f.Date.SetValue(f.PresetDate)
	f.Asunto.SetValue("")
	f.LinkInput.SetValue("")
	f.ContactInput.SetValue("")
	f.Importance = api.ImportanceBaja
	f.Links = []api.Link{}
	f.Contacts = []api.Contact{}

	f.Focus(FormFieldTitle)
}

// IsEdit reports whether the form is bound to a task.
func (f *TaskForm) IsEdit() bool {
	return f.Mode == FormModeEdit
}

// Update updates the form models.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		switch f.FocusIndex {
		case FormFieldImportance:
			switch msg.String() {
			case "1":
				f.SetImportance(api.ImportanceBaja)
			case "2":
				f.SetImportance(api.ImportanceMedia)
			case "3":
				f.SetImportance(api.ImportanceAlta)
			case "h", "left":
				f.shiftImportance(-1)
			case "l", "right", " ":
				f.shiftImportance(1)
			}
			return nil
		case FormFieldLinks:
			if msg.String() == "enter" {
				if f.AddLink(f.LinkInput.Value()) {
					f.LinkInput.SetValue("")
				}
				return nil
			}
			if f.tagKey(msg.String(), f.LinkInput.Value(), len(f.Links), f.RemoveLink) {
				return nil
			}
		case FormFieldContacts:
			if msg.String() == "enter" {
				if f.AddContact(f.ContactInput.Value()) {
					f.ContactInput.SetValue("")
				}
				return nil
			}
			if f.tagKey(msg.String(), f.ContactInput.Value(), len(f.Contacts), f.RemoveContact) {
				return nil
			}
		}
	}

	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	case FormFieldDate:
		f.Date, cmd = f.Date.Update(msg)
	case FormFieldAsunto:
		f.Asunto, cmd = f.Asunto.Update(msg)
	case FormFieldLinks:
		f.LinkInput, cmd = f.LinkInput.Update(msg)
	case FormFieldContacts:
		f.ContactInput, cmd = f.ContactInput.Update(msg)
	}
	return cmd
}

// NextField moves focus to the next field.
func (f *TaskForm) NextField() {
	f.Focus((f.FocusIndex + 1) % formFieldCount)
}

// PrevField moves focus to the previous field.
func (f *TaskForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + formFieldCount) % formFieldCount)
}

// Focus moves focus to the field at index.
func (f *TaskForm) Focus(index int) {
	f.FocusIndex = index
	f.TagCursor = -1
	for _, in := range f.inputs() {
		in.Blur()
	}

	switch index {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldDescription:
		f.Description.Focus()
	case FormFieldDate:
		f.Date.Focus()
	case FormFieldAsunto:
		f.Asunto.Focus()
	case FormFieldLinks:
		f.LinkInput.Focus()
	case FormFieldContacts:
		f.ContactInput.Focus()
	}
}

func (f *TaskForm) inputs() []*textinput.Model {
	return []*textinput.Model{&f.Title, &f.Description, &f.Date, &f.Asunto, &f.LinkInput, &f.ContactInput}
}

// SetImportance selects exactly one importance; unknown values are ignored.
func (f *TaskForm) SetImportance(i api.Importance) {
	if i.Valid() {
		f.Importance = i
	}
}

func (f *TaskForm) shiftImportance(delta int) {
	idx := 0
	for i, imp := range api.Importances {
		if imp == f.Importance {
			idx = i
		}
	}
	idx = (idx + delta + len(api.Importances)) % len(api.Importances)
	f.Importance = api.Importances[idx]
}

// tagKey handles the chip keys of a tag row holding count tags. With the
// input empty, left/right walk the chips and backspace removes the picked one
// (the last one when none is picked). ctrl+x works the same at any time.
// It reports whether the key was used.
func (f *TaskForm) tagKey(key, input string, count int, remove func(int) bool) bool {
	switch {
	case key == "ctrl+x", key == "backspace" && input == "":
		if count == 0 {
			return true
		}
		i := f.TagCursor
		if i < 0 {
			i = count - 1
		}
		remove(i)
		if f.TagCursor >= count-1 {
			f.TagCursor = count - 2
		}
		return true

	case key == "left" && input == "":
		switch {
		case count == 0:
		case f.TagCursor < 0:
			f.TagCursor = count - 1
		case f.TagCursor > 0:
			f.TagCursor--
		}
		return true

	case key == "right" && input == "":
		if f.TagCursor >= 0 {
			f.TagCursor++
			if f.TagCursor >= count {
				f.TagCursor = -1
			}
		}
		return true
	}

	// Typing returns the cursor to the input.
	f.TagCursor = -1
	return false
}

// TagCursorOn returns the picked chip of the given tag row, -1 when that row
// is not focused or no chip is picked.
func (f *TaskForm) TagCursorOn(field int) int {
	if f.FocusIndex != field {
		return -1
	}
	return f.TagCursor
}

// AddLink appends a link tag. Blank input is ignored.
func (f *TaskForm) AddLink(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	f.Links = append(f.Links, api.ParseLink(raw))
	return true
}

// RemoveLink drops the link tag at index i.
func (f *TaskForm) RemoveLink(i int) bool {
	if i < 0 || i >= len(f.Links) {
		return false
	}
	f.Links = append(f.Links[:i:i], f.Links[i+1:]...)
	return true
}

// AddContact appends a contact tag. Blank input is ignored.
func (f *TaskForm) AddContact(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	f.Contacts = append(f.Contacts, api.ParseContact(raw))
	return true
}

// RemoveContact drops the contact tag at index i.
func (f *TaskForm) RemoveContact(i int) bool {
	if i < 0 || i >= len(f.Contacts) {
		return false
	}
	f.Contacts = append(f.Contacts[:i:i], f.Contacts[i+1:]...)
	return true
}

// Validate checks the fields the server would otherwise reject.
func (f *TaskForm) Validate() error {
	if strings.TrimSpace(f.Title.Value()) == "" {
		return ErrTitleRequired
	}
	if d := strings.TrimSpace(f.Date.Value()); d != "" {
		if _, err := time.Parse(api.DateLayout, d); err != nil {
			return ErrInvalidDate
		}
	}
	return nil
}

// IsValid checks if the form is valid.
func (f *TaskForm) IsValid() bool {
	return f.Validate() == nil
}

// DateValue returns the trimmed date, "" when unset.
func (f *TaskForm) DateValue() string {
	return strings.TrimSpace(f.Date.Value())
}

// ToCreateRequest converts the form to a create request. Undated tasks go to
// the inbox, dated ones start as incompleta.
func (f *TaskForm) ToCreateRequest() api.CreateTaskRequest {
	req := api.CreateTaskRequest{
		Titulo:      strings.TrimSpace(f.Title.Value()),
		Descripcion: strings.TrimSpace(f.Description.Value()),
		Importancia: f.Importance,
		Status:      api.StatusInbox,
		Enlaces:     append([]api.Link{}, f.Links...),
		Contactos:   append([]api.Contact{}, f.Contacts...),
	}
	if d := f.DateValue(); d != "" {
		req.Fecha = &d
		req.Status = api.StatusIncompleta
	}
	if a := strings.TrimSpace(f.Asunto.Value()); a != "" {
		req.Asunto = &a
	}
	return req
}

// ToUpdateRequest converts the form to a full-field update. Status is left
// alone so edits never move a card between columns.
func (f *TaskForm) ToUpdateRequest() api.UpdateTaskRequest {
	title := strings.TrimSpace(f.Title.Value())
	desc := strings.TrimSpace(f.Description.Value())
	asunto := strings.TrimSpace(f.Asunto.Value())
	importance := f.Importance
	links := append([]api.Link{}, f.Links...)
	contacts := append([]api.Contact{}, f.Contacts...)

	req := api.UpdateTaskRequest{
		Titulo:      &title,
		Descripcion: &desc,
		Asunto:      &asunto,
		Importancia: &importance,
		Enlaces:     &links,
		Contactos:   &contacts,
	}
	if d := f.DateValue(); d != "" {
		req.Fecha = &d
	} else {
		req.ClearFecha = true
	}
	return req
}

// BeginSave marks a save of this form as in flight. It returns false while
// one is already running. State.Save is what keeps saves from overlapping;
// this only tracks what the form shows.
func (f *TaskForm) BeginSave() bool {
	if f.saving {
		return false
	}
	f.saving = true
	f.Err = ""
	return true
}

// EndSave marks the running save as finished.
func (f *TaskForm) EndSave() {
	f.saving = false
}

// Saving reports whether a save of this form is in flight.
func (f *TaskForm) Saving() bool {
	return f.saving
}

// SetWidth sets width of inputs
func (f *TaskForm) SetWidth(width int) {
	for _, in := range f.inputs() {
		in.Width = width
	}
	f.Date.Width = 20
}
