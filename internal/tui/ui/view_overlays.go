package ui

import (
	"strings"
	"time"

	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/tui/state"
	"github.com/hy4ri/planner-tui/internal/tui/styles"
)

// renderTaskForm renders the add/edit task form.
func (r *Renderer) renderTaskForm() string {
	if r.TaskForm == nil {
		return styles.Dialog.Width(r.Width - 4).Render("Form not initialized")
	}

	var b strings.Builder
	f := r.TaskForm

	b.WriteString(styles.Title.Render(formTitle(f)) + "\n\n")

	label := func(field int, text string) string {
		if f.FocusIndex == field {
			return styles.InputLabelFocused.Render("> "+text) + "\n"
		}
		return styles.InputLabel.Render("  "+text) + "\n"
	}

	b.WriteString(label(state.FormFieldTitle, "Title"))
	b.WriteString("  " + f.Title.View() + "\n\n")

	b.WriteString(label(state.FormFieldDescription, "Description"))
	b.WriteString("  " + f.Description.View() + "\n\n")

	b.WriteString(label(state.FormFieldDate, "Date"))
	b.WriteString("  " + f.Date.View() + "\n\n")

	b.WriteString(label(state.FormFieldImportance, "Importance (1-3)"))
	b.WriteString("  " + renderImportance(f.Importance) + "\n\n")

	b.WriteString(label(state.FormFieldAsunto, "Subject"))
	b.WriteString("  " + f.Asunto.View() + "\n\n")

	links := make([]string, len(f.Links))
	for i, l := range f.Links {
		links[i] = l.String()
	}
	b.WriteString(label(state.FormFieldLinks, "Links"))
	b.WriteString(renderTags(links, f.TagCursorOn(state.FormFieldLinks)))
	b.WriteString("  " + f.LinkInput.View() + "\n\n")

	contacts := make([]string, len(f.Contacts))
	for i, c := range f.Contacts {
		contacts[i] = c.String()
	}
	b.WriteString(label(state.FormFieldContacts, "Contacts"))
	b.WriteString(renderTags(contacts, f.TagCursorOn(state.FormFieldContacts)))
	b.WriteString("  " + f.ContactInput.View() + "\n\n")

	button := "[ Save ]"
	if f.Saving() {
		button = "[ Saving... ]"
	}
	if f.FocusIndex == state.FormFieldSubmit {
		b.WriteString(styles.InputLabelFocused.Render("> "+button) + "\n")
	} else {
		b.WriteString(styles.InputLabel.Render("  "+button) + "\n")
	}

	if f.Err != "" {
		b.WriteString("\n" + styles.FormError.Render(f.Err) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("ctrl+s: save | Esc: cancel | Tab: next field | enter: add tag | ←/→: pick tag | ctrl+x: remove tag"))

	return styles.Dialog.Width(r.Width - 4).Render(b.String())
}

func formTitle(f *state.TaskForm) string {
	if f.IsEdit() {
		return "Edit Task"
	}
	switch f.Context {
	case state.FormContextDay:
		if t, err := time.Parse(api.DateLayout, f.PresetDate); err == nil {
			return "Add Task for " + t.Format("Mon, Jan 2")
		}
	case state.FormContextInbox:
		return "Add Task to Inbox"
	}
	return "Add Task"
}

// renderImportance shows the three levels as a toggle group.
func renderImportance(selected api.Importance) string {
	parts := make([]string, len(api.Importances))
	for i, imp := range api.Importances {
		text := string(imp)
		if imp == selected {
			parts[i] = styles.GetImportanceStyle(text).Bold(true).Render("(•) " + text)
		} else {
			parts[i] = styles.HelpDesc.Render("( ) " + text)
		}
	}
	return strings.Join(parts, "  ")
}

// renderTags draws the chips of a tag row; picked is highlighted, -1 for none.
func renderTags(tags []string, picked int) string {
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, t := range tags {
		if i == picked {
			chips[i] = styles.TagSelected.Render("× " + t)
		} else {
			chips[i] = styles.Tag.Render(t)
		}
	}
	return "  " + strings.Join(chips, " ") + "\n"
}

// renderDeleteDialog asks for confirmation before a delete.
func (r *Renderer) renderDeleteDialog() string {
	title := "this task"
	if t, ok := r.lookupTask(r.DeleteTaskID); ok {
		title = "\"" + t.Titulo + "\""
	}

	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Delete Task"))
	b.WriteString("\n")
	b.WriteString("Delete " + title + "?")
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("y: delete | n: cancel"))

	return styles.Dialog.Render(b.String())
}

func (r *Renderer) lookupTask(id int) (api.Task, bool) {
	for _, t := range r.DayTasks {
		if t.ID == id {
			return t, true
		}
	}
	return r.Cache.Get(id)
}
