// Package api provides a client for the planner tasks REST API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of Task.Fecha.
const DateLayout = "2006-01-02"

// Status is the workflow bucket of a task.
type Status string

const (
	StatusInbox      Status = "inbox"
	StatusIncompleta Status = "incompleta"
	StatusCompleta   Status = "completa"
)

// Statuses lists the buckets in board order.
var Statuses = []Status{StatusInbox, StatusIncompleta, StatusCompleta}

// Valid reports whether s is one of the known buckets.
func (s Status) Valid() bool {
	switch s {
	case StatusInbox, StatusIncompleta, StatusCompleta:
		return true
	}
	return false
}

// Label returns the column heading for the status.
func (s Status) Label() string {
	switch s {
	case StatusIncompleta:
		return "In progress"
	case StatusCompleta:
		return "Done"
	default:
		return "Inbox"
	}
}

// Importance is the priority of a task.
type Importance string

const (
	ImportanceBaja  Importance = "baja"
	ImportanceMedia Importance = "media"
	ImportanceAlta  Importance = "alta"
)

// Importances lists the selectable priorities, lowest first.
var Importances = []Importance{ImportanceBaja, ImportanceMedia, ImportanceAlta}

// Valid reports whether i is one of the known priorities.
func (i Importance) Valid() bool {
	switch i {
	case ImportanceBaja, ImportanceMedia, ImportanceAlta:
		return true
	}
	return false
}

// Task represents a planner task.
type Task struct {
	ID          int        `json:"id"`
	Titulo      string     `json:"titulo"`
	Descripcion string     `json:"descripcion"`
	Fecha       string     `json:"fecha"`
	Importancia Importance `json:"importancia"`
	Asunto      string     `json:"asunto"`
	Status      Status     `json:"status"`
	Enlaces     []Link     `json:"enlaces"`
	Contactos   []Contact  `json:"contactos"`
}

// DateKey returns the task date as YYYY-MM-DD, or "" when the task has no date.
// Servers that send a timestamp are cut down to the date part.
func (t Task) DateKey() string {
	if len(t.Fecha) > len(DateLayout) {
		return t.Fecha[:len(DateLayout)]
	}
	return t.Fecha
}

// Bucket returns the status the task is shown under. Unknown or missing
// statuses are treated as inbox.
func (t Task) Bucket() Status {
	if t.Status.Valid() {
		return t.Status
	}
	return StatusInbox
}

// Priority returns the importance, defaulting to baja.
func (t Task) Priority() Importance {
	if t.Importancia.Valid() {
		return t.Importancia
	}
	return ImportanceBaja
}

// IsCompleted reports whether the task sits in the completa bucket.
func (t Task) IsCompleted() bool {
	return t.Bucket() == StatusCompleta
}

// ToggledStatus is the status a completion toggle moves the task to. It never
// goes back to inbox.
func (t Task) ToggledStatus() Status {
	if t.IsCompleted() {
		return StatusIncompleta
	}
	return StatusCompleta
}

// IsDueOn reports whether the task is dated on the given day.
func (t Task) IsDueOn(day time.Time) bool {
	return t.DateKey() != "" && t.DateKey() == day.Format(DateLayout)
}

// Link is a reference attached to a task. On the wire it is either a bare URL
// string or an object with a display title.
type Link struct {
	Title string `json:"titulo,omitempty"`
	URL   string `json:"url"`
}

// UnmarshalJSON accepts both the string and the object form.
func (l *Link) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*l = Link{URL: raw}
		return nil
	}
	type plain Link
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}
	*l = Link(p)
	return nil
}

// MarshalJSON writes untitled links as bare strings.
func (l Link) MarshalJSON() ([]byte, error) {
	if l.Title == "" {
		return json.Marshal(l.URL)
	}
	type plain Link
	return json.Marshal(plain(l))
}

// String renders the link the way the form shows tags: "Title (url)" or "url".
func (l Link) String() string {
	if l.Title == "" {
		return l.URL
	}
	return fmt.Sprintf("%s (%s)", l.Title, l.URL)
}

// ParseLink reads a tag typed in the form. "Title (url)" yields a titled link,
// anything else is kept as a bare URL.
func ParseLink(s string) Link {
	title, inner, ok := splitParenthesized(s)
	if !ok {
		return Link{URL: strings.TrimSpace(s)}
	}
	return Link{Title: title, URL: inner}
}

// Contact is a person attached to a task.
type Contact struct {
	Name  string `json:"nombre"`
	Email string `json:"email,omitempty"`
}

// String renders the contact as "Name (email)" or "Name".
func (c Contact) String() string {
	if c.Email == "" {
		return c.Name
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Email)
}

// ParseContact reads a contact tag typed in the form.
func ParseContact(s string) Contact {
	name, inner, ok := splitParenthesized(s)
	if !ok {
		return Contact{Name: strings.TrimSpace(s)}
	}
	return Contact{Name: name, Email: inner}
}

// splitParenthesized splits "head (inner)" into its parts.
func splitParenthesized(s string) (head, inner string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	open := strings.LastIndex(s, " (")
	if open <= 0 {
		return "", "", false
	}
	head = strings.TrimSpace(s[:open])
	inner = strings.TrimSpace(s[open+2 : len(s)-1])
	if head == "" || inner == "" {
		return "", "", false
	}
	return head, inner, true
}

// CreateTaskRequest represents the request body for creating a task.
// Fecha and Asunto are sent as null when unset.
type CreateTaskRequest struct {
	Titulo      string     `json:"titulo"`
	Descripcion string     `json:"descripcion"`
	Fecha       *string    `json:"fecha"`
	Importancia Importance `json:"importancia"`
	Asunto      *string    `json:"asunto"`
	Status      Status     `json:"status,omitempty"`
	Enlaces     []Link     `json:"enlaces"`
	Contactos   []Contact  `json:"contactos"`
}

// UpdateTaskRequest represents a partial update. Only non-nil fields are sent;
// ClearFecha sends an explicit null date so the task moves back to undated.
type UpdateTaskRequest struct {
	Titulo      *string
	Descripcion *string
	Fecha       *string
	ClearFecha  bool
	Importancia *Importance
	Asunto      *string
	Status      *Status
	Enlaces     *[]Link
	Contactos   *[]Contact
}

// MarshalJSON writes only the fields that were set.
func (r UpdateTaskRequest) MarshalJSON() ([]byte, error) {
	fields := make(map[string]interface{})
	if r.Titulo != nil {
		fields["titulo"] = *r.Titulo
	}
	if r.Descripcion != nil {
		fields["descripcion"] = *r.Descripcion
	}
	if r.ClearFecha {
		fields["fecha"] = nil
	} else if r.Fecha != nil {
		fields["fecha"] = *r.Fecha
	}
	if r.Importancia != nil {
		fields["importancia"] = *r.Importancia
	}
	if r.Asunto != nil {
		fields["asunto"] = *r.Asunto
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Enlaces != nil {
		fields["enlaces"] = nonNilLinks(*r.Enlaces)
	}
	if r.Contactos != nil {
		fields["contactos"] = nonNilContacts(*r.Contactos)
	}
	return json.Marshal(fields)
}

// StatusUpdate builds the status-only update used by toggles and board moves.
func StatusUpdate(s Status) UpdateTaskRequest {
	return UpdateTaskRequest{Status: &s}
}

func nonNilLinks(l []Link) []Link {
	if l == nil {
		return []Link{}
	}
	return l
}

func nonNilContacts(c []Contact) []Contact {
	if c == nil {
		return []Contact{}
	}
	return c
}
