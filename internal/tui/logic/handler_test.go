package logic

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/config"
	"github.com/hy4ri/planner-tui/internal/tui/state"
)

// fakePlanner is an in-memory planner API that records every request.
type fakePlanner struct {
	mu     sync.Mutex
	tasks  map[int]api.Task
	nextID int
	hits   map[string]int
	bodies []string

	// failWith makes every write answer with this status when non-zero.
	failWith int
	// gate, when set, blocks requests for gateKey until release. A held
	// listing is read before it blocks.
	gateKey string
	gate    chan struct{}
	entered chan struct{}
}

func newFakePlanner(seed ...api.Task) *fakePlanner {
	p := &fakePlanner{
		tasks:  make(map[int]api.Task),
		nextID: 100,
		hits:   make(map[string]int),
	}
	for _, t := range seed {
		p.tasks[t.ID] = t
	}
	return p
}

func (p *fakePlanner) fail(status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failWith = status
}

// hold makes requests for key wait until release. Each one signals entered
// when it arrives.
func (p *fakePlanner) hold(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gateKey = key
	p.gate = make(chan struct{})
	p.entered = make(chan struct{}, 1)
}

func (p *fakePlanner) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	close(p.gate)
	p.gate = nil
}

func (p *fakePlanner) count(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits[key]
}

func (p *fakePlanner) lastBody() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.bodies) == 0 {
		return ""
	}
	return p.bodies[len(p.bodies)-1]
}

func (p *fakePlanner) list(keep func(api.Task) bool) []api.Task {
	out := []api.Task{}
	for _, t := range p.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (p *fakePlanner) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/tareas")
	key := r.Method + " /api/tareas"
	if strings.HasPrefix(path, "/fecha/") {
		key += "/fecha"
	} else if path != "" {
		key += "/{id}"
	}

	all := func(api.Task) bool { return true }

	p.mu.Lock()
	p.hits[key]++
	gate, entered := p.gate, p.entered
	held := gate != nil && key == p.gateKey
	var listing []api.Task
	if held && key == "GET /api/tareas" {
		listing = p.list(all)
	}
	p.mu.Unlock()

	if held {
		entered <- struct{}{}
		<-gate
	}

	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(body) > 0 {
		p.bodies = append(p.bodies, string(body))
	}

	if r.Method != http.MethodGet && p.failWith != 0 {
		w.WriteHeader(p.failWith)
		_, _ = w.Write([]byte(`{"error":"rejected"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case key == "GET /api/tareas":
		if listing == nil {
			listing = p.list(all)
		}
		_ = json.NewEncoder(w).Encode(listing)

	case key == "GET /api/tareas/fecha":
		date := strings.TrimPrefix(path, "/fecha/")
		_ = json.NewEncoder(w).Encode(p.list(func(t api.Task) bool { return t.DateKey() == date }))

	case key == "POST /api/tareas":
		var t api.Task
		_ = json.Unmarshal(body, &t)
		p.nextID++
		t.ID = p.nextID
		p.tasks[t.ID] = t
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(t)

	case key == "PUT /api/tareas/{id}":
		id, _ := strconv.Atoi(strings.TrimPrefix(path, "/"))
		t, ok := p.tasks[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		// Decoding onto the stored task applies only the sent fields.
		_ = json.Unmarshal(body, &t)
		p.tasks[id] = t
		_ = json.NewEncoder(w).Encode(t)

	case key == "DELETE /api/tareas/{id}":
		id, _ := strconv.Atoi(strings.TrimPrefix(path, "/"))
		delete(p.tasks, id)
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestHandler(t *testing.T, p *fakePlanner) *Handler {
	t.Helper()
	srv := httptest.NewServer(p)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.UI.Notifications = false

	h := NewHandler(state.New(api.NewClient(srv.URL, ""), cfg))
	h.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	return h
}

// drain runs cmd and every command that follows from it, feeding the
// messages back into h. Tick-driven messages are dropped.
func drain(t *testing.T, h *Handler, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		done := make(chan tea.Msg, 1)
		go func() { done <- c() }()
		var msg tea.Msg
		select {
		case msg = <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("command did not finish")
		}

		switch msg := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case spinner.TickMsg, checkDueMsg, refreshTickMsg, nil:
		default:
			queue = append(queue, h.Update(msg))
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, h *Handler, keys ...string) {
	t.Helper()
	for _, k := range keys {
		drain(t, h, h.Update(key(k)))
	}
}

func columnTitles(h *Handler, status api.Status) []string {
	var titles []string
	for _, t := range h.KanbanComp.Board().Column(status).Tasks {
		titles = append(titles, t.Titulo)
	}
	return titles
}
