package state

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/hy4ri/planner-tui/internal/api"
)

// TaskLister is the part of the API client the cache needs.
type TaskLister interface {
	ListTasks() ([]api.Task, error)
}

// Cache is the single in-memory copy of the user's tasks. It is only ever
// replaced wholesale by Refresh; readers get copies.
type Cache struct {
	source TaskLister

	mu    sync.RWMutex
	byID  map[int]api.Task
	order []int

	refresh Flight
	// stale is set by writers whose change a running listing may have missed.
	stale atomic.Bool
}

// NewCache creates an empty cache backed by source.
func NewCache(source TaskLister) *Cache {
	return &Cache{
		source: source,
		byID:   make(map[int]api.Task),
	}
}

// Refresh reloads every task and swaps the mapping. When another refresh is
// already running it returns (false, nil) at once without touching the
// network. On error the previous contents are kept.
func (c *Cache) Refresh() (bool, error) {
	return c.run()
}

// Invalidate is Refresh for callers that have just changed tasks on the
// server. If a refresh is already running its listing may predate the change,
// so that refresh lists once more before it returns.
func (c *Cache) Invalidate() (bool, error) {
	c.stale.Store(true)
	return c.run()
}

func (c *Cache) run() (bool, error) {
	if !c.refresh.TryBegin() {
		log.Printf("cache: refresh already in flight, skipping")
		return false, nil
	}

	changed := false
	for {
		c.stale.Store(false)
		tasks, err := c.source.ListTasks()
		if err != nil {
			c.refresh.End()
			return changed, err
		}
		c.Replace(tasks)
		changed = true

		if c.stale.Load() {
			log.Printf("cache: tasks changed during refresh, listing again")
			continue
		}
		c.refresh.End()

		// A writer may have marked the cache stale between the check and End
		// and found the guard still taken.
		if !c.stale.Load() || !c.refresh.TryBegin() {
			return changed, nil
		}
	}
}

// Replace installs a new task list. Repeated ids collapse into the position of
// their first occurrence, keeping the last value seen.
func (c *Cache) Replace(tasks []api.Task) {
	byID := make(map[int]api.Task, len(tasks))
	order := make([]int, 0, len(tasks))
	for _, t := range tasks {
		if _, seen := byID[t.ID]; !seen {
			order = append(order, t.ID)
		}
		byID[t.ID] = t
	}

	c.mu.Lock()
	c.byID = byID
	c.order = order
	c.mu.Unlock()
}

// Refreshing reports whether a refresh is in flight.
func (c *Cache) Refreshing() bool {
	return c.refresh.InFlight()
}

// All returns every task in server order.
func (c *Cache) All() []api.Task {
	return c.filter(func(api.Task) bool { return true })
}

// ByStatus returns the tasks in one status bucket, in server order.
func (c *Cache) ByStatus(status api.Status) []api.Task {
	return c.filter(func(t api.Task) bool { return t.Bucket() == status })
}

// ByDate returns the tasks dated on the given YYYY-MM-DD day.
func (c *Cache) ByDate(date string) []api.Task {
	return c.filter(func(t api.Task) bool { return t.DateKey() == date })
}

// Get returns the task with the given id.
func (c *Cache) Get(id int) (api.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.byID[id]
	return t, ok
}

// Len returns the number of cached tasks.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// CountByDate returns the number of tasks per dated day.
func (c *Cache) CountByDate() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int)
	for _, id := range c.order {
		if d := c.byID[id].DateKey(); d != "" {
			counts[d]++
		}
	}
	return counts
}

func (c *Cache) filter(keep func(api.Task) bool) []api.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]api.Task, 0, len(c.order))
	for _, id := range c.order {
		if t := c.byID[id]; keep(t) {
			out = append(out, t)
		}
	}
	return out
}
