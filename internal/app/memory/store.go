package memory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"bannermind/internal/domain/mind"
)

const DefaultCapacity = 5

// EmptyContext is returned when an agent has no recorded history yet.
const EmptyContext = "No prior decisions recorded."

// Store keeps a bounded FIFO history of past decisions per agent. Memory is
// process-lifetime only and is intentionally lost on restart.
//
// Each agent owns its own lock: concurrent calls for different agents do
// not block each other, while calls for the same agent are serialized.
type Store struct {
	mu       sync.RWMutex
	agents   map[string]*history
	capacity int
	now      func() time.Time
}

type history struct {
	mu      sync.Mutex
	entries []mind.MemoryEntry
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		agents:   make(map[string]*history),
		capacity: capacity,
		now:      time.Now,
	}
}

// WithNow overrides the clock. Test hook.
func (s *Store) WithNow(now func() time.Time) *Store {
	s.now = now
	return s
}

// Remember appends one entry to the agent's history, evicting the oldest
// entry once the capacity is exceeded.
func (s *Store) Remember(agentID, situation, summary, actionName string) {
	h := s.historyFor(agentID)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, mind.MemoryEntry{
		At:         s.now(),
		Situation:  situation,
		Summary:    summary,
		ActionName: actionName,
	})
	if len(h.entries) > s.capacity {
		h.entries = h.entries[len(h.entries)-s.capacity:]
	}
}

// Context renders the agent's history as a numbered list, oldest first,
// with the most recent entry annotated by its relative age.
func (s *Store) Context(agentID string) string {
	h := s.lookup(agentID)
	if h == nil {
		return EmptyContext
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.entries) == 0 {
		return EmptyContext
	}

	var b strings.Builder
	for i, e := range h.entries {
		fmt.Fprintf(&b, "%d. [%s] %s (action: %s)", i+1, e.Situation, e.Summary, e.ActionName)
		if i == len(h.entries)-1 {
			fmt.Fprintf(&b, " — %s", relativeAge(s.now().Sub(e.At)))
		}
		if i < len(h.entries)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Len reports how many entries the agent currently holds.
func (s *Store) Len(agentID string) int {
	h := s.lookup(agentID)
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Forget clears one agent's history.
func (s *Store) Forget(agentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.agents, agentID)
}

// ForgetAll clears every agent's history.
func (s *Store) ForgetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = make(map[string]*history)
}

func (s *Store) historyFor(agentID string) *history {
	s.mu.RLock()
	h, ok := s.agents[agentID]
	s.mu.RUnlock()
	if ok {
		return h
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok = s.agents[agentID]; ok {
		return h
	}
	h = &history{}
	s.agents[agentID] = h
	return h
}

func (s *Store) lookup(agentID string) *history {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agents[agentID]
}

func relativeAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	default:
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	}
}
