package cooldown

import (
	"sync"
	"time"
)

// Tracker remembers when each agent last triggered and gates re-triggering
// by a minimum interval. The check and the stamp are one critical section
// per agent: two near-simultaneous callers can never both observe "expired"
// and both stamp.
//
// Locks are per-agent so unrelated agents never serialize on each other.
type Tracker struct {
	mu     sync.RWMutex
	agents map[string]*record
	now    func() time.Time
}

type record struct {
	mu          sync.Mutex
	lastTrigger time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		agents: make(map[string]*record),
		now:    time.Now,
	}
}

// WithNow overrides the clock. Test hook.
func (t *Tracker) WithNow(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// TryAccept atomically checks the agent's last trigger against period and,
// if absent or expired, stamps now and reports true. A rejection leaves the
// stored timestamp untouched.
func (t *Tracker) TryAccept(agentID string, period time.Duration) bool {
	r := t.recordFor(agentID)
	r.mu.Lock()
	defer r.mu.Unlock()
	now := t.now()
	if !r.lastTrigger.IsZero() && now.Sub(r.lastTrigger) < period {
		return false
	}
	r.lastTrigger = now
	return true
}

// ActiveWithin reports whether the agent triggered inside the given window.
// It never stamps; the scheduler uses it to filter candidates before
// committing to a dispatch.
func (t *Tracker) ActiveWithin(agentID string, window time.Duration) bool {
	r := t.lookup(agentID)
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastTrigger.IsZero() {
		return false
	}
	return t.now().Sub(r.lastTrigger) < window
}

// LastTrigger returns the agent's last accepted trigger time, if any.
func (t *Tracker) LastTrigger(agentID string) (time.Time, bool) {
	r := t.lookup(agentID)
	if r == nil {
		return time.Time{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastTrigger.IsZero() {
		return time.Time{}, false
	}
	return r.lastTrigger, true
}

// Clear forgets the agent's cooldown state.
func (t *Tracker) Clear(agentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.agents, agentID)
}

func (t *Tracker) recordFor(agentID string) *record {
	t.mu.RLock()
	r, ok := t.agents[agentID]
	t.mu.RUnlock()
	if ok {
		return r
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if r, ok = t.agents[agentID]; ok {
		return r
	}
	r = &record{}
	t.agents[agentID] = r
	return r
}

func (t *Tracker) lookup(agentID string) *record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.agents[agentID]
}
