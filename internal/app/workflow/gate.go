package workflow

import "sync"

// Gate tracks which agents currently have a decision cycle in flight. Both
// drivers (event queue, proactive scheduler) run cycles through the same
// workflow instance, so a single gate prevents them from double-charging
// the reasoning backend for one agent.
type Gate struct {
	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewGate() *Gate {
	return &Gate{inflight: make(map[string]struct{})}
}

// TryBegin marks the agent in flight, reporting false if it already is.
func (g *Gate) TryBegin(agentID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inflight[agentID]; busy {
		return false
	}
	g.inflight[agentID] = struct{}{}
	return true
}

// End releases the agent.
func (g *Gate) End(agentID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inflight, agentID)
}
