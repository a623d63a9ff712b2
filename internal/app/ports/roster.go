package ports

import "context"

// AgentProfile describes one actor as seen by the proactive scheduler.
type AgentProfile struct {
	ID     string
	Name   string
	Clan   string
	Leader bool
}

// AgentRoster lists agents eligible for spontaneous thinking: alive, not
// player-controlled, and affiliated with a clan. The filtering is the
// roster's responsibility; the scheduler only applies cooldown state on top.
type AgentRoster interface {
	EligibleAgents(ctx context.Context) ([]AgentProfile, error)
}
