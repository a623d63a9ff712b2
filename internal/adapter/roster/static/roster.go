// Package staticroster serves the agent roster from configuration.
package staticroster

import (
	"context"

	"bannermind/internal/app/ports"
)

// Agent is one configured actor, before eligibility filtering.
type Agent struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Clan   string `yaml:"clan"`
	Leader bool   `yaml:"leader"`
	Player bool   `yaml:"player"`
	Dead   bool   `yaml:"dead"`
}

type Roster struct {
	agents []Agent
}

func NewRoster(agents []Agent) Roster {
	return Roster{agents: agents}
}

var _ ports.AgentRoster = Roster{}

// EligibleAgents filters out the player, the dead and the clanless.
func (r Roster) EligibleAgents(ctx context.Context) ([]ports.AgentProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]ports.AgentProfile, 0, len(r.agents))
	for _, a := range r.agents {
		if a.Player || a.Dead || a.Clan == "" {
			continue
		}
		out = append(out, ports.AgentProfile{
			ID:     a.ID,
			Name:   a.Name,
			Clan:   a.Clan,
			Leader: a.Leader,
		})
	}
	return out, nil
}
