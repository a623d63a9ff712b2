// Package memrepo provides in-memory repository implementations, used when
// no database is configured and in tests.
package memrepo

import (
	"context"
	"sort"
	"sync"

	"bannermind/internal/app/ports"
)

type DecisionLogRepo struct {
	mu      sync.RWMutex
	byAgent map[string][]ports.DecisionRecord
}

func NewDecisionLogRepo() *DecisionLogRepo {
	return &DecisionLogRepo{byAgent: make(map[string][]ports.DecisionRecord)}
}

var _ ports.DecisionLogRepository = (*DecisionLogRepo)(nil)

func (r *DecisionLogRepo) Save(_ context.Context, rec ports.DecisionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAgent[rec.AgentID] = append(r.byAgent[rec.AgentID], rec)
	return nil
}

func (r *DecisionLogRepo) ListByAgentID(_ context.Context, agentID string, limit int) ([]ports.DecisionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records, ok := r.byAgent[agentID]
	if !ok || len(records) == 0 {
		return nil, ports.ErrNotFound
	}

	out := make([]ports.DecisionRecord, len(records))
	copy(out, records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].DecidedAt.After(out[j].DecidedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
