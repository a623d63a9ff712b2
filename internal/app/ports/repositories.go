package ports

import (
	"context"
	"time"

	"bannermind/internal/domain/mind"
)

// DecisionRecord is the persisted audit trail of one completed workflow
// cycle. Memory keeps the short-lived view; the decision log keeps history.
type DecisionRecord struct {
	RecordID  string              `json:"record_id"`
	AgentID   string              `json:"agent_id"`
	Trigger   string              `json:"trigger"`
	Situation string              `json:"situation"`
	Reasoning string              `json:"reasoning"`
	Actions   []mind.Action       `json:"actions"`
	Results   []mind.ActionResult `json:"results"`
	DecidedAt time.Time           `json:"decided_at"`
}

type DecisionLogRepository interface {
	Save(ctx context.Context, rec DecisionRecord) error
	ListByAgentID(ctx context.Context, agentID string, limit int) ([]DecisionRecord, error)
}
