package ports

import (
	"context"

	"bannermind/internal/domain/mind"
)

// WorkflowResult is the outcome of one perceive-reason-act cycle. The
// workflow never lets a collaborator failure escape as a panic or error
// return; Err carries the failure and the other fields are zero.
type WorkflowResult struct {
	AgentID       string
	Perception    mind.Perception
	Decision      mind.Decision
	ActionResults []mind.ActionResult
	Err           error
}

func (r WorkflowResult) Succeeded() bool {
	return r.Err == nil
}

// WorkflowRunner is the single entry point any trigger source (manual,
// event, scheduled) uses to run one decision cycle for an agent.
type WorkflowRunner interface {
	Execute(ctx context.Context, agentID string) WorkflowResult
}
