package ports

import (
	"context"

	"bannermind/internal/domain/mind"
)

// ReasoningClient asks the remote reasoning backend for a raw decision
// text. Implementations are provider-specific and selected once at
// construction; the core never branches on a backend name at call time.
type ReasoningClient interface {
	Reason(ctx context.Context, agentID string, perception mind.Perception, memoryContext string) (string, error)
}
