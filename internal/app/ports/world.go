package ports

import (
	"context"

	"bannermind/internal/domain/mind"
)

// Sensor reads the simulation into a fresh perception snapshot for one
// agent. Implementations may perform long-latency I/O and must honor ctx.
type Sensor interface {
	Perceive(ctx context.Context, agentID string) (mind.Perception, error)
}

// WorldGate reports whether the world is still in a state where workflow
// results are meaningful. Callers re-check it before applying a result; a
// stale cycle is discarded rather than applied.
type WorldGate interface {
	Ready() bool
}
