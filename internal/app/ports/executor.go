package ports

import (
	"context"

	"bannermind/internal/domain/mind"
)

// ActionExecutor applies decided actions to the simulation.
type ActionExecutor interface {
	CanExecute(actionType string) bool
	Execute(ctx context.Context, action mind.Action) (mind.ActionResult, error)
}
