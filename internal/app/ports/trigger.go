package ports

import "context"

type triggerKey struct{}

// WithTrigger tags ctx with the driver kind that started the cycle, so the
// decision log can attribute each record without widening the workflow
// contract.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, triggerKey{}, trigger)
}

// TriggerFromContext reports the tagged trigger, defaulting to manual.
func TriggerFromContext(ctx context.Context) string {
	if t, ok := ctx.Value(triggerKey{}).(string); ok && t != "" {
		return t
	}
	return TriggerManual
}
