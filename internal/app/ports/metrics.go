package ports

// Trigger identifies which driver started a workflow cycle.
const (
	TriggerEvent     = "event"
	TriggerScheduled = "scheduled"
	TriggerManual    = "manual"
)

type OrchestrationMetrics interface {
	RecordSuccess(trigger string)
	RecordFailure(trigger string)
	RecordDrop()
}
