package status

import "time"

type Request struct {
	AgentID string
}

type Response struct {
	AgentID          string     `json:"agent_id"`
	MemoryEntries    int        `json:"memory_entries"`
	MemoryContext    string     `json:"memory_context"`
	LastTrigger      *time.Time `json:"last_trigger,omitempty"`
	CooldownDeadline *time.Time `json:"cooldown_deadline,omitempty"`
	QueueDepth       int        `json:"queue_depth"`
}
