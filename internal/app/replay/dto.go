package replay

import "bannermind/internal/app/ports"

type Request struct {
	AgentID     string
	Limit       int
	DecidedFrom int64
	DecidedTo   int64
	TriggerKind string
}

type Response struct {
	Decisions []ports.DecisionRecord `json:"decisions"`
}
