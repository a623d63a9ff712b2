package mind

import "time"

// EconomySummary condenses the economic situation visible to one lord.
type EconomySummary struct {
	Prosperity int `json:"prosperity"`
	FoodSupply int `json:"food_supply"`
	TaxRate    int `json:"tax_rate"`
}

// Perception is an immutable snapshot of world state relevant to one agent
// at one instant. It is produced fresh on every workflow cycle and owned
// exclusively by that cycle.
type Perception struct {
	Timestamp time.Time      `json:"timestamp"`
	Location  string         `json:"location"`
	Weather   string         `json:"weather"`
	Economy   EconomySummary `json:"economy"`
	Relations map[string]int `json:"relations"`
}

// Action is one parsed instruction from a decision. Params always carries
// the owning agent id by the time an executor sees it.
type Action struct {
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
}

// Decision is the parsed output of one reasoning call. A decision always
// carries at least one action; texts with no recognizable action line parse
// to a single Wait action.
type Decision struct {
	AgentID   string   `json:"agent_id"`
	Reasoning string   `json:"reasoning"`
	Actions   []Action `json:"actions"`
}

// ActionResult records the outcome of applying one action.
type ActionResult struct {
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// MemoryEntry is one remembered decision in an agent's bounded history.
type MemoryEntry struct {
	At         time.Time
	Situation  string
	Summary    string
	ActionName string
}

const (
	ActionWait = "Wait"

	// DefaultWaitDuration is attached to synthesized Wait actions so the
	// executor always receives a bounded idle period.
	DefaultWaitDuration = "1h"
)
