package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bannermind/internal/app/memory"
	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest = errors.New("invalid workflow request")
	ErrAgentBusy      = errors.New("agent decision already in flight")
	ErrWorldNotReady  = errors.New("world context no longer valid")
)

// Workflow stages that can abort a cycle.
const (
	StageSense  = "sense"
	StageReason = "reason"
)

// StageError marks which aborting stage failed. Per-action failures never
// become a StageError; they are recorded inside the result and the cycle
// continues.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// UseCase runs one perceive-reason-act cycle per agent. Gate, DecisionLog
// and World are optional; a nil Memory is not.
type UseCase struct {
	Sensor      ports.Sensor
	Reasoner    ports.ReasoningClient
	Executor    ports.ActionExecutor
	Memory      *memory.Store
	Gate        *Gate
	DecisionLog ports.DecisionLogRepository
	World       ports.WorldGate
	Now         func() time.Time
}

var _ ports.WorkflowRunner = UseCase{}

// Execute never lets a collaborator failure escape: every error, timeout,
// cancellation or panic resolves to a result with Err set.
func (u UseCase) Execute(ctx context.Context, agentID string) (res ports.WorkflowResult) {
	agentID = strings.TrimSpace(agentID)
	res = ports.WorkflowResult{AgentID: agentID}
	if agentID == "" {
		res.Err = ErrInvalidRequest
		return res
	}
	defer func() {
		if r := recover(); r != nil {
			res = ports.WorkflowResult{AgentID: agentID, Err: fmt.Errorf("workflow panic: %v", r)}
		}
	}()

	if u.Gate != nil {
		if !u.Gate.TryBegin(agentID) {
			res.Err = ErrAgentBusy
			return res
		}
		defer u.Gate.End(agentID)
	}

	perception, err := u.Sensor.Perceive(ctx, agentID)
	if err != nil {
		res.Err = &StageError{Stage: StageSense, Err: err}
		return res
	}

	raw, err := u.Reasoner.Reason(ctx, agentID, perception, u.Memory.Context(agentID))
	if err != nil {
		res.Err = &StageError{Stage: StageReason, Err: err}
		return res
	}
	decision := mind.Parse(agentID, raw)

	// The reasoning call may have outlived the world state it was computed
	// against; a stale decision is discarded, not applied.
	if u.World != nil && !u.World.Ready() {
		res.Err = ErrWorldNotReady
		return res
	}

	results := u.applyActions(ctx, agentID, &decision)
	u.remember(agentID, perception, decision)
	u.persistRecord(ctx, agentID, perception, decision, results)

	res.Perception = perception
	res.Decision = decision
	res.ActionResults = results
	return res
}

// applyActions runs every decided action in order. An unknown or failing
// action is recorded and the loop continues; one bad action never aborts
// the cycle.
func (u UseCase) applyActions(ctx context.Context, agentID string, decision *mind.Decision) []mind.ActionResult {
	results := make([]mind.ActionResult, 0, len(decision.Actions))
	for i := range decision.Actions {
		act := &decision.Actions[i]
		if act.Params == nil {
			act.Params = map[string]string{}
		}
		if _, ok := act.Params["agent_id"]; !ok {
			act.Params["agent_id"] = agentID
		}
		if !u.Executor.CanExecute(act.Type) {
			results = append(results, mind.ActionResult{
				Message: fmt.Sprintf("unknown action %q", act.Type),
			})
			continue
		}
		outcome, err := u.Executor.Execute(ctx, *act)
		if err != nil {
			results = append(results, mind.ActionResult{
				Message: fmt.Sprintf("execute %s: %v", act.Type, err),
				Err:     err,
			})
			continue
		}
		results = append(results, outcome)
	}
	return results
}

// remember writes the agent's memory exactly once per successful cycle.
// Memory records the decision, not the execution outcome.
func (u UseCase) remember(agentID string, perception mind.Perception, decision mind.Decision) {
	actionName := mind.ActionWait
	if len(decision.Actions) > 0 {
		actionName = decision.Actions[0].Type
	}
	u.Memory.Remember(agentID, situationLabel(perception), summarize(decision.Reasoning), actionName)
}

func (u UseCase) persistRecord(ctx context.Context, agentID string, perception mind.Perception, decision mind.Decision, results []mind.ActionResult) {
	if u.DecisionLog == nil {
		return
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rec := ports.DecisionRecord{
		RecordID:  uuid.NewString(),
		AgentID:   agentID,
		Trigger:   ports.TriggerFromContext(ctx),
		Situation: situationLabel(perception),
		Reasoning: decision.Reasoning,
		Actions:   decision.Actions,
		Results:   results,
		DecidedAt: nowFn(),
	}
	// Record keeping must not fail the cycle.
	if err := u.DecisionLog.Save(ctx, rec); err != nil {
		log.Printf("workflow: save decision record for %s: %v", agentID, err)
	}
}

func situationLabel(p mind.Perception) string {
	if p.Weather == "" {
		return p.Location
	}
	return p.Location + ", " + p.Weather
}

const summaryLimit = 100

func summarize(reasoning string) string {
	s := strings.TrimSpace(reasoning)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	runes := []rune(s)
	if len(runes) > summaryLimit {
		s = string(runes[:summaryLimit-3]) + "..."
	}
	return s
}
