// Package sim applies decided actions to an in-process world model. Each
// action mutates a small ledger of stances and positions, enough for
// decisions to have visible consequences across cycles.
package sim

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"
)

// RelationSink receives diplomatic fallout from executed actions. The
// world provider implements it so wars dent faction standing.
type RelationSink interface {
	AdjustRelation(faction string, delta int)
}

type handler func(ctx context.Context, agentID string, detail map[string]string) (mind.ActionResult, error)

type Executor struct {
	mu       sync.Mutex
	stances  map[string]string // "agent|faction" -> "war" | "peace"
	handlers map[string]handler
	world    RelationSink
}

func NewExecutor(world RelationSink) *Executor {
	e := &Executor{
		stances: make(map[string]string),
		world:   world,
	}
	e.handlers = map[string]handler{
		"DeclareWar":    e.declareWar,
		"MakePeace":     e.makePeace,
		"Attack":        e.attack,
		"Patrol":        e.patrol,
		"Trade":         e.trade,
		"Recruit":       e.recruit,
		"Move":          e.move,
		mind.ActionWait: e.wait,
	}
	return e
}

var _ ports.ActionExecutor = (*Executor)(nil)

func (e *Executor) CanExecute(actionType string) bool {
	_, ok := e.handlers[actionType]
	return ok
}

func (e *Executor) Execute(ctx context.Context, action mind.Action) (mind.ActionResult, error) {
	h, ok := e.handlers[action.Type]
	if !ok {
		return mind.ActionResult{}, fmt.Errorf("no handler for action %q", action.Type)
	}
	if err := ctx.Err(); err != nil {
		return mind.ActionResult{}, err
	}
	return h(ctx, action.Params["agent_id"], parseDetail(action.Params["detail"]))
}

// parseDetail splits "key=value, key=value" detail text. Malformed
// segments are skipped.
func parseDetail(detail string) map[string]string {
	out := map[string]string{}
	for _, part := range strings.Split(detail, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

func (e *Executor) declareWar(_ context.Context, agentID string, detail map[string]string) (mind.ActionResult, error) {
	target := detail["target"]
	if target == "" {
		return mind.ActionResult{Message: "declare war: no target named"}, nil
	}

	e.mu.Lock()
	key := agentID + "|" + target
	if e.stances[key] == "war" {
		e.mu.Unlock()
		return mind.ActionResult{Message: fmt.Sprintf("already at war with %s", target)}, nil
	}
	e.stances[key] = "war"
	e.mu.Unlock()

	if e.world != nil {
		e.world.AdjustRelation(target, -30)
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("war declared on %s", target)}, nil
}

func (e *Executor) makePeace(_ context.Context, agentID string, detail map[string]string) (mind.ActionResult, error) {
	target := detail["target"]
	if target == "" {
		return mind.ActionResult{Message: "make peace: no target named"}, nil
	}

	e.mu.Lock()
	key := agentID + "|" + target
	if e.stances[key] != "war" {
		e.mu.Unlock()
		return mind.ActionResult{Message: fmt.Sprintf("not at war with %s", target)}, nil
	}
	e.stances[key] = "peace"
	e.mu.Unlock()

	if e.world != nil {
		e.world.AdjustRelation(target, 20)
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("peace concluded with %s", target)}, nil
}

func (e *Executor) attack(_ context.Context, agentID string, detail map[string]string) (mind.ActionResult, error) {
	target := detail["target"]
	if target == "" {
		return mind.ActionResult{Message: "attack: no target named"}, nil
	}

	e.mu.Lock()
	atWar := e.stances[agentID+"|"+target] == "war"
	e.mu.Unlock()

	if !atWar {
		return mind.ActionResult{Message: fmt.Sprintf("cannot attack %s without a declared war", target)}, nil
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("raided %s holdings", target)}, nil
}

func (e *Executor) patrol(_ context.Context, _ string, detail map[string]string) (mind.ActionResult, error) {
	area := detail["area"]
	if area == "" {
		area = "home territory"
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("patrolling %s", area)}, nil
}

func (e *Executor) trade(_ context.Context, _ string, detail map[string]string) (mind.ActionResult, error) {
	good := detail["good"]
	if good == "" {
		good = "goods"
	}
	town := detail["town"]
	if town == "" {
		return mind.ActionResult{Message: "trade: no town named"}, nil
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("trading %s at %s", good, town)}, nil
}

func (e *Executor) recruit(_ context.Context, _ string, detail map[string]string) (mind.ActionResult, error) {
	town := detail["town"]
	if town == "" {
		return mind.ActionResult{Message: "recruit: no town named"}, nil
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("recruiting troops at %s", town)}, nil
}

func (e *Executor) move(_ context.Context, _ string, detail map[string]string) (mind.ActionResult, error) {
	dest := detail["destination"]
	if dest == "" {
		dest = detail["target"]
	}
	if dest == "" {
		return mind.ActionResult{Message: "move: no destination named"}, nil
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("marching to %s", dest)}, nil
}

func (e *Executor) wait(_ context.Context, _ string, detail map[string]string) (mind.ActionResult, error) {
	duration := detail["duration"]
	if duration == "" {
		duration = mind.DefaultWaitDuration
	}
	if _, err := time.ParseDuration(duration); err != nil {
		duration = mind.DefaultWaitDuration
	}
	return mind.ActionResult{Succeeded: true, Message: fmt.Sprintf("waiting %s", duration)}, nil
}

// StanceWith reports the current diplomatic stance between an agent and a
// faction, defaulting to peace.
func (e *Executor) StanceWith(agentID, faction string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if stance, ok := e.stances[agentID+"|"+faction]; ok {
		return stance
	}
	return "peace"
}
