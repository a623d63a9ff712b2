package status

import (
	"context"
	"errors"
	"strings"
	"time"

	"bannermind/internal/app/cooldown"
	"bannermind/internal/app/memory"
)

var ErrInvalidRequest = errors.New("invalid status request")

type queueDepther interface {
	Depth() int
}

// UseCase reports an agent's orchestration state: remembered history,
// cooldown position and the shared queue depth.
type UseCase struct {
	Memory        *memory.Store
	Cooldowns     *cooldown.Tracker
	Queue         queueDepther
	EventCooldown time.Duration
}

func (u UseCase) Execute(_ context.Context, req Request) (Response, error) {
	agentID := strings.TrimSpace(req.AgentID)
	if agentID == "" {
		return Response{}, ErrInvalidRequest
	}

	resp := Response{
		AgentID:       agentID,
		MemoryEntries: u.Memory.Len(agentID),
		MemoryContext: u.Memory.Context(agentID),
	}
	if last, ok := u.Cooldowns.LastTrigger(agentID); ok {
		resp.LastTrigger = &last
		deadline := last.Add(u.EventCooldown)
		resp.CooldownDeadline = &deadline
	}
	if u.Queue != nil {
		resp.QueueDepth = u.Queue.Depth()
	}
	return resp, nil
}
