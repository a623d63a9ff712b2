package replay

import (
	"context"
	"errors"
	"strings"

	"bannermind/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid replay request")

// UseCase replays an agent's persisted decision history, newest first.
type UseCase struct {
	Decisions ports.DecisionLogRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.AgentID) == "" {
		return Response{}, ErrInvalidRequest
	}
	records, err := u.Decisions.ListByAgentID(ctx, req.AgentID, req.Limit)
	if err != nil {
		return Response{}, err
	}
	records = filterByTimeWindow(records, req.DecidedFrom, req.DecidedTo)
	if kind := strings.TrimSpace(req.TriggerKind); kind != "" {
		records = filterByTrigger(records, kind)
	}
	return Response{Decisions: records}, nil
}

func filterByTimeWindow(records []ports.DecisionRecord, from, to int64) []ports.DecisionRecord {
	if from <= 0 && to <= 0 {
		return records
	}
	out := make([]ports.DecisionRecord, 0, len(records))
	for _, rec := range records {
		ts := rec.DecidedAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func filterByTrigger(records []ports.DecisionRecord, trigger string) []ports.DecisionRecord {
	out := make([]ports.DecisionRecord, 0, len(records))
	for _, rec := range records {
		if rec.Trigger == trigger {
			out = append(out, rec)
		}
	}
	return out
}
