package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"bannermind/internal/app/ports"
	"bannermind/internal/app/replay"
	"bannermind/internal/app/status"
	"bannermind/internal/app/workflow"
	"bannermind/internal/domain/mind"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// eventEnqueuer is the slice of the reaction queue the handler needs.
type eventEnqueuer interface {
	Enqueue(agentID, kind, description string) bool
	Depth() int
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

type Handler struct {
	WorkflowUC workflow.UseCase
	StatusUC   status.UseCase
	ReplayUC   replay.UseCase
	Events     eventEnqueuer
	Metrics    ports.OrchestrationMetrics
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	world := s.Group("/api/world")
	world.POST("/event", h.worldEvent)

	agent := s.Group("/api/agent")
	agent.POST("/think", h.think)
	agent.POST("/status", h.status)
	agent.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type worldEventRequest struct {
	AgentID     string `json:"agent_id"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type worldEventResponse struct {
	Accepted   bool `json:"accepted"`
	QueueDepth int  `json:"queue_depth"`
}

// worldEvent is fire-and-forget: the response only says whether the event
// was accepted into the queue, never waits for the decision.
func (h Handler) worldEvent(_ context.Context, ctx *app.RequestContext) {
	var body worldEventRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if body.AgentID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", "agent_id is required")
		return
	}

	accepted := h.Events.Enqueue(body.AgentID, body.Kind, body.Description)
	ctx.JSON(consts.StatusAccepted, worldEventResponse{
		Accepted:   accepted,
		QueueDepth: h.Events.Depth(),
	})
}

type thinkRequest struct {
	AgentID string `json:"agent_id"`
}

type thinkResponse struct {
	AgentID   string              `json:"agent_id"`
	Location  string              `json:"location"`
	Reasoning string              `json:"reasoning"`
	Actions   []mind.Action       `json:"actions"`
	Results   []mind.ActionResult `json:"results"`
}

func (h Handler) think(c context.Context, ctx *app.RequestContext) {
	var body thinkRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	res := h.WorkflowUC.Execute(ports.WithTrigger(c, ports.TriggerManual), body.AgentID)
	if res.Err != nil {
		if h.Metrics != nil {
			h.Metrics.RecordFailure(ports.TriggerManual)
		}
		writeError(ctx, res.Err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.RecordSuccess(ports.TriggerManual)
	}

	ctx.JSON(consts.StatusOK, thinkResponse{
		AgentID:   res.AgentID,
		Location:  res.Perception.Location,
		Reasoning: res.Decision.Reasoning,
		Actions:   res.Decision.Actions,
		Results:   res.ActionResults,
	})
}

type statusRequest struct {
	AgentID string `json:"agent_id"`
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	var body statusRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.StatusUC.Execute(c, status.Request{AgentID: body.AgentID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	decidedFrom, _ := strconv.ParseInt(string(ctx.Query("decided_from")), 10, 64)
	decidedTo, _ := strconv.ParseInt(string(ctx.Query("decided_to")), 10, 64)

	resp, err := h.ReplayUC.Execute(c, replay.Request{
		AgentID:     string(ctx.Query("agent_id")),
		Limit:       limit,
		DecidedFrom: decidedFrom,
		DecidedTo:   decidedTo,
		TriggerKind: string(ctx.Query("trigger")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, workflow.ErrAgentBusy):
		writeErrorBody(ctx, consts.StatusConflict, "agent_busy", err.Error())
	case errors.Is(err, workflow.ErrWorldNotReady):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "world_not_ready", err.Error())
	case errors.Is(err, workflow.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// NewServer builds the hertz server with CORS applied and all routes
// registered.
func NewServer(addr string, h Handler) *server.Hertz {
	s := server.Default(server.WithHostPorts(addr))
	s.Use(corsMiddleware())
	h.RegisterRoutes(s)
	return s
}
