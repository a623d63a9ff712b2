package reaction

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"bannermind/internal/app/cooldown"
	"bannermind/internal/app/ports"

	"github.com/google/uuid"
)

const (
	DefaultCooldown   = 30 * time.Second
	DefaultDrainDelay = 1 * time.Second
)

type Config struct {
	// Cooldown is the minimum interval between accepted events per agent.
	Cooldown time.Duration
	// DrainDelay is the pause between drained items, bounding the rate of
	// reasoning calls during event bursts.
	DrainDelay time.Duration
}

// WorkItem is one accepted event reaction awaiting processing.
type WorkItem struct {
	ID          string
	AgentID     string
	Kind        string
	Description string
	EnqueuedAt  time.Time
}

// Queue accepts event-triggered work, deduplicates per agent via the
// cooldown tracker, and drains items one at a time through the workflow.
// At most one drain loop runs at a time regardless of how many Enqueue
// calls race; a failing item never stops the loop.
type Queue struct {
	cfg       Config
	cooldowns *cooldown.Tracker
	runner    ports.WorkflowRunner
	metrics   ports.OrchestrationMetrics

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	items    []WorkItem
	draining bool
	wg       sync.WaitGroup
}

func NewQueue(cfg Config, cooldowns *cooldown.Tracker, runner ports.WorkflowRunner, metrics ports.OrchestrationMetrics) *Queue {
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.DrainDelay <= 0 {
		cfg.DrainDelay = DefaultDrainDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Queue{
		cfg:       cfg,
		cooldowns: cooldowns,
		runner:    runner,
		metrics:   metrics,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Enqueue submits an event reaction for the agent. A rejection by the
// cooldown tracker drops the event silently; that is intentional
// backpressure, not an error. Reports whether the event was accepted.
func (q *Queue) Enqueue(agentID, kind, description string) bool {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return false
	}
	if !q.cooldowns.TryAccept(agentID, q.cfg.Cooldown) {
		if q.metrics != nil {
			q.metrics.RecordDrop()
		}
		return false
	}

	item := WorkItem{
		ID:          uuid.NewString(),
		AgentID:     agentID,
		Kind:        kind,
		Description: description,
		EnqueuedAt:  time.Now(),
	}
	q.mu.Lock()
	q.items = append(q.items, item)
	start := !q.draining
	if start {
		q.draining = true
		q.wg.Add(1)
	}
	q.mu.Unlock()
	if start {
		go q.drain()
	}
	return true
}

// Depth reports how many accepted items are waiting.
func (q *Queue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// WaitIdle blocks until the current drain loop settles.
func (q *Queue) WaitIdle() {
	q.wg.Wait()
}

// Stop cancels in-flight work and waits for the drain loop to exit.
func (q *Queue) Stop() {
	q.cancel()
	q.wg.Wait()
}

func (q *Queue) drain() {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		if len(q.items) == 0 || q.ctx.Err() != nil {
			q.draining = false
			q.mu.Unlock()
			return
		}
		item := q.items[0]
		q.items = q.items[1:]
		q.mu.Unlock()

		ctx := ports.WithTrigger(q.ctx, ports.TriggerEvent)
		res := q.runner.Execute(ctx, item.AgentID)
		if res.Succeeded() {
			if q.metrics != nil {
				q.metrics.RecordSuccess(ports.TriggerEvent)
			}
			log.Printf("reaction: %s reacted to %s", item.AgentID, item.Kind)
		} else {
			if q.metrics != nil {
				q.metrics.RecordFailure(ports.TriggerEvent)
			}
			log.Printf("reaction: %s failed on %s: %v", item.AgentID, item.Kind, res.Err)
		}

		// Pacing only matters between items; after the last one the loop
		// should settle immediately.
		q.mu.Lock()
		remaining := len(q.items)
		q.mu.Unlock()
		if remaining == 0 {
			continue
		}
		select {
		case <-q.ctx.Done():
		case <-time.After(q.cfg.DrainDelay):
		}
	}
}
