package scheduler

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"bannermind/internal/app/cooldown"
	"bannermind/internal/app/ports"
)

const (
	DefaultTickInterval    = time.Minute
	DefaultCooldown        = 5 * time.Minute
	DefaultQuota           = 3
	DefaultInterAgentDelay = 2 * time.Second
)

type Config struct {
	// TickInterval is the accumulated elapsed time that triggers one
	// selection-and-dispatch pass.
	TickInterval time.Duration
	// Cooldown is the scheduler's own window: an agent that triggered
	// within it (through any driver) is not selected.
	Cooldown time.Duration
	// Quota bounds how many agents think spontaneously per pass.
	Quota int
	// InterAgentDelay is the pause between sequential dispatches.
	InterAgentDelay time.Duration
	// Important partitions candidates into the priority pool. Defaults to
	// clan leaders.
	Important func(ports.AgentProfile) bool
}

// Scheduler periodically selects a bounded number of eligible agents and
// runs the decision workflow for each, importants first, sequentially, so
// spontaneous thinking never floods the reasoning backend.
type Scheduler struct {
	cfg       Config
	roster    ports.AgentRoster
	cooldowns *cooldown.Tracker
	runner    ports.WorkflowRunner
	metrics   ports.OrchestrationMetrics

	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	accumulated time.Duration
	rng         *rand.Rand

	passRunning atomic.Bool
	wg          sync.WaitGroup
}

func New(cfg Config, roster ports.AgentRoster, cooldowns *cooldown.Tracker, runner ports.WorkflowRunner, metrics ports.OrchestrationMetrics) *Scheduler {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultCooldown
	}
	if cfg.Quota <= 0 {
		cfg.Quota = DefaultQuota
	}
	if cfg.InterAgentDelay <= 0 {
		cfg.InterAgentDelay = DefaultInterAgentDelay
	}
	if cfg.Important == nil {
		cfg.Important = func(p ports.AgentProfile) bool { return p.Leader }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cfg:       cfg,
		roster:    roster,
		cooldowns: cooldowns,
		runner:    runner,
		metrics:   metrics,
		ctx:       ctx,
		cancel:    cancel,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithRand overrides the selection randomness. Test hook.
func (s *Scheduler) WithRand(rng *rand.Rand) *Scheduler {
	s.rng = rng
	return s
}

// Tick accumulates elapsed wall-clock time; once the tick interval is
// reached it resets the accumulator and starts one selection-and-dispatch
// pass in the background. A pass still running from a previous tick
// suppresses the new one; Tick itself never blocks the caller's clock.
func (s *Scheduler) Tick(elapsed time.Duration) {
	s.mu.Lock()
	s.accumulated += elapsed
	if s.accumulated < s.cfg.TickInterval {
		s.mu.Unlock()
		return
	}
	s.accumulated = 0
	s.mu.Unlock()

	if !s.passRunning.CompareAndSwap(false, true) {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.passRunning.Store(false)
		s.runPass(s.ctx)
	}()
}

// WaitIdle blocks until the current pass, if any, completes.
func (s *Scheduler) WaitIdle() {
	s.wg.Wait()
}

// Stop cancels any running pass and waits for it to exit.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) runPass(ctx context.Context) {
	candidates, err := s.roster.EligibleAgents(ctx)
	if err != nil {
		log.Printf("scheduler: list eligible agents: %v", err)
		return
	}

	var important, regular []ports.AgentProfile
	for _, p := range candidates {
		if s.cooldowns.ActiveWithin(p.ID, s.cfg.Cooldown) {
			continue
		}
		if s.cfg.Important(p) {
			important = append(important, p)
		} else {
			regular = append(regular, p)
		}
	}
	selected := s.draw(important, regular)

	for i, p := range selected {
		if ctx.Err() != nil {
			return
		}
		// Re-checked with a stamp: the event queue may have accepted this
		// agent between selection and dispatch.
		if !s.cooldowns.TryAccept(p.ID, s.cfg.Cooldown) {
			continue
		}
		res := s.runner.Execute(ports.WithTrigger(ctx, ports.TriggerScheduled), p.ID)
		if res.Succeeded() {
			if s.metrics != nil {
				s.metrics.RecordSuccess(ports.TriggerScheduled)
			}
			log.Printf("scheduler: %s acted spontaneously", p.ID)
		} else {
			if s.metrics != nil {
				s.metrics.RecordFailure(ports.TriggerScheduled)
			}
			log.Printf("scheduler: %s failed: %v", p.ID, res.Err)
		}
		if i < len(selected)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.cfg.InterAgentDelay):
			}
		}
	}
}

// draw picks up to Quota agents without replacement, exhausting the
// important pool before sampling the regular pool uniformly.
func (s *Scheduler) draw(important, regular []ports.AgentProfile) []ports.AgentProfile {
	s.mu.Lock()
	s.rng.Shuffle(len(important), func(i, j int) {
		important[i], important[j] = important[j], important[i]
	})
	s.rng.Shuffle(len(regular), func(i, j int) {
		regular[i], regular[j] = regular[j], regular[i]
	})
	s.mu.Unlock()

	selected := make([]ports.AgentProfile, 0, s.cfg.Quota)
	for _, p := range important {
		if len(selected) == s.cfg.Quota {
			return selected
		}
		selected = append(selected, p)
	}
	for _, p := range regular {
		if len(selected) == s.cfg.Quota {
			return selected
		}
		selected = append(selected, p)
	}
	return selected
}
