package main

import (
	"context"
	"log"
	"time"

	executorsim "bannermind/internal/adapter/executor/sim"
	httpadapter "bannermind/internal/adapter/http"
	metricsinmem "bannermind/internal/adapter/metrics/inmemory"
	"bannermind/internal/adapter/reasoning"
	gormrepo "bannermind/internal/adapter/repo/gorm"
	memrepo "bannermind/internal/adapter/repo/memory"
	staticroster "bannermind/internal/adapter/roster/static"
	staticworld "bannermind/internal/adapter/world/static"
	"bannermind/internal/app/cooldown"
	"bannermind/internal/app/memory"
	"bannermind/internal/app/ports"
	"bannermind/internal/app/reaction"
	"bannermind/internal/app/replay"
	"bannermind/internal/app/scheduler"
	"bannermind/internal/app/status"
	"bannermind/internal/app/workflow"
	"bannermind/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	decisionLog := buildDecisionLog(cfg)

	world := staticworld.NewProvider(cfg.WorldConfig())
	executor := executorsim.NewExecutor(world)
	memStore := memory.NewStore(cfg.MemoryCap)

	reasoner, err := reasoning.New(context.Background(), reasoning.Options{
		Provider: cfg.Reasoning.Provider,
		BaseURL:  cfg.Reasoning.BaseURL,
		APIKey:   cfg.Reasoning.APIKey,
		Model:    cfg.Reasoning.Model,
	})
	if err != nil {
		log.Fatalf("build reasoning client: %v", err)
	}

	workflowUC := workflow.UseCase{
		Sensor:      world,
		Reasoner:    reasoner,
		Executor:    executor,
		Memory:      memStore,
		Gate:        workflow.NewGate(),
		DecisionLog: decisionLog,
		World:       world,
		Now:         time.Now,
	}

	kpiRecorder := metricsinmem.NewRecorder()

	// One tracker for both drivers: event reactions must be visible to the
	// scheduler's cooldown filter, or a lord that just reacted gets
	// re-dispatched by the next proactive pass.
	cooldowns := cooldown.NewTracker()

	eventCfg := reaction.Config{
		Cooldown:   cfg.Events.Cooldown,
		DrainDelay: cfg.Events.DrainDelay,
	}
	queue := reaction.NewQueue(eventCfg, cooldowns, workflowUC, kpiRecorder)
	defer queue.Stop()

	roster := staticroster.NewRoster(cfg.Agents)
	schedCfg := scheduler.Config{
		TickInterval:    cfg.Scheduler.TickInterval,
		Cooldown:        cfg.Scheduler.Cooldown,
		Quota:           cfg.Scheduler.Quota,
		InterAgentDelay: cfg.Scheduler.InterAgentDelay,
	}
	sched := scheduler.New(schedCfg, roster, cooldowns, workflowUC, kpiRecorder)
	defer sched.Stop()
	go runTicker(sched)

	h := httpadapter.Handler{
		WorkflowUC: workflowUC,
		StatusUC: status.UseCase{
			Memory:        memStore,
			Cooldowns:     cooldowns,
			Queue:         queue,
			EventCooldown: eventCfg.Cooldown,
		},
		ReplayUC: replay.UseCase{Decisions: decisionLog},
		Events:   queue,
		Metrics:  kpiRecorder,
		KPI:      kpiRecorder,
	}

	s := httpadapter.NewServer(cfg.Server.Addr, h)
	log.Printf("bannermind server listening on %s (reasoning: %s)", cfg.Server.Addr, cfg.Reasoning.Provider)
	s.Spin()
}

func buildDecisionLog(cfg config.Config) ports.DecisionLogRepository {
	if cfg.Database.DSN == "" {
		log.Println("no database configured, decision log kept in memory")
		return memrepo.NewDecisionLogRepo()
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if dir := cfg.Database.MigrationsDir; dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.Fatalf("apply migrations: %v", err)
		}
	}
	return gormrepo.NewDecisionLogRepo(db)
}

// runTicker feeds wall-clock time into the scheduler. The scheduler only
// accumulates; pass timing stays its decision.
func runTicker(sched *scheduler.Scheduler) {
	const step = 5 * time.Second
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	for range ticker.C {
		sched.Tick(step)
	}
}
