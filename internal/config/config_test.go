package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleYAML = `
server:
  addr: ":9090"
database:
  dsn: "host=localhost user=bm dbname=bm"
  migrations_dir: "migrations"
reasoning:
  provider: openai
  model: gpt-4o-mini
scheduler:
  tick_interval: 30s
  cooldown: 2m
  quota: 5
events:
  cooldown: 10s
world:
  locations: [Pravend, Sargot]
  economy:
    prosperity: 4000
    food_supply: 250
    tax_rate: 12
  relations:
    Battania: -30
agents:
  - id: lord-1
    name: Aldric
    clan: dey Cortain
  - id: player-1
    name: Hero
    clan: own
    player: true
memory_capacity: 8
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if cfg.Reasoning.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Reasoning.Provider)
	}
	if cfg.Scheduler.TickInterval != 30*time.Second || cfg.Scheduler.Quota != 5 {
		t.Errorf("scheduler config: %+v", cfg.Scheduler)
	}
	if len(cfg.Agents) != 2 || cfg.Agents[0].ID != "lord-1" {
		t.Errorf("agents: %+v", cfg.Agents)
	}
	if cfg.MemoryCap != 8 {
		t.Errorf("memory_capacity = %d", cfg.MemoryCap)
	}

	world := cfg.WorldConfig()
	if world.Economy.Prosperity != 4000 || world.Relations["Battania"] != -30 {
		t.Errorf("world config: %+v", world)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Reasoning.Provider != "scripted" {
		t.Errorf("default provider = %q", cfg.Reasoning.Provider)
	}

	// Empty world section falls back to the built-in world.
	world := cfg.WorldConfig()
	if len(world.Locations) == 0 {
		t.Error("default world has no locations")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BANNERMIND_ADDR", ":7070")
	t.Setenv("BANNERMIND_LLM_API_KEY", "secret")

	cfg, err := Load(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("env override lost: addr = %q", cfg.Server.Addr)
	}
	if cfg.Reasoning.APIKey != "secret" {
		t.Errorf("env override lost: api key = %q", cfg.Reasoning.APIKey)
	}
}

func TestLoad_BadFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeTempConfig(t, "server: [not a map")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
