// Package config loads server configuration from a YAML file, with
// environment variables taking precedence for deploy-time secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	staticroster "bannermind/internal/adapter/roster/static"
	staticworld "bannermind/internal/adapter/world/static"
	"bannermind/internal/domain/mind"
)

const EnvConfigPath = "BANNERMIND_CONFIG"

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type DatabaseConfig struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

type ReasoningConfig struct {
	Provider string `yaml:"provider"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type SchedulerConfig struct {
	TickInterval    time.Duration `yaml:"tick_interval"`
	Cooldown        time.Duration `yaml:"cooldown"`
	Quota           int           `yaml:"quota"`
	InterAgentDelay time.Duration `yaml:"inter_agent_delay"`
}

type EventsConfig struct {
	Cooldown   time.Duration `yaml:"cooldown"`
	DrainDelay time.Duration `yaml:"drain_delay"`
}

type WorldConfig struct {
	Locations []string       `yaml:"locations"`
	Weathers  []string       `yaml:"weathers"`
	Economy   EconomyConfig  `yaml:"economy"`
	Relations map[string]int `yaml:"relations"`
}

type EconomyConfig struct {
	Prosperity int `yaml:"prosperity"`
	FoodSupply int `yaml:"food_supply"`
	TaxRate    int `yaml:"tax_rate"`
}

type Config struct {
	Server    ServerConfig         `yaml:"server"`
	Database  DatabaseConfig       `yaml:"database"`
	Reasoning ReasoningConfig      `yaml:"reasoning"`
	Scheduler SchedulerConfig      `yaml:"scheduler"`
	Events    EventsConfig         `yaml:"events"`
	World     WorldConfig          `yaml:"world"`
	Agents    []staticroster.Agent `yaml:"agents"`
	MemoryCap int                  `yaml:"memory_capacity"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Reasoning: ReasoningConfig{
			Provider: "scripted",
		},
	}
}

// Load reads the YAML file at path into the defaults. An empty path
// returns the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return applyEnv(cfg), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return applyEnv(cfg), nil
}

// LoadFromEnv resolves the config path from BANNERMIND_CONFIG.
func LoadFromEnv() (Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// applyEnv overrides file values with environment variables so secrets
// stay out of config files.
func applyEnv(cfg Config) Config {
	if v := os.Getenv("BANNERMIND_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("BANNERMIND_DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("BANNERMIND_LLM_PROVIDER"); v != "" {
		cfg.Reasoning.Provider = v
	}
	if v := os.Getenv("BANNERMIND_LLM_BASE_URL"); v != "" {
		cfg.Reasoning.BaseURL = v
	}
	if v := os.Getenv("BANNERMIND_LLM_API_KEY"); v != "" {
		cfg.Reasoning.APIKey = v
	}
	if v := os.Getenv("BANNERMIND_LLM_MODEL"); v != "" {
		cfg.Reasoning.Model = v
	}
	return cfg
}

// WorldConfig converts the YAML shape into the world provider's config.
func (c Config) WorldConfig() staticworld.Config {
	out := staticworld.Config{
		Locations: c.World.Locations,
		Weathers:  c.World.Weathers,
		Economy: mind.EconomySummary{
			Prosperity: c.World.Economy.Prosperity,
			FoodSupply: c.World.Economy.FoodSupply,
			TaxRate:    c.World.Economy.TaxRate,
		},
		Relations: c.World.Relations,
	}
	if out.Economy == (mind.EconomySummary{}) && len(out.Locations) == 0 {
		return staticworld.DefaultConfig()
	}
	return out
}
