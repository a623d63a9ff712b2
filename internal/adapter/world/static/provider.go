// Package staticworld serves perception snapshots from a fixed world
// description. It stands in for a live game connection: deterministic per
// agent, so the same lord always perceives the same region.
package staticworld

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"
)

type Config struct {
	Locations []string
	Weathers  []string
	Economy   mind.EconomySummary
	Relations map[string]int
}

func DefaultConfig() Config {
	return Config{
		Locations: []string{"Pravend", "Sargot", "Galend", "Ocs Hall", "Marunath"},
		Weathers:  []string{"clear", "overcast", "rain", "fog"},
		Economy:   mind.EconomySummary{Prosperity: 3500, FoodSupply: 400, TaxRate: 10},
		Relations: map[string]int{
			"Vlandia":  60,
			"Battania": -20,
			"Sturgia":  0,
		},
	}
}

type Provider struct {
	cfg   Config
	ready atomic.Bool

	mu        sync.RWMutex
	relations map[string]int

	Now func() time.Time
}

func NewProvider(cfg Config) *Provider {
	if len(cfg.Locations) == 0 {
		cfg.Locations = DefaultConfig().Locations
	}
	if len(cfg.Weathers) == 0 {
		cfg.Weathers = DefaultConfig().Weathers
	}
	relations := make(map[string]int, len(cfg.Relations))
	for faction, rel := range cfg.Relations {
		relations[faction] = rel
	}
	p := &Provider{cfg: cfg, relations: relations, Now: time.Now}
	p.ready.Store(true)
	return p
}

var (
	_ ports.Sensor    = (*Provider)(nil)
	_ ports.WorldGate = (*Provider)(nil)
)

func (p *Provider) Perceive(ctx context.Context, agentID string) (mind.Perception, error) {
	if err := ctx.Err(); err != nil {
		return mind.Perception{}, err
	}

	now := p.Now()

	p.mu.RLock()
	relations := make(map[string]int, len(p.relations))
	for faction, rel := range p.relations {
		relations[faction] = rel
	}
	p.mu.RUnlock()

	return mind.Perception{
		Timestamp: now,
		Location:  p.cfg.Locations[hashString(agentID)%uint32(len(p.cfg.Locations))],
		Weather:   p.cfg.Weathers[now.Hour()%len(p.cfg.Weathers)],
		Economy:   p.cfg.Economy,
		Relations: relations,
	}, nil
}

func (p *Provider) Ready() bool {
	return p.ready.Load()
}

// SetReady flips world availability, e.g. while the host reloads a save.
func (p *Provider) SetReady(ready bool) {
	p.ready.Store(ready)
}

// AdjustRelation shifts the standing with a faction by delta, so executed
// actions feed back into later perceptions.
func (p *Provider) AdjustRelation(faction string, delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.relations[faction] += delta
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
