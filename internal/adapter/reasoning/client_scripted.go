package reasoning

import (
	"context"
	"fmt"

	"bannermind/internal/app/ports"
	"bannermind/internal/domain/mind"
)

// ScriptedClient produces deterministic decisions from simple rules over
// the perception. It needs no network and is the default when no API key
// is configured.
type ScriptedClient struct{}

func NewScriptedClient() ScriptedClient {
	return ScriptedClient{}
}

var _ ports.ReasoningClient = ScriptedClient{}

func (ScriptedClient) Reason(_ context.Context, agentID string, p mind.Perception, _ string) (string, error) {
	// Hostile neighbor takes priority over everything else.
	for faction, rel := range p.Relations {
		if rel <= -50 {
			return fmt.Sprintf(
				"THOUGHT: Relations with %s have collapsed; war is inevitable and striking first is better.\nACTION: DeclareWar\nDETAIL: target=%s",
				faction, faction,
			), nil
		}
	}

	if p.Economy.FoodSupply < 100 {
		return fmt.Sprintf(
			"THOUGHT: Granaries at %s are nearly empty; trade before the garrison starves.\nACTION: Trade\nDETAIL: good=grain, town=%s",
			p.Location, p.Location,
		), nil
	}

	if p.Economy.Prosperity > 5000 {
		return fmt.Sprintf(
			"THOUGHT: %s prospers and the coffers are full; time to raise fresh troops.\nACTION: Recruit\nDETAIL: town=%s",
			p.Location, p.Location,
		), nil
	}

	return fmt.Sprintf(
		"THOUGHT: Nothing presses on %s today; %s holds position.\nACTION: Wait\nDETAIL: duration=2h",
		p.Location, agentID,
	), nil
}
