// Package reasoning implements ReasoningClient against hosted LLM
// backends, plus a scripted variant for offline runs.
package reasoning

import (
	"fmt"
	"sort"
	"strings"

	"bannermind/internal/domain/mind"
)

const systemInstruction = `You are the mind of a lord in a medieval strategy world.
Decide what the lord does next. Answer in exactly this form:

THOUGHT: <one or two sentences of reasoning>
ACTION: <one action name>
DETAIL: <key=value parameters, comma separated, or leave empty>

Known actions: DeclareWar, MakePeace, Attack, Patrol, Trade, Recruit, Move, Wait.
If nothing is worth doing, answer ACTION: Wait.`

// BuildPrompt renders the perception and memory context into the user
// message sent to the model.
func BuildPrompt(agentID string, p mind.Perception, memoryContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s.\n\n", agentID)
	fmt.Fprintf(&b, "Current situation:\n")
	fmt.Fprintf(&b, "- Location: %s\n", p.Location)
	fmt.Fprintf(&b, "- Weather: %s\n", p.Weather)
	fmt.Fprintf(&b, "- Prosperity: %d\n", p.Economy.Prosperity)
	fmt.Fprintf(&b, "- Food supply: %d\n", p.Economy.FoodSupply)
	fmt.Fprintf(&b, "- Tax rate: %d%%\n", p.Economy.TaxRate)

	if len(p.Relations) > 0 {
		b.WriteString("- Faction relations:\n")
		factions := make([]string, 0, len(p.Relations))
		for f := range p.Relations {
			factions = append(factions, f)
		}
		sort.Strings(factions)
		for _, f := range factions {
			fmt.Fprintf(&b, "    %s: %d\n", f, p.Relations[f])
		}
	}

	fmt.Fprintf(&b, "\nRecent decisions:\n%s\n", memoryContext)
	b.WriteString("\nWhat do you do next?")
	return b.String()
}
