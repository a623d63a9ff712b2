package mind

import "strings"

// Recognized line prefixes, matched case-insensitively. The reasoning
// backend is prompted to answer in this shape but is not trusted to.
const (
	prefixThought = "thought:"
	prefixAction  = "action:"
	prefixDetail  = "detail:"
)

// Parse turns raw reasoning text into a Decision. The parse is best-effort:
// malformed or missing lines degrade to a single Wait action, never an
// error. Only the first THOUGHT, ACTION and DETAIL lines are honored; later
// duplicates are ignored rather than merged.
func Parse(agentID, raw string) Decision {
	var thought, actionLine, detail string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)
		switch {
		case thought == "" && strings.HasPrefix(lower, prefixThought):
			thought = strings.TrimSpace(line[len(prefixThought):])
		case actionLine == "" && strings.HasPrefix(lower, prefixAction):
			actionLine = strings.TrimSpace(line[len(prefixAction):])
		case detail == "" && strings.HasPrefix(lower, prefixDetail):
			detail = strings.TrimSpace(line[len(prefixDetail):])
		}
	}

	reasoning := thought
	if reasoning == "" {
		reasoning = strings.TrimSpace(raw)
	}

	actionType := normalizeActionType(actionLine)
	if actionType == "" || strings.EqualFold(actionType, ActionWait) {
		return Decision{
			AgentID:   agentID,
			Reasoning: reasoning,
			Actions:   []Action{waitAction()},
		}
	}

	params := map[string]string{}
	if detail != "" {
		params["detail"] = detail
	}
	return Decision{
		AgentID:   agentID,
		Reasoning: reasoning,
		Actions:   []Action{{Type: actionType, Params: params}},
	}
}

// normalizeActionType keeps only the text before the first comma or space,
// guarding against backends that return verbose multi-word action phrases.
func normalizeActionType(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ", "); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSuffix(value, ",")
}

func waitAction() Action {
	return Action{
		Type:   ActionWait,
		Params: map[string]string{"duration": DefaultWaitDuration},
	}
}
