package mind

import "testing"

func TestParse_FullDecision(t *testing.T) {
	raw := "THOUGHT: Empire is hostile.\nACTION: DeclareWar\nDETAIL: Empire"
	d := Parse("lord-1", raw)

	if d.AgentID != "lord-1" {
		t.Fatalf("agent id = %q", d.AgentID)
	}
	if d.Reasoning != "Empire is hostile." {
		t.Fatalf("reasoning = %q", d.Reasoning)
	}
	if len(d.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(d.Actions))
	}
	if d.Actions[0].Type != "DeclareWar" {
		t.Fatalf("action type = %q", d.Actions[0].Type)
	}
	if d.Actions[0].Params["detail"] != "Empire" {
		t.Fatalf("detail param = %q", d.Actions[0].Params["detail"])
	}
}

func TestParse_TruncatesActionAtFirstComma(t *testing.T) {
	d := Parse("lord-1", "ACTION: Attack, the caravan near Pravend")
	if got := d.Actions[0].Type; got != "Attack" {
		t.Fatalf("action type = %q, want Attack", got)
	}
}

func TestParse_TruncatesActionAtFirstSpace(t *testing.T) {
	d := Parse("lord-1", "ACTION: Trade grain with Battania")
	if got := d.Actions[0].Type; got != "Trade" {
		t.Fatalf("action type = %q, want Trade", got)
	}
}

func TestParse_MissingActionDefaultsToWait(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"freeform", "The realm is at peace, nothing to do."},
		{"thought only", "THOUGHT: All is well."},
		{"explicit wait", "THOUGHT: Rest.\nACTION: Wait"},
		{"wait lowercase", "ACTION: wait, until spring"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Parse("lord-1", tc.raw)
			if len(d.Actions) != 1 {
				t.Fatalf("expected exactly 1 action, got %d", len(d.Actions))
			}
			a := d.Actions[0]
			if a.Type != ActionWait {
				t.Fatalf("action type = %q, want %q", a.Type, ActionWait)
			}
			if a.Params["duration"] != DefaultWaitDuration {
				t.Fatalf("duration param = %q", a.Params["duration"])
			}
		})
	}
}

func TestParse_FirstActionLineWins(t *testing.T) {
	raw := "ACTION: Patrol\nACTION: DeclareWar\nDETAIL: the northern road"
	d := Parse("lord-1", raw)
	if len(d.Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(d.Actions))
	}
	if d.Actions[0].Type != "Patrol" {
		t.Fatalf("action type = %q, want Patrol", d.Actions[0].Type)
	}
}

func TestParse_CaseInsensitivePrefixes(t *testing.T) {
	d := Parse("lord-1", "thought: raiders sighted\naction: Attack\ndetail: raiders")
	if d.Reasoning != "raiders sighted" {
		t.Fatalf("reasoning = %q", d.Reasoning)
	}
	if d.Actions[0].Type != "Attack" {
		t.Fatalf("action type = %q", d.Actions[0].Type)
	}
}

func TestParse_FreeformTextBecomesReasoning(t *testing.T) {
	d := Parse("lord-1", "  I shall bide my time.  ")
	if d.Reasoning != "I shall bide my time." {
		t.Fatalf("reasoning = %q", d.Reasoning)
	}
}
