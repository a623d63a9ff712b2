package reasoning

import (
	"strings"
	"testing"

	"bannermind/internal/domain/mind"
)

func TestBuildPrompt(t *testing.T) {
	p := mind.Perception{
		Location: "Pravend",
		Weather:  "rain",
		Economy:  mind.EconomySummary{Prosperity: 4200, FoodSupply: 310, TaxRate: 15},
		Relations: map[string]int{
			"Vlandia":  80,
			"Battania": -40,
		},
	}

	got := BuildPrompt("Lord_Aldric_Vlandia", p, "No prior decisions recorded.")

	for _, want := range []string{
		"You are Lord_Aldric_Vlandia.",
		"Location: Pravend",
		"Weather: rain",
		"Prosperity: 4200",
		"Tax rate: 15%",
		"Battania: -40",
		"Vlandia: 80",
		"No prior decisions recorded.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}

	// Relations render in stable alphabetical order.
	if strings.Index(got, "Battania") > strings.Index(got, "Vlandia") {
		t.Error("faction relations are not sorted")
	}
}
