package wantlist

import (
	"strings"
	"testing"

	"cardstock/core/recon"

	"github.com/stretchr/testify/assert"
)

func sampleResults() []recon.MatchResult {
	inventory := []recon.Listing{
		{
			Name:      "Lightning Bolt",
			Set:       "2ED",
			Condition: recon.ConditionNearMint,
			Language:  recon.LanguageEnglish,
			Quantity:  2,
			Price:     14.5,
			Location:  "K1-03",
		},
		{
			Name:      "Lightning Bolt",
			Set:       "3ED",
			Condition: recon.ConditionExcellent,
			Language:  recon.LanguageGerman,
			Foil:      true,
			Quantity:  1,
			Price:     9.9,
		},
	}
	wants := []recon.WantEntry{
		{Quantity: 4, Name: "Lightning Bolt"},
		{Quantity: 1, Name: "Shock"},
	}
	return recon.Match(inventory, wants)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(recon.Summarize(sampleResults()))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "Lightning Bolt")
	assert.Contains(t, lines[0], "PARTIALLY_AVAILABLE")
	assert.Contains(t, lines[0], "3/4")
	assert.Contains(t, lines[1], "Shock")
	assert.Contains(t, lines[1], "NOT_IN_STOCK")
	assert.Contains(t, out, "2 wants: 0 full, 1 partial, 1 not in stock (3/5 copies)")
}

func TestRenderPickingList(t *testing.T) {
	out := RenderPickingList(recon.BuildPickingList(sampleResults()), "EUR")

	assert.Contains(t, out, "Lightning Bolt (want 4, PARTIALLY_AVAILABLE)")
	assert.Contains(t, out, "K1-03: 2x 2ED NM English 14.50 EUR")
	assert.Contains(t, out, "location unknown: 1x 3ED EX German foil 9.90 EUR")
	assert.Contains(t, out, "Shock (want 1, NOT_IN_STOCK)")
	assert.Contains(t, out, "no stock")
}
