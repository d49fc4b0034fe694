package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bolt(qty int) Listing {
	return Listing{
		Name:      "Lightning Bolt",
		Set:       "2ED",
		Condition: ConditionNearMint,
		Language:  LanguageEnglish,
		Quantity:  qty,
		Price:     14.5,
	}
}

// TestMatch_EmptyInventory tests that every want resolves to NOT_IN_STOCK
// when there is no stock at all.
func TestMatch_EmptyInventory(t *testing.T) {
	wants := []WantEntry{
		{Quantity: 1, Name: "Lightning Bolt"},
		{Quantity: 4, Name: "Shock"},
	}

	results := Match(nil, wants)
	assert.Len(t, results, 2)

	for _, result := range results {
		assert.Equal(t, StatusNotInStock, result.Status)
		assert.Empty(t, result.Matches)
		assert.Equal(t, 0, result.Available)
	}
}

// TestMatch_EmptyWants tests that an empty want-list yields an empty result.
func TestMatch_EmptyWants(t *testing.T) {
	results := Match([]Listing{bolt(2)}, nil)
	assert.Empty(t, results)
}

// TestMatch_WantOrderPreserved tests that results come back in want-list
// order, one per entry.
func TestMatch_WantOrderPreserved(t *testing.T) {
	wants := []WantEntry{
		{Quantity: 1, Name: "Shock"},
		{Quantity: 2, Name: "Lightning Bolt"},
		{Quantity: 3, Name: "Counterspell"},
	}

	results := Match([]Listing{bolt(1)}, wants)
	assert.Len(t, results, len(wants))
	for i, result := range results {
		assert.Equal(t, wants[i], result.Want)
	}
}

// TestMatch_CaseInsensitive tests that name matching ignores case.
func TestMatch_CaseInsensitive(t *testing.T) {
	inventory := []Listing{bolt(3)}
	wants := []WantEntry{{Quantity: 1, Name: "lightning bolt"}}

	results := Match(inventory, wants)
	assert.Len(t, results, 1)
	assert.Equal(t, StatusFullyAvailable, results[0].Status)
	assert.Len(t, results[0].Matches, 1)
	assert.Equal(t, "Lightning Bolt", results[0].Matches[0].Name)
}

// TestMatch_Classification tests the status classification against summed
// quantities across variant rows.
func TestMatch_Classification(t *testing.T) {
	inventory := []Listing{
		{Name: "Bolt", Quantity: 2, Location: "K1-03"},
		{Name: "Brainstorm", Quantity: 4},
		{Name: "Bolt", Quantity: 3, Foil: true},
	}

	tests := []struct {
		name          string
		want          WantEntry
		wantStatus    Status
		wantAvailable int
		wantMatches   int
	}{
		{
			name:          "fully available across variants",
			want:          WantEntry{Quantity: 4, Name: "Bolt"},
			wantStatus:    StatusFullyAvailable,
			wantAvailable: 5,
			wantMatches:   2,
		},
		{
			name:          "exact quantity is fully available",
			want:          WantEntry{Quantity: 5, Name: "Bolt"},
			wantStatus:    StatusFullyAvailable,
			wantAvailable: 5,
			wantMatches:   2,
		},
		{
			name:          "partially available",
			want:          WantEntry{Quantity: 10, Name: "Bolt"},
			wantStatus:    StatusPartiallyAvailable,
			wantAvailable: 5,
			wantMatches:   2,
		},
		{
			name:        "not in stock",
			want:        WantEntry{Quantity: 1, Name: "Shock"},
			wantStatus:  StatusNotInStock,
			wantMatches: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Match(inventory, []WantEntry{tt.want})
			assert.Len(t, results, 1)
			assert.Equal(t, tt.wantStatus, results[0].Status)
			assert.Equal(t, tt.wantAvailable, results[0].Available)
			assert.Len(t, results[0].Matches, tt.wantMatches)
		})
	}
}

// TestMatch_InventoryOrderPreserved tests that matched listings keep their
// relative inventory order.
func TestMatch_InventoryOrderPreserved(t *testing.T) {
	inventory := []Listing{
		{Name: "Bolt", Quantity: 1, Location: "A"},
		{Name: "Shock", Quantity: 9},
		{Name: "Bolt", Quantity: 2, Location: "B"},
		{Name: "Bolt", Quantity: 3, Location: "C"},
	}

	results := Match(inventory, []WantEntry{{Quantity: 6, Name: "bolt"}})
	assert.Len(t, results, 1)

	locations := make([]string, 0, len(results[0].Matches))
	for _, m := range results[0].Matches {
		locations = append(locations, m.Location)
	}
	assert.Equal(t, []string{"A", "B", "C"}, locations)
}

// TestMatch_ZeroQuantityListing tests that a zero-quantity row still matches
// but contributes nothing to availability.
func TestMatch_ZeroQuantityListing(t *testing.T) {
	inventory := []Listing{{Name: "Bolt", Quantity: 0}}

	results := Match(inventory, []WantEntry{{Quantity: 1, Name: "Bolt"}})
	assert.Len(t, results, 1)
	assert.Len(t, results[0].Matches, 1)
	assert.Equal(t, 0, results[0].Available)
	assert.Equal(t, StatusPartiallyAvailable, results[0].Status)
}

// TestMatch_NegativeQuantityIgnoredInSum tests that a negative quantity does
// not shrink the availability contributed by other rows.
func TestMatch_NegativeQuantityIgnoredInSum(t *testing.T) {
	inventory := []Listing{
		{Name: "Bolt", Quantity: -3},
		{Name: "Bolt", Quantity: 4},
	}

	results := Match(inventory, []WantEntry{{Quantity: 4, Name: "Bolt"}})
	assert.Equal(t, 4, results[0].Available)
	assert.Equal(t, StatusFullyAvailable, results[0].Status)
}

// TestMatch_Idempotent tests that two runs over identical input produce
// deep-equal output.
func TestMatch_Idempotent(t *testing.T) {
	inventory := []Listing{
		bolt(2),
		{Name: "Shock", Quantity: 1, Language: LanguageGerman},
		bolt(1),
	}
	wants := []WantEntry{
		{Quantity: 4, Name: "Lightning Bolt"},
		{Quantity: 1, Name: "shock"},
	}

	first := Match(inventory, wants)
	second := Match(inventory, wants)
	assert.Equal(t, first, second)
}

// TestMatch_SharedListingAcrossWants tests that duplicate want entries each
// see the full set of matching listings.
func TestMatch_SharedListingAcrossWants(t *testing.T) {
	inventory := []Listing{bolt(2)}
	wants := []WantEntry{
		{Quantity: 1, Name: "Lightning Bolt"},
		{Quantity: 2, Name: "LIGHTNING BOLT"},
	}

	results := Match(inventory, wants)
	assert.Len(t, results, 2)
	assert.Equal(t, StatusFullyAvailable, results[0].Status)
	assert.Equal(t, StatusFullyAvailable, results[1].Status)
	assert.Equal(t, 2, results[0].Available)
	assert.Equal(t, 2, results[1].Available)
}
