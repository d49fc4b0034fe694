package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSummarize_Counts tests aggregate counters across mixed statuses.
func TestSummarize_Counts(t *testing.T) {
	inventory := []Listing{
		{Name: "Bolt", Quantity: 2},
		{Name: "Bolt", Quantity: 3},
		{Name: "Shock", Quantity: 1},
	}
	wants := []WantEntry{
		{Quantity: 4, Name: "Bolt"},
		{Quantity: 2, Name: "Shock"},
		{Quantity: 1, Name: "Counterspell"},
	}

	summary := Summarize(Match(inventory, wants))

	assert.Equal(t, 3, summary.TotalWants)
	assert.Equal(t, 1, summary.FullyAvailable)
	assert.Equal(t, 1, summary.PartiallyAvailable)
	assert.Equal(t, 1, summary.NotInStock)
	assert.Equal(t, 7, summary.WantedTotal)
	assert.Equal(t, 6, summary.AvailableTotal)

	assert.Len(t, summary.Rows, 3)
	assert.Equal(t, SummaryRow{Name: "Bolt", Wanted: 4, Available: 5, Status: StatusFullyAvailable}, summary.Rows[0])
	assert.Equal(t, SummaryRow{Name: "Shock", Wanted: 2, Available: 1, Status: StatusPartiallyAvailable}, summary.Rows[1])
	assert.Equal(t, SummaryRow{Name: "Counterspell", Wanted: 1, Available: 0, Status: StatusNotInStock}, summary.Rows[2])
}

// TestSummarize_Empty tests the summary of an empty run.
func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, 0, summary.TotalWants)
	assert.Empty(t, summary.Rows)
}

// TestBuildPickingList_RowsPerListing tests that each matched listing becomes
// its own picking row with the variant breakdown intact.
func TestBuildPickingList_RowsPerListing(t *testing.T) {
	inventory := []Listing{
		{
			Name:      "Bolt",
			Set:       "2ED",
			Quantity:  2,
			Condition: ConditionExcellent,
			Language:  LanguageGerman,
			Location:  "K1-03",
			Price:     12.0,
		},
		{
			Name:      "Bolt",
			Set:       "3ED",
			Quantity:  1,
			Condition: ConditionNearMint,
			Language:  LanguageEnglish,
			Foil:      true,
			Location:  "K1-03",
			Price:     25.5,
		},
	}

	groups := BuildPickingList(Match(inventory, []WantEntry{{Quantity: 3, Name: "Bolt"}}))
	assert.Len(t, groups, 1)

	group := groups[0]
	assert.Equal(t, "Bolt", group.Name)
	assert.Equal(t, 3, group.Wanted)
	assert.Equal(t, StatusFullyAvailable, group.Status)

	// Same location, different condition/foil: two separate rows.
	assert.Len(t, group.Rows, 2)
	assert.Equal(t, ConditionExcellent, group.Rows[0].Condition)
	assert.False(t, group.Rows[0].Foil)
	assert.Equal(t, ConditionNearMint, group.Rows[1].Condition)
	assert.True(t, group.Rows[1].Foil)
	assert.Equal(t, 25.5, group.Rows[1].Price)
}

// TestBuildPickingList_UnknownLocation tests the placeholder for listings
// without a storage location.
func TestBuildPickingList_UnknownLocation(t *testing.T) {
	inventory := []Listing{{Name: "Bolt", Quantity: 1}}

	groups := BuildPickingList(Match(inventory, []WantEntry{{Quantity: 1, Name: "Bolt"}}))
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0].Rows, 1)
	assert.Equal(t, LocationUnknown, groups[0].Rows[0].Location)
}

// TestBuildPickingList_EmptyGroupKept tests that entries without stock stay
// visible as empty groups.
func TestBuildPickingList_EmptyGroupKept(t *testing.T) {
	groups := BuildPickingList(Match(nil, []WantEntry{{Quantity: 2, Name: "Shock"}}))
	assert.Len(t, groups, 1)
	assert.Equal(t, StatusNotInStock, groups[0].Status)
	assert.Empty(t, groups[0].Rows)
}
