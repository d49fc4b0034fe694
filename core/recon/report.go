package recon

// LocationUnknown is the placeholder shown for listings without a storage
// location. Such listings still count towards availability.
const LocationUnknown = "location unknown"

// SummaryRow is the one-line summary for a single want entry.
type SummaryRow struct {
	// Name is the wanted card name as written on the want-list.
	Name string `json:"name"`

	// Wanted is the desired quantity.
	Wanted int `json:"wanted"`

	// Available is the summed quantity across matched listings.
	Available int `json:"available"`

	// Status is the availability classification.
	Status Status `json:"status"`
}

// Summary aggregates a reconciliation run for the summary view.
type Summary struct {
	// Rows contains one entry per want-list line, in want-list order.
	Rows []SummaryRow `json:"rows"`

	// TotalWants is the number of want entries reconciled.
	TotalWants int `json:"total_wants"`

	// FullyAvailable counts entries whose want is covered by stock.
	FullyAvailable int `json:"fully_available"`

	// PartiallyAvailable counts entries with some but not enough stock.
	PartiallyAvailable int `json:"partially_available"`

	// NotInStock counts entries with no matching listing at all.
	NotInStock int `json:"not_in_stock"`

	// WantedTotal is the sum of desired quantities across all entries.
	WantedTotal int `json:"wanted_total"`

	// AvailableTotal is the sum of available quantities across all entries.
	AvailableTotal int `json:"available_total"`
}

// Summarize builds the summary view from a sequence of match results.
func Summarize(results []MatchResult) Summary {
	summary := Summary{
		Rows:       make([]SummaryRow, 0, len(results)),
		TotalWants: len(results),
	}

	for _, result := range results {
		summary.Rows = append(summary.Rows, SummaryRow{
			Name:      result.Want.Name,
			Wanted:    result.Want.Quantity,
			Available: result.Available,
			Status:    result.Status,
		})

		summary.WantedTotal += result.Want.Quantity
		summary.AvailableTotal += result.Available

		switch result.Status {
		case StatusFullyAvailable:
			summary.FullyAvailable++
		case StatusPartiallyAvailable:
			summary.PartiallyAvailable++
		case StatusNotInStock:
			summary.NotInStock++
		}
	}

	return summary
}

// PickingRow is one physical copy group to pull for an order: a single
// matched listing with the fields a picker needs at the shelf.
type PickingRow struct {
	// Location is the storage location, or LocationUnknown when the
	// listing carries none.
	Location string `json:"location"`

	// Quantity is the number of copies available at this listing.
	Quantity int `json:"quantity"`

	// Set is the set code of the printing.
	Set string `json:"set"`

	// Condition is the grade of the copies.
	Condition Condition `json:"condition"`

	// Language is the print language.
	Language Language `json:"language"`

	// Foil indicates a foil printing.
	Foil bool `json:"foil"`

	// Signed indicates a signed copy.
	Signed bool `json:"signed"`

	// Price is the unit price.
	Price float64 `json:"price"`
}

// PickingGroup collects the picking rows for one want entry.
type PickingGroup struct {
	// Name is the wanted card name.
	Name string `json:"name"`

	// Wanted is the desired quantity.
	Wanted int `json:"wanted"`

	// Status is the availability classification for the entry.
	Status Status `json:"status"`

	// Rows holds one row per matched listing, in inventory order.
	// Listings that share a location but differ in condition or foil stay
	// separate rows; merging would lose the variant breakdown.
	Rows []PickingRow `json:"rows"`
}

// BuildPickingList shapes match results into the fulfillment-oriented
// picking view: one group per want entry, one row per matched listing.
// Entries with no matches are kept as empty groups so a picker sees what
// could not be pulled.
func BuildPickingList(results []MatchResult) []PickingGroup {
	groups := make([]PickingGroup, 0, len(results))

	for _, result := range results {
		group := PickingGroup{
			Name:   result.Want.Name,
			Wanted: result.Want.Quantity,
			Status: result.Status,
			Rows:   make([]PickingRow, 0, len(result.Matches)),
		}

		for _, listing := range result.Matches {
			location := listing.Location
			if location == "" {
				location = LocationUnknown
			}
			group.Rows = append(group.Rows, PickingRow{
				Location:  location,
				Quantity:  listing.Quantity,
				Set:       listing.Set,
				Condition: listing.Condition,
				Language:  listing.Language,
				Foil:      listing.Foil,
				Signed:    listing.Signed,
				Price:     listing.Price,
			})
		}

		groups = append(groups, group)
	}

	return groups
}
