package recon

import "strings"

// Match reconciles a want-list against an inventory snapshot.
// It returns one MatchResult per want entry, in want-list order. Within a
// result, matched listings keep their inventory order.
//
// Matching is by card name only, case-insensitive, exact equality. A listing
// may satisfy any number of want entries; a want entry may match zero, one,
// or many listings. Both inputs may be empty.
//
// The function is pure and total: it never fails, never reorders its inputs,
// and yields identical output for identical input.
func Match(inventory []Listing, wants []WantEntry) []MatchResult {
	results := make([]MatchResult, 0, len(wants))

	for _, want := range wants {
		var matches []Listing
		available := 0

		for _, listing := range inventory {
			if !strings.EqualFold(listing.Name, want.Name) {
				continue
			}
			matches = append(matches, listing)
			// Quantities arrive sanitized, but a negative value must never
			// shrink the sum on behalf of other listings.
			if listing.Quantity > 0 {
				available += listing.Quantity
			}
		}

		results = append(results, MatchResult{
			Want:      want,
			Matches:   matches,
			Available: available,
			Status:    classify(len(matches), available, want.Quantity),
		})
	}

	return results
}

// classify derives the availability status from the match count, the summed
// available quantity and the desired quantity.
func classify(matched, available, wanted int) Status {
	switch {
	case matched == 0:
		return StatusNotInStock
	case available >= wanted:
		return StatusFullyAvailable
	default:
		return StatusPartiallyAvailable
	}
}
