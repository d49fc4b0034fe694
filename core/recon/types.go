package recon

// Condition is the grading of a listing, from mint to poor.
// The values follow the common card-market grading scale.
type Condition string

const (
	ConditionMint       Condition = "MT"
	ConditionNearMint   Condition = "NM"
	ConditionExcellent  Condition = "EX"
	ConditionGood       Condition = "GD"
	ConditionLightPlay  Condition = "LP"
	ConditionPlayed     Condition = "PL"
	ConditionPoor       Condition = "PO"
)

// Language is the print language of a listing.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageGerman  Language = "German"
	LanguageSpanish Language = "Spanish"
	LanguageFrench  Language = "French"
	LanguageItalian Language = "Italian"
)

// Languages lists all supported print languages.
var Languages = []Language{
	LanguageEnglish,
	LanguageGerman,
	LanguageSpanish,
	LanguageFrench,
	LanguageItalian,
}

// Listing is one sellable unit of a card variant from an inventory snapshot.
// Instances are created once when the snapshot is loaded and never mutated.
type Listing struct {
	// Name is the display name of the card.
	Name string `json:"name"`

	// Set is the set code the printing belongs to.
	Set string `json:"set"`

	// Number is the collector number within the set.
	Number string `json:"number"`

	// Condition is the enumerated grade of this copy.
	Condition Condition `json:"condition"`

	// Language is the print language.
	Language Language `json:"language"`

	// Foil indicates a foil printing.
	Foil bool `json:"foil"`

	// Signed indicates a signed copy.
	Signed bool `json:"signed"`

	// Quantity is the number of copies available. The snapshot loader
	// sanitizes this to a non-negative integer; an unparsable quantity
	// arrives here as zero.
	Quantity int `json:"quantity"`

	// Price is the unit price, already normalized from its locale form.
	Price float64 `json:"price"`

	// Location is the physical storage location. Empty when unknown.
	Location string `json:"location,omitempty"`

	// Comment is an optional free-text note on the listing.
	Comment string `json:"comment,omitempty"`
}

// WantEntry is one line of a want-list: a desired card name and a target
// quantity.
type WantEntry struct {
	// Quantity is the desired number of copies. Always positive; the
	// want-list parser drops lines that do not carry one.
	Quantity int `json:"quantity"`

	// Name is the desired card name.
	Name string `json:"name"`
}

// Status classifies the availability of a want entry against the inventory.
type Status string

const (
	// StatusNotInStock means no listing matched the want entry.
	StatusNotInStock Status = "NOT_IN_STOCK"

	// StatusPartiallyAvailable means some copies matched, fewer than wanted.
	StatusPartiallyAvailable Status = "PARTIALLY_AVAILABLE"

	// StatusFullyAvailable means the matched quantity covers the want.
	StatusFullyAvailable Status = "FULLY_AVAILABLE"
)

// MatchResult is the reconciliation output for a single want entry.
type MatchResult struct {
	// Want is the originating want entry.
	Want WantEntry `json:"want"`

	// Matches holds every listing whose name matched, in inventory order.
	Matches []Listing `json:"matches"`

	// Available is the summed quantity across all matched listings.
	Available int `json:"available"`

	// Status is derived from Available, Want.Quantity and len(Matches).
	Status Status `json:"status"`
}
