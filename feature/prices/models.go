package prices

import "time"

// Snapshot is one observed market price for a card at a point in time.
type Snapshot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the card name the price belongs to.
	Name string `gorm:"index;size:255" json:"name"`

	// Set is the set code of the priced printing, when the feed carries one.
	Set string `gorm:"size:16" json:"set,omitempty"`

	// Foil indicates the price refers to a foil printing.
	Foil bool `json:"foil"`

	// Price is the observed market price.
	Price float64 `json:"price"`

	// Currency is the currency code of the price.
	Currency string `gorm:"size:8" json:"currency"`

	// CollectedAt is when the price was fetched.
	CollectedAt time.Time `gorm:"index" json:"collected_at"`
}

// TableName keeps the table name stable regardless of GORM pluralization.
func (Snapshot) TableName() string {
	return "price_snapshots"
}
