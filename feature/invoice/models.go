package invoice

// Line is one article position on an invoice draft.
type Line struct {
	// Description is the article text as exported.
	Description string `json:"description"`

	// Quantity is the number of units sold.
	Quantity int `json:"quantity"`

	// UnitPrice is the price per unit.
	UnitPrice float64 `json:"unit_price"`
}

// Draft is one invoice ready for submission, grouped from the article rows
// of a single order.
type Draft struct {
	// OrderID is the order reference from the export.
	OrderID string `json:"order_id"`

	// Buyer is the buyer's display name.
	Buyer string `json:"buyer"`

	// Email is the buyer's contact address.
	Email string `json:"email"`

	// Lines holds the article positions in export order.
	Lines []Line `json:"lines"`

	// Shipping is the shipping cost for the order.
	Shipping float64 `json:"shipping"`

	// Currency is the currency code all amounts are denominated in.
	Currency string `json:"currency"`
}

// Total returns the draft total: article positions plus shipping.
func (d *Draft) Total() float64 {
	total := d.Shipping
	for _, line := range d.Lines {
		total += float64(line.Quantity) * line.UnitPrice
	}
	return total
}

// SubmitOptions controls submission behavior.
type SubmitOptions struct {
	// DryRun prevents any request from being sent if true.
	DryRun bool

	// Confirmed indicates the user has confirmed submission.
	// If false, nothing is sent regardless of DryRun.
	Confirmed bool
}
