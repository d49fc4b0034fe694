package invoice

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cardstock/core/utils"
)

// ParseOrders reads an order export and groups its article rows into one
// draft per order ID, in first-appearance order. Rows without an order ID
// or article are dropped; a missing shipping field counts as zero, and the
// shipping of an order is taken from its first row.
//
// Expected columns: OrderID;Buyer;Email;Article;Quantity;Price;Shipping
// (semicolon- or comma-separated, locale decimals).
func ParseOrders(r io.Reader, currency string) ([]Draft, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read order export: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(content)))
	if line, _, found := strings.Cut(string(content), "\n"); found || line != "" {
		if strings.ContainsRune(line, ';') {
			reader.Comma = ';'
		}
	}
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse order export: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, label := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(label))] = i
	}
	get := func(record []string, label string) string {
		idx, ok := cols[label]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var order []string // order IDs in first-appearance order
	drafts := make(map[string]*Draft)

	for _, record := range records[1:] {
		orderID := get(record, "orderid")
		article := get(record, "article")
		if orderID == "" || article == "" {
			continue
		}

		price, err := utils.ParsePrice(get(record, "price"))
		if err != nil {
			continue
		}

		draft, ok := drafts[orderID]
		if !ok {
			shipping, err := utils.ParsePrice(get(record, "shipping"))
			if err != nil {
				shipping = 0
			}
			draft = &Draft{
				OrderID:  orderID,
				Buyer:    get(record, "buyer"),
				Email:    get(record, "email"),
				Shipping: shipping,
				Currency: currency,
			}
			drafts[orderID] = draft
			order = append(order, orderID)
		}

		draft.Lines = append(draft.Lines, Line{
			Description: article,
			Quantity:    utils.ParseQuantity(get(record, "quantity")),
			UnitPrice:   price,
		})
	}

	result := make([]Draft, 0, len(order))
	for _, id := range order {
		result = append(result, *drafts[id])
	}
	return result, nil
}
