package wantlist

import (
	"fmt"
	"strings"

	"cardstock/core/recon"
)

// RenderSummary formats the summary view as plain text: one line per want
// entry showing wanted vs. available totals and status, plus a footer with
// the aggregate counts.
func RenderSummary(summary recon.Summary) string {
	var b strings.Builder

	for _, row := range summary.Rows {
		fmt.Fprintf(&b, "%-12s %3d/%-3d %s\n", row.Status, row.Available, row.Wanted, row.Name)
	}

	fmt.Fprintf(&b, "\n%d wants: %d full, %d partial, %d not in stock (%d/%d copies)\n",
		summary.TotalWants,
		summary.FullyAvailable,
		summary.PartiallyAvailable,
		summary.NotInStock,
		summary.AvailableTotal,
		summary.WantedTotal,
	)

	return b.String()
}

// RenderPickingList formats the picking view: matched listings grouped under
// their want entry with location, condition, language, foil flag and price,
// so an order can be pulled shelf by shelf.
func RenderPickingList(groups []recon.PickingGroup, currency string) string {
	var b strings.Builder

	for _, group := range groups {
		fmt.Fprintf(&b, "%s (want %d, %s)\n", group.Name, group.Wanted, group.Status)

		if len(group.Rows) == 0 {
			b.WriteString("  no stock\n")
			continue
		}

		for _, row := range group.Rows {
			fmt.Fprintf(&b, "  %s: %dx %s %s %s", row.Location, row.Quantity, row.Set, row.Condition, row.Language)
			if row.Foil {
				b.WriteString(" foil")
			}
			if row.Signed {
				b.WriteString(" signed")
			}
			fmt.Fprintf(&b, " %.2f %s\n", row.Price, currency)
		}
	}

	return b.String()
}
