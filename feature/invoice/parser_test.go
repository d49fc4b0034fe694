package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderExport = `OrderID;Buyer;Email;Article;Quantity;Price;Shipping
1001;Max Muster;max@example.com;Lightning Bolt (2ED) NM;4;14,50;2,50
1001;Max Muster;max@example.com;Counterspell (ICE) EX;1;1,25;2,50
1002;Erika Beispiel;erika@example.com;Shock (STH) PL;2;0,30;1,20
;Nobody;;Orphan Row;1;5,00;0
1003;Bad Price;bad@example.com;Brainstorm;1;call us;0
`

func TestParseOrders(t *testing.T) {
	drafts, err := ParseOrders(strings.NewReader(orderExport), "EUR")
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	first := drafts[0]
	assert.Equal(t, "1001", first.OrderID)
	assert.Equal(t, "Max Muster", first.Buyer)
	assert.Equal(t, "max@example.com", first.Email)
	assert.Equal(t, "EUR", first.Currency)
	require.Len(t, first.Lines, 2)
	assert.Equal(t, "Lightning Bolt (2ED) NM", first.Lines[0].Description)
	assert.Equal(t, 4, first.Lines[0].Quantity)
	assert.InDelta(t, 14.5, first.Lines[0].UnitPrice, 1e-9)
	assert.InDelta(t, 2.5, first.Shipping, 1e-9)
	assert.InDelta(t, 4*14.5+1.25+2.5, first.Total(), 1e-9)

	second := drafts[1]
	assert.Equal(t, "1002", second.OrderID)
	require.Len(t, second.Lines, 1)
	assert.InDelta(t, 2*0.3+1.2, second.Total(), 1e-9)
}

func TestParseOrders_CommaDelimited(t *testing.T) {
	export := "OrderID,Buyer,Email,Article,Quantity,Price,Shipping\n" +
		"2001,Jane Doe,jane@example.com,Dark Ritual,2,0.75,1.00\n"

	drafts, err := ParseOrders(strings.NewReader(export), "USD")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "2001", drafts[0].OrderID)
	assert.InDelta(t, 2.5, drafts[0].Total(), 1e-9)
}

func TestParseOrders_Empty(t *testing.T) {
	drafts, err := ParseOrders(strings.NewReader(""), "EUR")
	assert.NoError(t, err)
	assert.Empty(t, drafts)
}
