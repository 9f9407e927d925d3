package cart

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(id string, quantity int, subtotal string, compareAt *string) CartLine {
	l := CartLine{
		ID:             id,
		Quantity:       quantity,
		SubtotalAmount: decimal.RequireFromString(subtotal),
	}
	if compareAt != nil {
		l.CompareAtAmountPerQuantity = lo.ToPtr(decimal.RequireFromString(*compareAt))
	}
	return l
}

func TestCartLineUnitPrice(t *testing.T) {
	tests := []struct {
		name string
		line CartLine
		want string
	}{
		{name: "single unit", line: line("a", 1, "1914.0", nil), want: "1914"},
		{name: "several units", line: line("a", 4, "100", nil), want: "25"},
		{name: "zero quantity", line: line("a", 0, "100", nil), want: "100"},
		{name: "negative quantity", line: line("a", -2, "100", nil), want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, decimal.RequireFromString(tt.want).Equal(tt.line.UnitPrice()), "got %s", tt.line.UnitPrice())
		})
	}
}

func TestCartLineIsOnSale(t *testing.T) {
	tests := []struct {
		name string
		line CartLine
		want bool
	}{
		{name: "no comparison price", line: line("a", 1, "100", nil), want: false},
		{name: "comparison above unit price", line: line("a", 2, "100", lo.ToPtr("60")), want: true},
		{name: "comparison equal to unit price", line: line("a", 2, "100", lo.ToPtr("50")), want: false},
		{name: "comparison below unit price", line: line("a", 2, "100", lo.ToPtr("40")), want: false},
		{name: "zero comparison price", line: line("a", 1, "100", lo.ToPtr("0")), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.line.IsOnSale())
		})
	}
}

func TestCartEligibleLines(t *testing.T) {
	c := &Cart{
		Lines: []CartLine{
			line("regular", 1, "100", nil),
			line("on-sale", 1, "80", lo.ToPtr("100")),
			line("full-price", 1, "100", lo.ToPtr("100")),
		},
	}

	all := c.EligibleLines(false)
	assert.Len(t, all, 3)

	eligible := c.EligibleLines(true)
	assert.Equal(t, []string{"regular", "full-price"}, lo.Map(eligible, func(l CartLine, _ int) string { return l.ID }))

	var empty *Cart
	assert.Empty(t, empty.EligibleLines(true))
}

func TestCartFirstDeliveryGroup(t *testing.T) {
	var empty *Cart
	_, ok := empty.FirstDeliveryGroup()
	assert.False(t, ok)

	_, ok = (&Cart{}).FirstDeliveryGroup()
	assert.False(t, ok)

	c := &Cart{DeliveryGroups: []DeliveryGroup{{ID: "first"}, {ID: "second"}}}
	group, ok := c.FirstDeliveryGroup()
	assert.True(t, ok)
	assert.Equal(t, "first", group.ID)
}

func TestCartHasLines(t *testing.T) {
	var empty *Cart
	assert.False(t, empty.HasLines())
	assert.False(t, (&Cart{}).HasLines())
	assert.True(t, (&Cart{Lines: []CartLine{line("a", 1, "1", nil)}}).HasLines())
}
