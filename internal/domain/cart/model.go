package cart

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Cart is the read-only view of the buyer cart for one evaluation
type Cart struct {
	Lines                   []CartLine      `json:"lines"`
	DeliveryGroups          []DeliveryGroup `json:"delivery_groups"`
	PresentmentCurrencyCode string          `json:"presentment_currency_code"`
}

// CartLine is a merchandise line of the cart
type CartLine struct {
	ID             string          `json:"id"`
	Quantity       int             `json:"quantity"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`
	// CompareAtAmountPerQuantity is the comparison price of one unit, nil when the variant has none
	CompareAtAmountPerQuantity *decimal.Decimal `json:"compare_at_amount_per_quantity,omitempty"`
}

// DeliveryGroup is a shippable subset of the cart with its delivery options
type DeliveryGroup struct {
	ID      string           `json:"id"`
	Options []DeliveryOption `json:"options"`
}

// DeliveryOption is one shipping method of a delivery group
type DeliveryOption struct {
	Handle       string          `json:"handle"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
}

// UnitPrice is the current price of one unit of the line.
// A line without a positive quantity is priced at its subtotal.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.Quantity <= 0 {
		return l.SubtotalAmount
	}
	return l.SubtotalAmount.Div(decimal.NewFromInt(int64(l.Quantity)))
}

// IsOnSale reports whether the line sells below its comparison price.
// Lines without a comparison price are never on sale.
func (l CartLine) IsOnSale() bool {
	if l.CompareAtAmountPerQuantity == nil {
		return false
	}
	return l.CompareAtAmountPerQuantity.GreaterThan(l.UnitPrice())
}

// HasLines reports whether the cart has at least one line
func (c *Cart) HasLines() bool {
	return c != nil && len(c.Lines) > 0
}

// FirstDeliveryGroup returns the delivery group discounts apply to
func (c *Cart) FirstDeliveryGroup() (*DeliveryGroup, bool) {
	if c == nil || len(c.DeliveryGroups) == 0 {
		return nil, false
	}
	return &c.DeliveryGroups[0], true
}

// EligibleLines returns the lines product discounts may target, in cart order
func (c *Cart) EligibleLines(excludeOnSale bool) []CartLine {
	if c == nil {
		return nil
	}
	if !excludeOnSale {
		return c.Lines
	}
	return lo.Filter(c.Lines, func(line CartLine, _ int) bool {
		return !line.IsOnSale()
	})
}
