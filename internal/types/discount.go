package types

import (
	"strings"

	"github.com/samber/lo"
)

// DiscountClass declares which part of a cart a discount is authorized to affect
type DiscountClass string

const (
	DiscountClassProduct  DiscountClass = "PRODUCT"
	DiscountClassOrder    DiscountClass = "ORDER"
	DiscountClassShipping DiscountClass = "SHIPPING"
)

// DiscountClasses is the set of classes declared on a discount
type DiscountClasses []DiscountClass

// Has reports whether class is declared. Matching ignores case.
func (c DiscountClasses) Has(class DiscountClass) bool {
	return lo.ContainsBy(c, func(item DiscountClass) bool {
		return strings.EqualFold(string(item), string(class))
	})
}

// HasAny reports whether at least one of classes is declared
func (c DiscountClasses) HasAny(classes ...DiscountClass) bool {
	return lo.SomeBy(classes, c.Has)
}

// DiscountValueType represents the type of discount value (fixed or percentage)
type DiscountValueType string

const (
	// DiscountValueTypeFixed represents a fixed amount discount
	DiscountValueTypeFixed DiscountValueType = "fixed"
	// DiscountValueTypePercentage represents a percentage-based discount
	DiscountValueTypePercentage DiscountValueType = "percentage"
)

// Normalize maps an empty or unknown type to percentage, the default of the admin form
func (t DiscountValueType) Normalize() DiscountValueType {
	if strings.EqualFold(strings.TrimSpace(string(t)), string(DiscountValueTypeFixed)) {
		return DiscountValueTypeFixed
	}
	return DiscountValueTypePercentage
}

// SelectionStrategy tells the host how to apply the candidates of an operation
type SelectionStrategy string

const (
	// SelectionStrategyAll applies the discount to every candidate
	SelectionStrategyAll SelectionStrategy = "ALL"
	// SelectionStrategyFirst applies only the first eligible candidate
	SelectionStrategyFirst SelectionStrategy = "FIRST"
)

// DiscountSlot names one of the three independent value slots of a market entry
type DiscountSlot string

const (
	DiscountSlotCartLine DiscountSlot = "cart_line"
	DiscountSlotOrder    DiscountSlot = "order"
	DiscountSlotDelivery DiscountSlot = "delivery"
)

// MessageSuffix is the trailing text of a synthesized discount message
func (s DiscountSlot) MessageSuffix() string {
	switch s {
	case DiscountSlotOrder:
		return "OFF ORDER"
	case DiscountSlotDelivery:
		return "OFF DELIVERY"
	default:
		return "OFF PRODUCT"
	}
}

// FixedAmountPlaces is the number of fraction digits fixed amounts of the slot are rendered with
func (s DiscountSlot) FixedAmountPlaces() int32 {
	if s == DiscountSlotDelivery {
		return 2
	}
	return 1
}
