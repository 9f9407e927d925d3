package service

import (
	"strings"

	"github.com/flexprice/marketdiscount/internal/domain/market"
	"github.com/flexprice/marketdiscount/internal/domain/operation"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/shopspring/decimal"
)

// DiscountValue is the effective value a market slot resolves to
type DiscountValue struct {
	Type   types.DiscountValueType
	Amount decimal.Decimal
}

// valueRule is one row of the slot decision table
type valueRule struct {
	when  func(value market.ValueSlot, slot types.DiscountSlot) bool
	value func(value market.ValueSlot, slot types.DiscountSlot) DiscountValue
}

// valueDecisionTable is evaluated top to bottom, the first row whose condition holds wins.
// No matching row means the slot contributes no discount.
// Fixed amounts are gated after rounding to the digits they are sent with, so "0.04" never becomes "0.0".
var valueDecisionTable = []valueRule{
	{
		when: func(value market.ValueSlot, slot types.DiscountSlot) bool {
			return value.Type.Normalize() == types.DiscountValueTypeFixed && roundedFixed(value, slot).IsPositive()
		},
		value: func(value market.ValueSlot, slot types.DiscountSlot) DiscountValue {
			return DiscountValue{Type: types.DiscountValueTypeFixed, Amount: roundedFixed(value, slot)}
		},
	},
	{
		when: func(value market.ValueSlot, _ types.DiscountSlot) bool {
			return value.Percentage.IsPositive()
		},
		value: func(value market.ValueSlot, _ types.DiscountSlot) DiscountValue {
			return DiscountValue{Type: types.DiscountValueTypePercentage, Amount: value.Percentage}
		},
	},
}

func roundedFixed(value market.ValueSlot, slot types.DiscountSlot) decimal.Decimal {
	return value.Fixed.Round(slot.FixedAmountPlaces())
}

// ResolveDiscountValue applies the decision table to the value configured for slot
func ResolveDiscountValue(value market.ValueSlot, slot types.DiscountSlot) (DiscountValue, bool) {
	for _, rule := range valueDecisionTable {
		if rule.when(value, slot) {
			return rule.value(value, slot), true
		}
	}
	return DiscountValue{}, false
}

// OperationValue renders the value for the host. Fixed amounts keep the fraction digits of the slot.
func (v DiscountValue) OperationValue(slot types.DiscountSlot) operation.Value {
	if v.Type == types.DiscountValueTypeFixed {
		return operation.Value{FixedAmount: &operation.FixedAmount{
			Amount: v.Amount.StringFixed(slot.FixedAmountPlaces()),
		}}
	}
	return operation.Value{Percentage: &operation.Percentage{
		Value: v.Amount.InexactFloat64(),
	}}
}

// Message synthesizes the text shown to the buyer, e.g. "10.0 CAD OFF ORDER" or "15% OFF PRODUCT"
func (v DiscountValue) Message(slot types.DiscountSlot, currencyCode string) string {
	if v.Type == types.DiscountValueTypeFixed {
		parts := []string{v.Amount.StringFixed(slot.FixedAmountPlaces())}
		if code := strings.TrimSpace(currencyCode); code != "" {
			parts = append(parts, code)
		}
		parts = append(parts, slot.MessageSuffix())
		return strings.Join(parts, " ")
	}
	return v.Amount.String() + "% " + slot.MessageSuffix()
}
