package dto

import (
	"strings"

	"github.com/flexprice/marketdiscount/internal/domain/cart"
	"github.com/flexprice/marketdiscount/internal/domain/operation"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/flexprice/marketdiscount/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// RunInput is the document the host passes to both function targets
type RunInput struct {
	Cart                   Cart          `json:"cart"`
	Discount               Discount      `json:"discount"`
	Localization           *Localization `json:"localization,omitempty"`
	Shop                   *Shop         `json:"shop,omitempty"`
	TriggeringDiscountCode *string       `json:"triggeringDiscountCode,omitempty"`
}

type Cart struct {
	Lines                   []CartLine      `json:"lines" validate:"dive"`
	DeliveryGroups          []DeliveryGroup `json:"deliveryGroups,omitempty" validate:"dive"`
	BuyerIdentity           *BuyerIdentity  `json:"buyerIdentity,omitempty"`
	PresentmentCurrencyCode *string         `json:"presentmentCurrencyCode,omitempty"`
}

type BuyerIdentity struct {
	PresentmentCurrencyCode *string `json:"presentmentCurrencyCode,omitempty"`
}

type CartLine struct {
	ID       string       `json:"id" validate:"required"`
	Quantity int          `json:"quantity"`
	Cost     CartLineCost `json:"cost"`
}

type CartLineCost struct {
	SubtotalAmount             Money  `json:"subtotalAmount"`
	CompareAtAmountPerQuantity *Money `json:"compareAtAmountPerQuantity,omitempty"`
}

// Money is the host MoneyV2 shape. The amount may arrive as a string or a number.
type Money struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode,omitempty"`
}

type DeliveryGroup struct {
	ID              string           `json:"id,omitempty"`
	DeliveryOptions []DeliveryOption `json:"deliveryOptions" validate:"dive"`
}

type DeliveryOption struct {
	Handle string `json:"handle" validate:"required"`
	Cost   *Money `json:"cost,omitempty"`
}

type Discount struct {
	DiscountClasses types.DiscountClasses `json:"discountClasses"`
	Configuration   *ValueHolder          `json:"configuration,omitempty"`
	Metafield       *ValueHolder          `json:"metafield,omitempty"`
}

// ValueHolder wraps the serialized configuration blob
type ValueHolder struct {
	Value *string `json:"value,omitempty"`
}

type Localization struct {
	Market  *LocalizationMarket  `json:"market,omitempty"`
	Country *LocalizationCountry `json:"country,omitempty"`
}

type LocalizationMarket struct {
	ID string `json:"id"`
}

type LocalizationCountry struct {
	IsoCode string `json:"isoCode"`
}

type Shop struct {
	LocalTime *LocalTime `json:"localTime,omitempty"`
}

// LocalTime is the shop's local time, only the calendar date is read
type LocalTime struct {
	Date string `json:"date"`
}

// FunctionResult is the document returned to the host
type FunctionResult struct {
	Operations []operation.Operation `json:"operations"`
}

// NewFunctionResult wraps operations, an empty list serializes as []
func NewFunctionResult(operations ...operation.Operation) *FunctionResult {
	if operations == nil {
		operations = []operation.Operation{}
	}
	return &FunctionResult{Operations: operations}
}

func (r *RunInput) Validate() error {
	return validator.ValidateInput(r)
}

// ToCart converts the host cart to the domain cart
func (r *RunInput) ToCart() *cart.Cart {
	c := &cart.Cart{
		Lines: lo.Map(r.Cart.Lines, func(l CartLine, _ int) cart.CartLine {
			line := cart.CartLine{
				ID:             l.ID,
				Quantity:       l.Quantity,
				SubtotalAmount: l.Cost.SubtotalAmount.Amount,
			}
			if l.Cost.CompareAtAmountPerQuantity != nil {
				line.CompareAtAmountPerQuantity = lo.ToPtr(l.Cost.CompareAtAmountPerQuantity.Amount)
			}
			return line
		}),
		DeliveryGroups: lo.Map(r.Cart.DeliveryGroups, func(g DeliveryGroup, _ int) cart.DeliveryGroup {
			return cart.DeliveryGroup{
				ID: g.ID,
				Options: lo.Map(g.DeliveryOptions, func(o DeliveryOption, _ int) cart.DeliveryOption {
					option := cart.DeliveryOption{Handle: o.Handle}
					if o.Cost != nil {
						option.Amount = o.Cost.Amount
						option.CurrencyCode = o.Cost.CurrencyCode
					}
					return option
				}),
			}
		}),
		PresentmentCurrencyCode: r.PresentmentCurrency(),
	}
	return c
}

// PresentmentCurrency prefers the buyer identity currency over the cart level one
func (r *RunInput) PresentmentCurrency() string {
	if r.Cart.BuyerIdentity != nil {
		if code := strings.TrimSpace(lo.FromPtr(r.Cart.BuyerIdentity.PresentmentCurrencyCode)); code != "" {
			return code
		}
	}
	return strings.TrimSpace(lo.FromPtr(r.Cart.PresentmentCurrencyCode))
}

// MarketID is the buyer market id, empty when the host did not localize the cart
func (r *RunInput) MarketID() string {
	if r.Localization == nil || r.Localization.Market == nil {
		return ""
	}
	return r.Localization.Market.ID
}

// CountryCode is the buyer country iso code, empty when unknown
func (r *RunInput) CountryCode() string {
	if r.Localization == nil || r.Localization.Country == nil {
		return ""
	}
	return r.Localization.Country.IsoCode
}

// ShopDate is the shop's current local date, nil when the host did not send one
func (r *RunInput) ShopDate() *types.Date {
	if r.Shop == nil || r.Shop.LocalTime == nil {
		return nil
	}
	return types.OptionalDate(&r.Shop.LocalTime.Date)
}

// ConfigurationValues returns the configuration blob candidates in lookup order
func (r *RunInput) ConfigurationValues() []*string {
	values := make([]*string, 0, 2)
	if r.Discount.Configuration != nil {
		values = append(values, r.Discount.Configuration.Value)
	}
	if r.Discount.Metafield != nil {
		values = append(values, r.Discount.Metafield.Value)
	}
	return values
}

// DiscountCode is the code the buyer entered, empty for automatic discounts
func (r *RunInput) DiscountCode() string {
	return strings.TrimSpace(lo.FromPtr(r.TriggeringDiscountCode))
}
