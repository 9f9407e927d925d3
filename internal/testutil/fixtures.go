package testutil

import (
	"github.com/flexprice/marketdiscount/internal/api/dto"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/flexprice/marketdiscount/internal/utils"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MarketEntry builds a market entry in the flat layout the admin app writes.
// Callers set only the keys a test cares about.
type MarketEntry map[string]any

// CanadaMarket is an active CAD market with a 10% product discount
func CanadaMarket() MarketEntry {
	return MarketEntry{
		"marketId":           "gid://shopify/Market/1",
		"marketName":         "Canada",
		"currencyCode":       "CAD",
		"countryCode":        "CA",
		"active":             true,
		"cartLineType":       "percentage",
		"cartLinePercentage": "10",
	}
}

// GermanyMarket is an active EUR market with a 5 EUR order discount
func GermanyMarket() MarketEntry {
	return MarketEntry{
		"marketId":     "gid://shopify/Market/2",
		"marketName":   "Germany",
		"currencyCode": "EUR",
		"countryCode":  "DE",
		"active":       true,
		"orderType":    "fixed",
		"orderFixed":   "5",
	}
}

// With returns a copy of the entry with the given keys overridden
func (m MarketEntry) With(kv ...any) MarketEntry {
	out := make(MarketEntry, len(m)+len(kv)/2)
	for k, v := range m {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}

// ConfigurationJSON serializes markets into a configuration blob
func ConfigurationJSON(title string, markets ...MarketEntry) string {
	blob := map[string]any{"markets": markets}
	if markets == nil {
		blob["markets"] = []MarketEntry{}
	}
	if title != "" {
		blob["title"] = title
	}
	data, err := utils.ToJSON(blob)
	if err != nil {
		panic(err)
	}
	return string(data)
}

// Line builds a cart line with an optional compare-at price per unit
func Line(id string, quantity int, subtotal string, compareAt ...string) dto.CartLine {
	line := dto.CartLine{
		ID:       id,
		Quantity: quantity,
		Cost: dto.CartLineCost{
			SubtotalAmount: dto.Money{Amount: decimal.RequireFromString(subtotal)},
		},
	}
	if len(compareAt) > 0 {
		line.Cost.CompareAtAmountPerQuantity = &dto.Money{Amount: decimal.RequireFromString(compareAt[0])}
	}
	return line
}

// Option builds a delivery option priced in currency
func Option(handle string, amount string, currency string) dto.DeliveryOption {
	return dto.DeliveryOption{
		Handle: handle,
		Cost:   &dto.Money{Amount: decimal.RequireFromString(amount), CurrencyCode: currency},
	}
}

// InputOption customizes a run input built by NewRunInput
type InputOption func(*dto.RunInput)

// NewRunInput builds a host input carrying configuration in discount.configuration.value
func NewRunInput(configuration string, classes []types.DiscountClass, opts ...InputOption) *dto.RunInput {
	input := &dto.RunInput{
		Discount: dto.Discount{
			DiscountClasses: classes,
			Configuration:   &dto.ValueHolder{Value: lo.ToPtr(configuration)},
		},
	}
	for _, opt := range opts {
		opt(input)
	}
	return input
}

func WithLines(lines ...dto.CartLine) InputOption {
	return func(in *dto.RunInput) {
		in.Cart.Lines = append(in.Cart.Lines, lines...)
	}
}

// WithDeliveryGroup appends a delivery group holding options
func WithDeliveryGroup(id string, options ...dto.DeliveryOption) InputOption {
	return func(in *dto.RunInput) {
		in.Cart.DeliveryGroups = append(in.Cart.DeliveryGroups, dto.DeliveryGroup{
			ID:              id,
			DeliveryOptions: options,
		})
	}
}

// WithLocalization sets the buyer market id and country, empty values are left out
func WithLocalization(marketID string, countryCode string) InputOption {
	return func(in *dto.RunInput) {
		loc := &dto.Localization{}
		if marketID != "" {
			loc.Market = &dto.LocalizationMarket{ID: marketID}
		}
		if countryCode != "" {
			loc.Country = &dto.LocalizationCountry{IsoCode: countryCode}
		}
		in.Localization = loc
	}
}

func WithPresentmentCurrency(code string) InputOption {
	return func(in *dto.RunInput) {
		in.Cart.BuyerIdentity = &dto.BuyerIdentity{PresentmentCurrencyCode: lo.ToPtr(code)}
	}
}

func WithShopDate(date string) InputOption {
	return func(in *dto.RunInput) {
		in.Shop = &dto.Shop{LocalTime: &dto.LocalTime{Date: date}}
	}
}

func WithDiscountCode(code string) InputOption {
	return func(in *dto.RunInput) {
		in.TriggeringDiscountCode = lo.ToPtr(code)
	}
}

// WithMetafieldOnly moves the configuration blob to discount.metafield.value
func WithMetafieldOnly() InputOption {
	return func(in *dto.RunInput) {
		in.Discount.Metafield = in.Discount.Configuration
		in.Discount.Configuration = nil
	}
}
