package market

import (
	"encoding/json"
	"strconv"
	"strings"

	ierr "github.com/flexprice/marketdiscount/internal/errors"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/flexprice/marketdiscount/internal/utils"
	"github.com/shopspring/decimal"
)

// configurationWire is the blob the admin app stores on the discount
type configurationWire struct {
	Title   json.RawMessage `json:"title"`
	Markets json.RawMessage `json:"markets"`
}

// marketWire accepts the flat field layout written by the admin form and the
// nested slot layout. Nested slots win when both are present.
type marketWire struct {
	MarketID      string      `json:"marketId"`
	MarketName    string      `json:"marketName"`
	CurrencyCode  string      `json:"currencyCode"`
	CountryCode   string      `json:"countryCode"`
	Active        flexBool    `json:"active"`
	StartDate     *string     `json:"startDate"`
	EndDate       *string     `json:"endDate"`
	ExcludeOnSale flexBool    `json:"excludeOnSale"`
	CartLine      *slotWire   `json:"cartLine"`
	Order         *slotWire   `json:"order"`
	Delivery      *slotWire   `json:"delivery"`
	CartLineType  string      `json:"cartLineType"`
	CartLinePct   flexDecimal `json:"cartLinePercentage"`
	CartLineFixed flexDecimal `json:"cartLineFixed"`
	OrderType     string      `json:"orderType"`
	OrderPct      flexDecimal `json:"orderPercentage"`
	OrderFixed    flexDecimal `json:"orderFixed"`
	DeliveryType  string      `json:"deliveryType"`
	DeliveryPct   flexDecimal `json:"deliveryPercentage"`
	DeliveryFixed flexDecimal `json:"deliveryFixed"`
}

type slotWire struct {
	Type       string      `json:"type"`
	Percentage flexDecimal `json:"percentage"`
	Fixed      flexDecimal `json:"fixed"`
}

// maxAmountDigits bounds amounts on both sides of the decimal point
const maxAmountDigits = 18

// flexDecimal reads a json string or number. Anything that is not a number reads as zero,
// and so does a number of 1e18 or more, or one with no significant digit in the first 18 places.
type flexDecimal struct {
	value decimal.Decimal
}

func (d *flexDecimal) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		d.value = decimal.Zero
		return nil
	}
	d.value = boundAmount(value)
	return nil
}

// boundAmount keeps the cost of rendering an amount proportional to the text it was read from.
// The exponent alone is never trusted, "1e50000000" is a few bytes.
func boundAmount(value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}
	coefficient := value.Coefficient()
	magnitude := len(coefficient.Abs(coefficient).String()) + int(value.Exponent())
	if magnitude > maxAmountDigits || magnitude < -maxAmountDigits {
		return decimal.Zero
	}
	if value.Exponent() < -maxAmountDigits {
		return value.Round(maxAmountDigits)
	}
	return value
}

// flexBool reads a json bool, a "true"/"false" string or a number
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	if parsed, err := strconv.ParseBool(raw); err == nil {
		*b = flexBool(parsed)
		return nil
	}
	if n, err := decimal.NewFromString(raw); err == nil {
		*b = flexBool(!n.IsZero())
		return nil
	}
	*b = false
	return nil
}

func (s *slotWire) toDomain() ValueSlot {
	return ValueSlot{
		Type:       types.DiscountValueType(s.Type).Normalize(),
		Percentage: s.Percentage.value,
		Fixed:      s.Fixed.value,
	}
}

func flatSlot(valueType string, percentage, fixed flexDecimal) ValueSlot {
	return ValueSlot{
		Type:       types.DiscountValueType(valueType).Normalize(),
		Percentage: percentage.value,
		Fixed:      fixed.value,
	}
}

func pickSlot(nested *slotWire, flat ValueSlot) ValueSlot {
	if nested != nil {
		return nested.toDomain()
	}
	return flat
}

func (w *marketWire) toDomain() *MarketConfig {
	return &MarketConfig{
		MarketID:      w.MarketID,
		MarketName:    w.MarketName,
		CurrencyCode:  w.CurrencyCode,
		CountryCode:   w.CountryCode,
		Active:        bool(w.Active),
		StartDate:     types.OptionalDate(w.StartDate),
		EndDate:       types.OptionalDate(w.EndDate),
		ExcludeOnSale: bool(w.ExcludeOnSale),
		CartLine:      pickSlot(w.CartLine, flatSlot(w.CartLineType, w.CartLinePct, w.CartLineFixed)),
		Order:         pickSlot(w.Order, flatSlot(w.OrderType, w.OrderPct, w.OrderFixed)),
		Delivery:      pickSlot(w.Delivery, flatSlot(w.DeliveryType, w.DeliveryPct, w.DeliveryFixed)),
	}
}

// Decode parses a configuration blob. It always returns a usable configuration:
// a blob that is not a json object, or whose markets is not an array, yields no markets,
// and entries that cannot be read are skipped. The returned error only describes what was
// dropped and is meant for diagnostics.
func Decode(raw string) (*Configuration, error) {
	if strings.TrimSpace(raw) == "" {
		return Empty(), nil
	}

	var wire configurationWire
	if err := utils.JSON.UnmarshalFromString(raw, &wire); err != nil {
		return Empty(), ierr.WithError(err).
			WithHint("Discount configuration is not a json object").
			Mark(ierr.ErrValidation)
	}

	config := Empty()
	if len(wire.Title) > 0 {
		var title string
		if err := utils.JSON.Unmarshal(wire.Title, &title); err == nil {
			config.Title = title
		}
	}

	if len(wire.Markets) == 0 || string(wire.Markets) == "null" {
		return config, nil
	}

	var entries []json.RawMessage
	if err := utils.JSON.Unmarshal(wire.Markets, &entries); err != nil {
		return config, ierr.WithError(err).
			WithHint("Discount configuration markets is not a list").
			Mark(ierr.ErrValidation)
	}

	var skipped []int
	for i, entry := range entries {
		var m marketWire
		if err := utils.JSON.Unmarshal(entry, &m); err != nil || string(entry) == "null" {
			skipped = append(skipped, i)
			continue
		}
		config.Markets = append(config.Markets, m.toDomain())
	}

	if len(skipped) > 0 {
		return config, ierr.NewErrorf("skipped %d unreadable market entries", len(skipped)).
			WithHint("Some market entries of the discount configuration could not be read").
			WithReportableDetails(map[string]any{"skipped_indexes": skipped}).
			Mark(ierr.ErrValidation)
	}

	return config, nil
}

// DecodeFirst decodes the first non-empty blob among values.
// The host has supplied the blob as configuration.value and as metafield.value over time.
func DecodeFirst(values ...*string) (*Configuration, error) {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) != "" {
			return Decode(*v)
		}
	}
	return Empty(), nil
}
