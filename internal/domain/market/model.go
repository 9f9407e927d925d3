package market

import (
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/shopspring/decimal"
)

// ValueSlot is one independently configured discount value of a market entry
type ValueSlot struct {
	Type       types.DiscountValueType `json:"type"`
	Percentage decimal.Decimal         `json:"percentage"`
	Fixed      decimal.Decimal         `json:"fixed"`
}

// MarketConfig is the discount configuration of one commerce market
type MarketConfig struct {
	MarketID     string `json:"market_id"`
	MarketName   string `json:"market_name"`
	CurrencyCode string `json:"currency_code"`
	CountryCode  string `json:"country_code,omitempty"`
	Active       bool   `json:"active"`
	// StartDate and EndDate are inclusive, nil means unbounded on that side
	StartDate     *types.Date `json:"-"`
	EndDate       *types.Date `json:"-"`
	ExcludeOnSale bool        `json:"exclude_on_sale"`
	CartLine      ValueSlot   `json:"cart_line"`
	Order         ValueSlot   `json:"order"`
	Delivery      ValueSlot   `json:"delivery"`
}

// Configuration is the decoded configuration blob of a discount
type Configuration struct {
	Markets []*MarketConfig `json:"markets"`
	Title   string          `json:"title,omitempty"`
}

// DateRange returns the effective date range of the entry
func (m *MarketConfig) DateRange() types.DateRange {
	return types.DateRange{Start: m.StartDate, End: m.EndDate}
}

// Slot returns the value slot used for the given discount slot
func (m *MarketConfig) Slot(slot types.DiscountSlot) ValueSlot {
	switch slot {
	case types.DiscountSlotOrder:
		return m.Order
	case types.DiscountSlotDelivery:
		return m.Delivery
	default:
		return m.CartLine
	}
}

// ActiveMarkets returns the entries marked active, in configuration order
func (c *Configuration) ActiveMarkets() []*MarketConfig {
	if c == nil {
		return nil
	}
	active := make([]*MarketConfig, 0, len(c.Markets))
	for _, m := range c.Markets {
		if m != nil && m.Active {
			active = append(active, m)
		}
	}
	return active
}

// Empty returns a configuration without markets
func Empty() *Configuration {
	return &Configuration{Markets: []*MarketConfig{}}
}
