package service

import (
	"strings"

	"github.com/flexprice/marketdiscount/internal/api/dto"
	"github.com/flexprice/marketdiscount/internal/config"
	"github.com/flexprice/marketdiscount/internal/domain/market"
	"github.com/flexprice/marketdiscount/internal/types"
)

// discountMessage picks candidate messages: the entered discount code, then the
// configuration title, then either a synthesized message or the default title
type discountMessage struct {
	fixed        string
	synthesize   bool
	defaultTitle string
}

func newDiscountMessage(cfg config.MessagesConfig, input *dto.RunInput, configuration *market.Configuration) discountMessage {
	fixed := input.DiscountCode()
	if fixed == "" && configuration != nil {
		fixed = strings.TrimSpace(configuration.Title)
	}
	return discountMessage{
		fixed:        fixed,
		synthesize:   cfg.Synthesize,
		defaultTitle: cfg.DefaultTitle,
	}
}

func (m discountMessage) For(value DiscountValue, slot types.DiscountSlot, currencyCode string) string {
	if m.fixed != "" {
		return m.fixed
	}
	if !m.synthesize {
		return m.defaultTitle
	}
	return value.Message(slot, currencyCode)
}
