package service

import (
	"context"

	"github.com/flexprice/marketdiscount/internal/api/dto"
	"github.com/flexprice/marketdiscount/internal/config"
	"github.com/flexprice/marketdiscount/internal/domain/market"
	"github.com/flexprice/marketdiscount/internal/types"
)

// marketResolver runs configuration decode and market selection for one target
type marketResolver struct {
	ServiceParams
	policy *MarketSelectionPolicy
}

func newMarketResolver(params ServiceParams, matchers config.MatcherConfig) (*marketResolver, error) {
	policy, err := NewMarketSelectionPolicy(matchers.Matchers, DateValidityPolicy{
		Enabled:     params.Config.Selection.DateValidity.Enabled,
		FallThrough: params.Config.Selection.DateValidity.FallThrough,
	})
	if err != nil {
		return nil, err
	}
	return &marketResolver{ServiceParams: params, policy: policy}, nil
}

// resolve decodes the discount configuration and selects the market entry for the buyer.
// A nil market means no discount applies.
func (r *marketResolver) resolve(ctx context.Context, input *dto.RunInput) (*market.MarketConfig, *market.Configuration) {
	log := r.Logger.WithContext(ctx)

	configuration, err := market.DecodeFirst(input.ConfigurationValues()...)
	if err != nil {
		log.Warnw("discount configuration could not be fully read",
			"error", err,
			"markets_kept", len(configuration.Markets))
	}

	sc := SelectionContext{
		MarketID:            input.MarketID(),
		CountryCode:         input.CountryCode(),
		PresentmentCurrency: input.PresentmentCurrency(),
		Today:               input.ShopDate(),
	}

	selection := r.policy.Select(configuration, sc)
	if !selection.Found() {
		log.Infow("no applicable market configuration",
			"outcome", selection.Outcome,
			"matcher", selection.Matcher,
			"market_id", sc.MarketID,
			"country_code", sc.CountryCode,
			"presentment_currency", sc.PresentmentCurrency,
			"shop_date", dateString(sc.Today))
		return nil, configuration
	}

	log.Debugw("selected market configuration",
		"matcher", selection.Matcher,
		"market_id", selection.Market.MarketID,
		"market_name", selection.Market.MarketName)

	return selection.Market, configuration
}

func dateString(d *types.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
