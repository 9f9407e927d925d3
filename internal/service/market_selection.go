package service

import (
	"strings"

	"github.com/flexprice/marketdiscount/internal/domain/market"
	ierr "github.com/flexprice/marketdiscount/internal/errors"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/samber/lo"
)

// SelectionContext carries the buyer signals market selection works from
type SelectionContext struct {
	MarketID            string
	CountryCode         string
	PresentmentCurrency string
	Today               *types.Date
}

// MarketMatcher is one stage of market selection
type MarketMatcher interface {
	Name() types.MarketMatcherName
	// Applicable reports whether the context carries the signal the matcher needs
	Applicable(sc SelectionContext) bool
	Match(sc SelectionContext, m *market.MarketConfig) bool
}

type marketIDMatcher struct{}

func (marketIDMatcher) Name() types.MarketMatcherName { return types.MarketMatcherMarketID }

func (marketIDMatcher) Applicable(sc SelectionContext) bool { return sc.MarketID != "" }

func (marketIDMatcher) Match(sc SelectionContext, m *market.MarketConfig) bool {
	return m.MarketID == sc.MarketID
}

type countryCodeMatcher struct{}

func (countryCodeMatcher) Name() types.MarketMatcherName { return types.MarketMatcherCountryCode }

func (countryCodeMatcher) Applicable(sc SelectionContext) bool { return sc.CountryCode != "" }

func (countryCodeMatcher) Match(sc SelectionContext, m *market.MarketConfig) bool {
	return m.CountryCode == sc.CountryCode
}

// legacyCountryNames is the complete set of country to market name mappings ever supported
var legacyCountryNames = map[string]string{
	"CA": "Canada",
	"DE": "Germany",
}

// legacyCountryNameMatcher matches on a substring of the market name.
//
// Deprecated: market entries should carry countryCode.
type legacyCountryNameMatcher struct{}

func (legacyCountryNameMatcher) Name() types.MarketMatcherName {
	return types.MarketMatcherLegacyCountryName
}

func (legacyCountryNameMatcher) Applicable(sc SelectionContext) bool {
	_, ok := legacyCountryNames[sc.CountryCode]
	return ok
}

func (legacyCountryNameMatcher) Match(sc SelectionContext, m *market.MarketConfig) bool {
	name, ok := legacyCountryNames[sc.CountryCode]
	return ok && strings.Contains(m.MarketName, name)
}

type currencyMatcher struct{}

func (currencyMatcher) Name() types.MarketMatcherName { return types.MarketMatcherCurrency }

func (currencyMatcher) Applicable(sc SelectionContext) bool { return sc.PresentmentCurrency != "" }

func (currencyMatcher) Match(sc SelectionContext, m *market.MarketConfig) bool {
	return m.CurrencyCode == sc.PresentmentCurrency
}

// NewMarketMatcher returns the matcher registered under name
func NewMarketMatcher(name types.MarketMatcherName) (MarketMatcher, error) {
	switch name {
	case types.MarketMatcherMarketID:
		return marketIDMatcher{}, nil
	case types.MarketMatcherCountryCode:
		return countryCodeMatcher{}, nil
	case types.MarketMatcherLegacyCountryName:
		return legacyCountryNameMatcher{}, nil
	case types.MarketMatcherCurrency:
		return currencyMatcher{}, nil
	default:
		return nil, ierr.NewErrorf("unknown market matcher %q", name).
			WithHintf("Market matcher must be one of %s, %s, %s or %s",
				types.MarketMatcherMarketID, types.MarketMatcherCountryCode,
				types.MarketMatcherLegacyCountryName, types.MarketMatcherCurrency).
			Mark(ierr.ErrValidation)
	}
}

// DateValidityPolicy controls the start/end date check of selected entries
type DateValidityPolicy struct {
	Enabled bool
	// FallThrough skips out of range entries while matching instead of rejecting the match
	FallThrough bool
}

// SelectionOutcome explains the result of a selection
type SelectionOutcome string

const (
	SelectionOutcomeMatched    SelectionOutcome = "matched"
	SelectionOutcomeNoMarkets  SelectionOutcome = "no_active_markets"
	SelectionOutcomeNoMatch    SelectionOutcome = "no_match"
	SelectionOutcomeOutOfRange SelectionOutcome = "out_of_date_range"
)

// Selection is the result of MarketSelectionPolicy.Select
type Selection struct {
	Market  *market.MarketConfig
	Matcher types.MarketMatcherName
	Outcome SelectionOutcome
}

// Found reports whether an entry was selected
func (s Selection) Found() bool {
	return s.Market != nil
}

// MarketSelectionPolicy picks at most one market entry: matchers are tried in order,
// the first entry the first applicable matcher accepts wins. Inactive entries never match.
type MarketSelectionPolicy struct {
	Matchers     []MarketMatcher
	DateValidity DateValidityPolicy
}

// NewMarketSelectionPolicy builds a policy from configured matcher names
func NewMarketSelectionPolicy(names []types.MarketMatcherName, dateValidity DateValidityPolicy) (*MarketSelectionPolicy, error) {
	if len(names) == 0 {
		return nil, ierr.NewError("no market matchers configured").
			WithHint("At least one market matcher is required").
			Mark(ierr.ErrValidation)
	}

	matchers := make([]MarketMatcher, 0, len(names))
	for _, name := range lo.Uniq(names) {
		matcher, err := NewMarketMatcher(name)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, matcher)
	}

	return &MarketSelectionPolicy{
		Matchers:     matchers,
		DateValidity: dateValidity,
	}, nil
}

// Select returns the single market entry that applies to the buyer, if any
func (p *MarketSelectionPolicy) Select(config *market.Configuration, sc SelectionContext) Selection {
	candidates := config.ActiveMarkets()

	if p.DateValidity.Enabled && p.DateValidity.FallThrough {
		candidates = lo.Filter(candidates, func(m *market.MarketConfig, _ int) bool {
			return m.DateRange().Covers(sc.Today)
		})
	}

	if len(candidates) == 0 {
		return Selection{Outcome: SelectionOutcomeNoMarkets}
	}

	for _, matcher := range p.Matchers {
		if !matcher.Applicable(sc) {
			continue
		}

		found, ok := lo.Find(candidates, func(m *market.MarketConfig) bool {
			return matcher.Match(sc, m)
		})
		if !ok {
			continue
		}

		if p.DateValidity.Enabled && !found.DateRange().Covers(sc.Today) {
			return Selection{Matcher: matcher.Name(), Outcome: SelectionOutcomeOutOfRange}
		}

		return Selection{Market: found, Matcher: matcher.Name(), Outcome: SelectionOutcomeMatched}
	}

	return Selection{Outcome: SelectionOutcomeNoMatch}
}
