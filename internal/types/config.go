package types

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// MarketMatcherName identifies one stage of market selection
type MarketMatcherName string

const (
	// MarketMatcherMarketID matches the entry whose market id equals the buyer market
	MarketMatcherMarketID MarketMatcherName = "market_id"
	// MarketMatcherCountryCode matches the entry whose country code equals the buyer country
	MarketMatcherCountryCode MarketMatcherName = "country_code"
	// MarketMatcherLegacyCountryName matches CA and DE buyers on market name substrings.
	//
	// Deprecated: configure countryCode on market entries and use MarketMatcherCountryCode.
	MarketMatcherLegacyCountryName MarketMatcherName = "legacy_country_name"
	// MarketMatcherCurrency matches the entry whose currency equals the presentment currency
	MarketMatcherCurrency MarketMatcherName = "currency"
)

// DefaultMarketMatchers is the selection precedence used when none is configured
var DefaultMarketMatchers = []MarketMatcherName{
	MarketMatcherMarketID,
	MarketMatcherCountryCode,
	MarketMatcherCurrency,
}
