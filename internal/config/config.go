package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type Configuration struct {
	Logging   LoggingConfig   `mapstructure:"logging" validate:"required"`
	Selection SelectionConfig `mapstructure:"selection" validate:"required"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

type LoggingConfig struct {
	Level types.LogLevel `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SelectionConfig drives market selection for each function target
type SelectionConfig struct {
	CartLines       MatcherConfig      `mapstructure:"cart_lines" validate:"required"`
	DeliveryOptions MatcherConfig      `mapstructure:"delivery_options" validate:"required"`
	DateValidity    DateValidityConfig `mapstructure:"date_validity"`
}

// MatcherConfig is an ordered list of matcher names, first match wins
type MatcherConfig struct {
	Matchers []types.MarketMatcherName `mapstructure:"matchers" validate:"required,min=1,dive,oneof=market_id country_code legacy_country_name currency"`
}

type DateValidityConfig struct {
	// Enabled rejects market entries whose start/end dates do not cover the shop date
	Enabled bool `mapstructure:"enabled"`
	// FallThrough lets selection continue with the next candidate when the matched entry is out of range
	FallThrough bool `mapstructure:"fall_through"`
}

type MessagesConfig struct {
	// Synthesize builds messages like "10% OFF ORDER" when no discount code or title is set
	Synthesize bool `mapstructure:"synthesize"`
	// DefaultTitle is used when synthesis is disabled and no discount code or title is set
	DefaultTitle string `mapstructure:"default_title"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and only meant for local runs
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/marketdiscount")

	setDefaults(v)

	v.SetEnvPrefix("MARKETDISCOUNT")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// stdout carries the function result, diagnostics go to stderr
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()
	matchers := func(m MatcherConfig) []string {
		return lo.Map(m.Matchers, func(name types.MarketMatcherName, _ int) string {
			return string(name)
		})
	}

	v.SetDefault("logging.level", string(defaults.Logging.Level))
	v.SetDefault("selection.cart_lines.matchers", matchers(defaults.Selection.CartLines))
	v.SetDefault("selection.delivery_options.matchers", matchers(defaults.Selection.DeliveryOptions))
	v.SetDefault("selection.date_validity.enabled", defaults.Selection.DateValidity.Enabled)
	v.SetDefault("selection.date_validity.fall_through", defaults.Selection.DateValidity.FallThrough)
	v.SetDefault("messages.synthesize", defaults.Messages.Synthesize)
	v.SetDefault("messages.default_title", defaults.Messages.DefaultTitle)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns the configuration used when no file or env overrides exist.
// Tests and scripts use it directly.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{Level: types.LogLevelInfo},
		Selection: SelectionConfig{
			CartLines:       MatcherConfig{Matchers: defaultMatchers()},
			DeliveryOptions: MatcherConfig{Matchers: defaultMatchers()},
			DateValidity: DateValidityConfig{
				Enabled:     true,
				FallThrough: false,
			},
		},
		Messages: MessagesConfig{
			Synthesize:   true,
			DefaultTitle: "Discount",
		},
	}
}

func defaultMatchers() []types.MarketMatcherName {
	return append([]types.MarketMatcherName(nil), types.DefaultMarketMatchers...)
}
