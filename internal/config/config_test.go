package config

import (
	"testing"

	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, types.DefaultMarketMatchers, cfg.Selection.CartLines.Matchers)
	assert.Equal(t, types.DefaultMarketMatchers, cfg.Selection.DeliveryOptions.Matchers)
	assert.True(t, cfg.Selection.DateValidity.Enabled)
	assert.False(t, cfg.Selection.DateValidity.FallThrough)
	assert.True(t, cfg.Messages.Synthesize)

	// defaults must not alias the package level precedence
	cfg.Selection.CartLines.Matchers[0] = types.MarketMatcherCurrency
	assert.Equal(t, types.MarketMatcherMarketID, types.DefaultMarketMatchers[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Configuration)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(c *Configuration) {},
		},
		{
			name: "legacy matcher allowed",
			mutate: func(c *Configuration) {
				c.Selection.CartLines.Matchers = []types.MarketMatcherName{types.MarketMatcherLegacyCountryName, types.MarketMatcherMarketID}
			},
		},
		{
			name: "unknown matcher",
			mutate: func(c *Configuration) {
				c.Selection.CartLines.Matchers = []types.MarketMatcherName{"zip_code"}
			},
			wantErr: true,
		},
		{
			name: "empty matchers",
			mutate: func(c *Configuration) {
				c.Selection.DeliveryOptions.Matchers = nil
			},
			wantErr: true,
		},
		{
			name: "unknown log level",
			mutate: func(c *Configuration) {
				c.Logging.Level = "verbose"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, types.LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, types.DefaultMarketMatchers, cfg.Selection.CartLines.Matchers)
	assert.Equal(t, "Discount", cfg.Messages.DefaultTitle)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("MARKETDISCOUNT_LOGGING_LEVEL", "debug")
	t.Setenv("MARKETDISCOUNT_SELECTION_DATE_VALIDITY_FALL_THROUGH", "true")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, types.LogLevelDebug, cfg.Logging.Level)
	assert.True(t, cfg.Selection.DateValidity.FallThrough)
}
