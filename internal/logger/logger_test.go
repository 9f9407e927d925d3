package logger

import (
	"context"
	"testing"

	"github.com/flexprice/marketdiscount/internal/config"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Logging.Level = types.LogLevelDebug

	log, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))

	cfg.Logging.Level = types.LogLevelWarn
	log, err = NewLogger(cfg)
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestWithContext(t *testing.T) {
	log := NewNopLogger()
	assert.Same(t, log, log.WithContext(context.Background()))

	ctx := types.WithEvaluationID(context.Background(), "eval_1")
	ctx = types.WithTarget(ctx, types.FunctionTargetCartLines)
	assert.NotSame(t, log, log.WithContext(ctx))
}
