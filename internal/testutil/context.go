package testutil

import (
	"context"

	"github.com/flexprice/marketdiscount/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = types.WithEvaluationID(ctx, types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVALUATION))
	return ctx
}
