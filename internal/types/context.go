package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxEvaluationID ContextKey = "ctx_evaluation_id"
	CtxTarget       ContextKey = "ctx_target"
)

// WithEvaluationID stores the evaluation id used to correlate log lines of one run
func WithEvaluationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxEvaluationID, id)
}

func GetEvaluationID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxEvaluationID).(string); ok {
		return id
	}
	return ""
}

// WithTarget stores the function target being evaluated
func WithTarget(ctx context.Context, target FunctionTarget) context.Context {
	return context.WithValue(ctx, CtxTarget, target)
}

func GetTarget(ctx context.Context) FunctionTarget {
	if target, ok := ctx.Value(CtxTarget).(FunctionTarget); ok {
		return target
	}
	return ""
}
