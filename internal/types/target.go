package types

// FunctionTarget is the extension point the host invokes the engine for
type FunctionTarget string

const (
	FunctionTargetCartLines       FunctionTarget = "cart.lines.discounts.generate.run"
	FunctionTargetDeliveryOptions FunctionTarget = "cart.delivery-options.discounts.generate.run"
)
