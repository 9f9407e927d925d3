package service

import (
	"context"

	"github.com/flexprice/marketdiscount/internal/api/dto"
	"github.com/flexprice/marketdiscount/internal/domain/cart"
	"github.com/flexprice/marketdiscount/internal/domain/market"
	"github.com/flexprice/marketdiscount/internal/domain/operation"
	ierr "github.com/flexprice/marketdiscount/internal/errors"
	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/samber/lo"
)

// DeliveryOptionsDiscountService computes shipping discounts for the delivery options target
type DeliveryOptionsDiscountService interface {
	GenerateRun(ctx context.Context, input *dto.RunInput) (*dto.FunctionResult, error)
}

type deliveryOptionsDiscountService struct {
	ServiceParams
	markets *marketResolver
}

// NewDeliveryOptionsDiscountService creates a new delivery options discount service
func NewDeliveryOptionsDiscountService(params ServiceParams) (DeliveryOptionsDiscountService, error) {
	markets, err := newMarketResolver(params, params.Config.Selection.DeliveryOptions)
	if err != nil {
		return nil, err
	}
	return &deliveryOptionsDiscountService{
		ServiceParams: params,
		markets:       markets,
	}, nil
}

// GenerateRun discounts every option of the first delivery group.
// A cart without delivery groups is a host defect and fails the run.
func (s *deliveryOptionsDiscountService) GenerateRun(ctx context.Context, input *dto.RunInput) (*dto.FunctionResult, error) {
	if input == nil {
		return nil, ierr.NewError("delivery options input is nil").
			WithHint("Function input is required").
			Mark(ierr.ErrValidation)
	}

	ctx = types.WithTarget(ctx, types.FunctionTargetDeliveryOptions)
	log := s.Logger.WithContext(ctx)

	c := input.ToCart()
	group, ok := c.FirstDeliveryGroup()
	if !ok {
		return nil, ierr.NewError("no delivery groups found").
			WithHint("Shipping discounts need at least one delivery group in the cart").
			Mark(ierr.ErrInvalidOperation)
	}

	if !input.Discount.DiscountClasses.Has(types.DiscountClassShipping) {
		log.Debugw("discount does not declare the shipping class",
			"discount_classes", input.Discount.DiscountClasses)
		return dto.NewFunctionResult(), nil
	}

	selected, configuration := s.markets.resolve(ctx, input)
	if selected == nil {
		return dto.NewFunctionResult(), nil
	}

	message := newDiscountMessage(s.Config.Messages, input, configuration)
	candidates := lo.FilterMap(group.Options, func(option cart.DeliveryOption, _ int) (operation.Candidate, bool) {
		return s.optionCandidate(option, selected, message)
	})

	if len(candidates) == 0 {
		log.Debugw("no delivery discount for market",
			"market_id", selected.MarketID,
			"delivery_options", len(group.Options))
		return dto.NewFunctionResult(), nil
	}

	log.Infow("generated delivery discount operation",
		"market_id", selected.MarketID,
		"candidates", len(candidates))

	return dto.NewFunctionResult(operation.NewDeliveryDiscountsAdd(candidates)), nil
}

// optionCandidate resolves the delivery slot for one option, options without a positive value are dropped
func (s *deliveryOptionsDiscountService) optionCandidate(option cart.DeliveryOption, m *market.MarketConfig, message discountMessage) (operation.Candidate, bool) {
	value, ok := ResolveDiscountValue(m.Slot(types.DiscountSlotDelivery), types.DiscountSlotDelivery)
	if !ok {
		return operation.Candidate{}, false
	}

	currency := option.CurrencyCode
	if currency == "" {
		currency = m.CurrencyCode
	}

	return operation.Candidate{
		Message: message.For(value, types.DiscountSlotDelivery, currency),
		Targets: []operation.Target{operation.DeliveryOption(option.Handle)},
		Value:   value.OperationValue(types.DiscountSlotDelivery),
	}, true
}
