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

// CartLinesDiscountService computes product and order discounts for the cart lines target
type CartLinesDiscountService interface {
	GenerateRun(ctx context.Context, input *dto.RunInput) (*dto.FunctionResult, error)
}

type cartLinesDiscountService struct {
	ServiceParams
	markets *marketResolver
}

// NewCartLinesDiscountService creates a new cart lines discount service
func NewCartLinesDiscountService(params ServiceParams) (CartLinesDiscountService, error) {
	markets, err := newMarketResolver(params, params.Config.Selection.CartLines)
	if err != nil {
		return nil, err
	}
	return &cartLinesDiscountService{
		ServiceParams: params,
		markets:       markets,
	}, nil
}

// GenerateRun returns the order discount first and the product discount second, each only
// when the discount declares its class and the selected market gives it a positive value.
// A cart without lines yields no operations.
func (s *cartLinesDiscountService) GenerateRun(ctx context.Context, input *dto.RunInput) (*dto.FunctionResult, error) {
	if input == nil {
		return nil, ierr.NewError("cart lines input is nil").
			WithHint("Function input is required").
			Mark(ierr.ErrValidation)
	}

	ctx = types.WithTarget(ctx, types.FunctionTargetCartLines)
	log := s.Logger.WithContext(ctx)

	c := input.ToCart()
	if !c.HasLines() {
		log.Infow("cart has no lines, nothing to discount")
		return dto.NewFunctionResult(), nil
	}

	classes := input.Discount.DiscountClasses
	if !classes.HasAny(types.DiscountClassOrder, types.DiscountClassProduct) {
		log.Debugw("discount declares neither order nor product class",
			"discount_classes", classes)
		return dto.NewFunctionResult(), nil
	}

	selected, configuration := s.markets.resolve(ctx, input)
	if selected == nil {
		return dto.NewFunctionResult(), nil
	}

	message := newDiscountMessage(s.Config.Messages, input, configuration)
	operations := make([]operation.Operation, 0, 2)

	if classes.Has(types.DiscountClassOrder) {
		if op, ok := s.orderOperation(selected, message); ok {
			operations = append(operations, op)
		}
	}

	if classes.Has(types.DiscountClassProduct) {
		if op, ok := s.productOperation(c, selected, message); ok {
			operations = append(operations, op)
		} else {
			log.Debugw("no product discount for market",
				"market_id", selected.MarketID,
				"exclude_on_sale", selected.ExcludeOnSale)
		}
	}

	log.Infow("generated cart lines discount operations",
		"market_id", selected.MarketID,
		"operations", len(operations))

	return dto.NewFunctionResult(operations...), nil
}

func (s *cartLinesDiscountService) orderOperation(m *market.MarketConfig, message discountMessage) (operation.Operation, bool) {
	value, ok := ResolveDiscountValue(m.Slot(types.DiscountSlotOrder), types.DiscountSlotOrder)
	if !ok {
		return operation.Operation{}, false
	}

	return operation.NewOrderDiscountsAdd(operation.Candidate{
		Message: message.For(value, types.DiscountSlotOrder, m.CurrencyCode),
		Targets: []operation.Target{operation.OrderSubtotal()},
		Value:   value.OperationValue(types.DiscountSlotOrder),
	}), true
}

// productOperation emits one candidate per eligible line so fixed amounts apply to each line
func (s *cartLinesDiscountService) productOperation(c *cart.Cart, m *market.MarketConfig, message discountMessage) (operation.Operation, bool) {
	value, ok := ResolveDiscountValue(m.Slot(types.DiscountSlotCartLine), types.DiscountSlotCartLine)
	if !ok {
		return operation.Operation{}, false
	}

	eligible := c.EligibleLines(m.ExcludeOnSale)
	if len(eligible) == 0 {
		return operation.Operation{}, false
	}

	text := message.For(value, types.DiscountSlotCartLine, m.CurrencyCode)
	opValue := value.OperationValue(types.DiscountSlotCartLine)

	candidates := lo.Map(eligible, func(line cart.CartLine, _ int) operation.Candidate {
		return operation.Candidate{
			Message: text,
			Targets: []operation.Target{operation.CartLine(line.ID)},
			Value:   opValue,
		}
	})

	return operation.NewProductDiscountsAdd(candidates), true
}
