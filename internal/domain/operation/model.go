package operation

import (
	"github.com/flexprice/marketdiscount/internal/types"
)

// Kind names the variant held by an Operation
type Kind string

const (
	KindProductDiscountsAdd  Kind = "productDiscountsAdd"
	KindOrderDiscountsAdd    Kind = "orderDiscountsAdd"
	KindDeliveryDiscountsAdd Kind = "deliveryDiscountsAdd"
)

// Operation is a tagged variant, exactly one field is set
type Operation struct {
	ProductDiscountsAdd  *DiscountsAdd `json:"productDiscountsAdd,omitempty"`
	OrderDiscountsAdd    *DiscountsAdd `json:"orderDiscountsAdd,omitempty"`
	DeliveryDiscountsAdd *DiscountsAdd `json:"deliveryDiscountsAdd,omitempty"`
}

// DiscountsAdd adds discount candidates with a selection strategy
type DiscountsAdd struct {
	Candidates        []Candidate             `json:"candidates"`
	SelectionStrategy types.SelectionStrategy `json:"selectionStrategy"`
}

// Candidate is one discount the host may apply
type Candidate struct {
	Message string   `json:"message,omitempty"`
	Targets []Target `json:"targets"`
	Value   Value    `json:"value"`
}

// Target is a tagged variant, exactly one field is set
type Target struct {
	CartLine       *CartLineTarget       `json:"cartLine,omitempty"`
	OrderSubtotal  *OrderSubtotalTarget  `json:"orderSubtotal,omitempty"`
	DeliveryOption *DeliveryOptionTarget `json:"deliveryOption,omitempty"`
}

type CartLineTarget struct {
	ID string `json:"id"`
}

type OrderSubtotalTarget struct {
	ExcludedCartLineIDs []string `json:"excludedCartLineIds"`
}

type DeliveryOptionTarget struct {
	Handle string `json:"handle"`
}

// Value is a tagged variant, exactly one field is set
type Value struct {
	Percentage  *Percentage  `json:"percentage,omitempty"`
	FixedAmount *FixedAmount `json:"fixedAmount,omitempty"`
}

type Percentage struct {
	Value float64 `json:"value"`
}

// FixedAmount carries the amount as a decimal string, e.g. "10.0"
type FixedAmount struct {
	Amount string `json:"amount"`
}

func NewProductDiscountsAdd(candidates []Candidate) Operation {
	return Operation{ProductDiscountsAdd: &DiscountsAdd{
		Candidates:        candidates,
		SelectionStrategy: types.SelectionStrategyAll,
	}}
}

func NewOrderDiscountsAdd(candidate Candidate) Operation {
	return Operation{OrderDiscountsAdd: &DiscountsAdd{
		Candidates:        []Candidate{candidate},
		SelectionStrategy: types.SelectionStrategyFirst,
	}}
}

func NewDeliveryDiscountsAdd(candidates []Candidate) Operation {
	return Operation{DeliveryDiscountsAdd: &DiscountsAdd{
		Candidates:        candidates,
		SelectionStrategy: types.SelectionStrategyAll,
	}}
}

func CartLine(id string) Target {
	return Target{CartLine: &CartLineTarget{ID: id}}
}

// OrderSubtotal targets the whole order subtotal without exclusions
func OrderSubtotal() Target {
	return Target{OrderSubtotal: &OrderSubtotalTarget{ExcludedCartLineIDs: []string{}}}
}

func DeliveryOption(handle string) Target {
	return Target{DeliveryOption: &DeliveryOptionTarget{Handle: handle}}
}

// Kind returns the variant the operation holds
func (o Operation) Kind() Kind {
	switch {
	case o.ProductDiscountsAdd != nil:
		return KindProductDiscountsAdd
	case o.OrderDiscountsAdd != nil:
		return KindOrderDiscountsAdd
	case o.DeliveryDiscountsAdd != nil:
		return KindDeliveryDiscountsAdd
	default:
		return ""
	}
}

// Payload returns the DiscountsAdd of whichever variant is set
func (o Operation) Payload() *DiscountsAdd {
	switch o.Kind() {
	case KindProductDiscountsAdd:
		return o.ProductDiscountsAdd
	case KindOrderDiscountsAdd:
		return o.OrderDiscountsAdd
	case KindDeliveryDiscountsAdd:
		return o.DeliveryDiscountsAdd
	default:
		return nil
	}
}
