package operation

import (
	"testing"

	"github.com/flexprice/marketdiscount/internal/types"
	"github.com/flexprice/marketdiscount/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationKind(t *testing.T) {
	product := NewProductDiscountsAdd(nil)
	order := NewOrderDiscountsAdd(Candidate{})
	delivery := NewDeliveryDiscountsAdd(nil)

	assert.Equal(t, KindProductDiscountsAdd, product.Kind())
	assert.Equal(t, KindOrderDiscountsAdd, order.Kind())
	assert.Equal(t, KindDeliveryDiscountsAdd, delivery.Kind())
	assert.Equal(t, Kind(""), Operation{}.Kind())

	assert.Equal(t, types.SelectionStrategyAll, product.Payload().SelectionStrategy)
	assert.Equal(t, types.SelectionStrategyFirst, order.Payload().SelectionStrategy)
	assert.Equal(t, types.SelectionStrategyAll, delivery.Payload().SelectionStrategy)
	assert.Nil(t, Operation{}.Payload())
}

func TestOperationWireShape(t *testing.T) {
	op := NewOrderDiscountsAdd(Candidate{
		Message: "10% OFF ORDER",
		Targets: []Target{OrderSubtotal()},
		Value:   Value{Percentage: &Percentage{Value: 10}},
	})

	data, err := utils.ToJSON(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"orderDiscountsAdd": {
			"candidates": [{
				"message": "10% OFF ORDER",
				"targets": [{"orderSubtotal": {"excludedCartLineIds": []}}],
				"value": {"percentage": {"value": 10}}
			}],
			"selectionStrategy": "FIRST"
		}
	}`, string(data))

	op = NewProductDiscountsAdd([]Candidate{{
		Message: "10.0 CAD OFF PRODUCT",
		Targets: []Target{CartLine("gid://shopify/CartLine/0")},
		Value:   Value{FixedAmount: &FixedAmount{Amount: "10.0"}},
	}})
	data, err = utils.ToJSON(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"productDiscountsAdd": {
			"candidates": [{
				"message": "10.0 CAD OFF PRODUCT",
				"targets": [{"cartLine": {"id": "gid://shopify/CartLine/0"}}],
				"value": {"fixedAmount": {"amount": "10.0"}}
			}],
			"selectionStrategy": "ALL"
		}
	}`, string(data))

	op = NewDeliveryDiscountsAdd([]Candidate{{
		Targets: []Target{DeliveryOption("standard")},
		Value:   Value{Percentage: &Percentage{Value: 12.5}},
	}})
	data, err = utils.ToJSON(op)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"deliveryDiscountsAdd": {
			"candidates": [{
				"targets": [{"deliveryOption": {"handle": "standard"}}],
				"value": {"percentage": {"value": 12.5}}
			}],
			"selectionStrategy": "ALL"
		}
	}`, string(data))
}
