package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountClassesHas(t *testing.T) {
	classes := DiscountClasses{DiscountClassOrder, "product"}

	assert.True(t, classes.Has(DiscountClassOrder))
	assert.True(t, classes.Has(DiscountClassProduct))
	assert.False(t, classes.Has(DiscountClassShipping))
	assert.True(t, classes.HasAny(DiscountClassShipping, DiscountClassProduct))
	assert.False(t, DiscountClasses(nil).HasAny(DiscountClassOrder, DiscountClassProduct))
}

func TestDiscountValueTypeNormalize(t *testing.T) {
	assert.Equal(t, DiscountValueTypeFixed, DiscountValueType("fixed").Normalize())
	assert.Equal(t, DiscountValueTypeFixed, DiscountValueType(" FIXED ").Normalize())
	assert.Equal(t, DiscountValueTypePercentage, DiscountValueType("").Normalize())
	assert.Equal(t, DiscountValueTypePercentage, DiscountValueType("bogus").Normalize())
}

func TestDiscountSlot(t *testing.T) {
	assert.Equal(t, "OFF PRODUCT", DiscountSlotCartLine.MessageSuffix())
	assert.Equal(t, "OFF ORDER", DiscountSlotOrder.MessageSuffix())
	assert.Equal(t, "OFF DELIVERY", DiscountSlotDelivery.MessageSuffix())
	assert.Equal(t, int32(1), DiscountSlotCartLine.FixedAmountPlaces())
	assert.Equal(t, int32(1), DiscountSlotOrder.FixedAmountPlaces())
	assert.Equal(t, int32(2), DiscountSlotDelivery.FixedAmountPlaces())
}
