package core_test

import (
	"testing"

	"github.com/prior-it/storefront/core"
	"github.com/stretchr/testify/assert"
)

func TestProductID(t *testing.T) {
	t.Run("ok: positive ids", func(t *testing.T) {
		id, err := core.ParseProductID("42")
		assert.Nil(t, err)
		assert.Equal(t, core.ProductID(42), id)
		assert.Equal(t, "42", id.String())
	})

	t.Run("err: invalid ids", func(t *testing.T) {
		for _, value := range []string{"", "0", "-1", "abc", "4.2"} {
			_, err := core.ParseProductID(value)
			assert.ErrorIs(t, err, core.ErrInvalidProductID, "%q should not be a valid product id", value)
		}
	})
}

func TestCartAction(t *testing.T) {
	for _, value := range []string{"add", "remove"} {
		action, err := core.ParseCartAction(value)
		assert.Nil(t, err)
		assert.Equal(t, value, string(action))
	}
	_, err := core.ParseCartAction("delete")
	assert.ErrorIs(t, err, core.ErrInvalidCartAction)
}

func TestStates(t *testing.T) {
	options := core.StateOptions()
	assert.Len(t, options, 28, "placeholder plus 27 federative units")
	assert.Equal(t, core.StateCode(""), options[0].Code)

	code, err := core.ParseStateCode(" sp ")
	assert.Nil(t, err)
	assert.Equal(t, core.StateCode("SP"), code)
	assert.Equal(t, "São Paulo", code.Name())
	assert.Equal(t, "Mato Grosso do Sul", core.StateCode("MS").Name())

	_, err = core.ParseStateCode("XX")
	assert.NotNil(t, err)
}

func TestShippingOption(t *testing.T) {
	t.Run("ok: successful quote", func(t *testing.T) {
		option := core.ShippingOption{ServiceCode: core.ServiceSEDEX, Price: "25,90", DaysToDeliver: "3", ErrorCode: "0"}
		assert.False(t, option.Failed())
		assert.Empty(t, option.ErrorText())
		amount, err := option.Amount()
		assert.Nil(t, err)
		assert.Equal(t, core.Money(2590), amount)
		days, err := option.Days()
		assert.Nil(t, err)
		assert.Equal(t, 3, days)
		assert.Equal(t, "SEDEX", core.ShippingServiceName(option.ServiceCode))
	})

	t.Run("err: failed quote uses the error mapping", func(t *testing.T) {
		option := core.ShippingOption{ServiceCode: core.ServicePAC, ErrorCode: "-6", ErrorMessage: "raw"}
		assert.True(t, option.Failed())
		assert.Equal(t, core.MessageRegionNotServed, option.ErrorText())
	})
}
