package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range OrderStatuses() {
		parsed, err := ParseOrderStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	// Case-insensitive
	parsed, err := ParseOrderStatus("SHIPPED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, parsed)

	_, err = ParseOrderStatus("returned")
	assert.Error(t, err)
	_, err = ParseOrderStatus("")
	assert.Error(t, err)
}

func TestParsePaymentStatus(t *testing.T) {
	parsed, err := ParsePaymentStatus("Verified")
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusVerified, parsed)

	_, err = ParsePaymentStatus("refunded")
	assert.Error(t, err)
}

func TestParsePaymentMethod(t *testing.T) {
	// Methods are normalized to upper case
	parsed, err := ParsePaymentMethod("upi")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodUPI, parsed)

	parsed, err = ParsePaymentMethod("bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, PaymentMethodBankTransfer, parsed)

	_, err = ParsePaymentMethod("crypto")
	assert.Error(t, err)
}

func TestComputeTotal(t *testing.T) {
	assert.Zero(t, ComputeTotal(nil))

	items := []CartItem{
		{Price: 500, Quantity: 2},
		{Price: 199.5, Quantity: 1},
	}
	assert.InDelta(t, 1199.5, ComputeTotal(items), 0.001)
}
