// internal/models/common_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBRoundTrip(t *testing.T) {
	original := JSONB{"street": "Main St 1", "zip": "1000-001"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned JSONB
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	// Drivers may hand the payload back as a string.
	var fromString JSONB
	require.NoError(t, fromString.Scan(`{"street":"Main St 1"}`))
	assert.Equal(t, "Main St 1", fromString["street"])
}

func TestJSONBNil(t *testing.T) {
	var j JSONB
	value, err := j.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	var scanned JSONB
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled} {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, OrderStatus("archived").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatusTransitions(t *testing.T) {
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusPaid))
	assert.True(t, OrderStatusPending.CanTransitionTo(OrderStatusCancelled))
	assert.True(t, OrderStatusPaid.CanTransitionTo(OrderStatusShipped))

	// Shipping goes through paid; a direct pending→shipped write is an
	// off-table override.
	assert.False(t, OrderStatusPending.CanTransitionTo(OrderStatusShipped))

	// Terminal states only allow self-transitions.
	assert.True(t, OrderStatusShipped.CanTransitionTo(OrderStatusShipped))
	assert.False(t, OrderStatusShipped.CanTransitionTo(OrderStatusPending))
	assert.False(t, OrderStatusCancelled.CanTransitionTo(OrderStatusShipped))
}
