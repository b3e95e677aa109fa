// internal/domain/order/status_test.go
package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionHappyPath(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusReceived))
	assert.True(t, CanTransition(StatusReceived, StatusPreparing))
	assert.True(t, CanTransition(StatusPreparing, StatusOutForDelivery))
	assert.True(t, CanTransition(StatusOutForDelivery, StatusDelivered))
}

func TestCanTransitionCancelFromNonTerminal(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusReceived, StatusPreparing, StatusOutForDelivery} {
		assert.True(t, CanTransition(from, StatusCanceled), "expected %s -> CANCELED to be allowed", from)
	}
}

func TestCanTransitionSkippingStatesRejected(t *testing.T) {
	assert.False(t, CanTransition(StatusPending, StatusPreparing))
	assert.False(t, CanTransition(StatusPending, StatusDelivered))
	assert.False(t, CanTransition(StatusReceived, StatusOutForDelivery))
}

func TestCanTransitionBackwardsRejected(t *testing.T) {
	assert.False(t, CanTransition(StatusPreparing, StatusReceived))
	assert.False(t, CanTransition(StatusDelivered, StatusOutForDelivery))
}

func TestCanTransitionSelfRejected(t *testing.T) {
	for status := range validTransitions {
		assert.False(t, CanTransition(status, status), "expected %s -> %s to be rejected", status, status)
	}
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	targets := []Status{StatusPending, StatusReceived, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCanceled}

	for _, from := range []Status{StatusDelivered, StatusCanceled} {
		assert.True(t, from.IsTerminal())
		for _, to := range targets {
			assert.False(t, CanTransition(from, to), "expected %s -> %s to be rejected", from, to)
		}
	}
}

func TestNextStatusesFromPending(t *testing.T) {
	assert.Equal(t, []Status{StatusReceived, StatusCanceled}, NextStatuses(StatusPending))
}

func TestNextStatusesFromTerminal(t *testing.T) {
	assert.Empty(t, NextStatuses(StatusDelivered))
	assert.Empty(t, NextStatuses(StatusCanceled))
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCanceled.IsValid())
	assert.False(t, Status("SHIPPED").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCanceled.IsTerminal())
	assert.False(t, Status("SHIPPED").IsTerminal())
}

func TestPaymentTypeIsValid(t *testing.T) {
	assert.True(t, PaymentPix.IsValid())
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentCredit.IsValid())
	assert.True(t, PaymentDebit.IsValid())
	assert.False(t, PaymentType("CHECK").IsValid())
}
