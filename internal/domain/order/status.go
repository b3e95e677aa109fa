// internal/domain/order/status.go
package order

import "errors"

// Status represents the order status
type Status string

const (
	StatusPending        Status = "PENDING"
	StatusReceived       Status = "RECEIVED"
	StatusPreparing      Status = "PREPARING"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusCanceled       Status = "CANCELED"
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the transition table
var ErrInvalidTransition = errors.New("invalid order status transition")

// validTransitions is the fixed allowed-transition table. The happy path
// is linear; cancellation is reachable from every non-terminal state.
// DELIVERED and CANCELED are terminal.
var validTransitions = map[Status][]Status{
	StatusPending:        {StatusReceived, StatusCanceled},
	StatusReceived:       {StatusPreparing, StatusCanceled},
	StatusPreparing:      {StatusOutForDelivery, StatusCanceled},
	StatusOutForDelivery: {StatusDelivered, StatusCanceled},
	StatusDelivered:      {},
	StatusCanceled:       {},
}

// IsValid reports whether the status is one of the known values
func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsTerminal reports whether no further transition is possible
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0 && s.IsValid()
}

// CanTransition reports whether the transition table allows moving from
// one status to another
func CanTransition(from, to Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given one
func NextStatuses(from Status) []Status {
	next := validTransitions[from]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
