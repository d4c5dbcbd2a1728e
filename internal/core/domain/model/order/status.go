package order

import (
	"errors"
	"fmt"

	"sellerhub/internal/pkg/errs"
)

// ErrInvalidTransition is the unwrap target for all rejected status
// transitions. Callers classify transition failures with errors.Is.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a requested status change that is not in the
// transition table. The message names both the current and the requested
// status so it can be surfaced to the seller as-is.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// status pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the fulfillment state of an order.
// It implements a state machine with a closed transition table to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──> Accepted ──> Preparing ──> Ready ──> Assigned ──> OutForDelivery ──> Delivered
//	 │
//	 └──> Declined
//
// Every non-terminal status except New can additionally transition to
// Cancelled. Delivered, Cancelled, and Declined are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status when an order is first placed.
	// Orders in this status are waiting for the seller to accept or decline.
	StatusNew

	// StatusAccepted indicates the seller has accepted the order.
	StatusAccepted

	// StatusDeclined indicates the seller rejected the order.
	// This is a terminal state.
	StatusDeclined

	// StatusPreparing indicates the order is being packed.
	// Line items may be marked packed/unpacked while in this status.
	StatusPreparing

	// StatusReady indicates the order is packed and awaiting a delivery
	// partner. Delivery assignment is only permitted from this status.
	StatusReady

	// StatusAssigned indicates a delivery partner has been assigned.
	StatusAssigned

	// StatusOutForDelivery indicates the delivery partner has picked up the
	// order and is en route to the customer.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer.
	// This is a terminal state.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before delivery.
	// This is a terminal state.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusNew:            "new",
		StatusAccepted:       "accepted",
		StatusDeclined:       "declined",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusAssigned:       "assigned",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// getTransitions returns the closed transition table of the lifecycle state
// machine. A missing key or an empty slice means no outgoing transitions.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusNew:            {StatusAccepted, StatusDeclined},
		StatusAccepted:       {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusAssigned, StatusCancelled},
		StatusAssigned:       {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDeclined:       {},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown or empty values.
//
// This function is used when reconstructing orders from persistence and when
// parsing transition targets from HTTP requests.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle
// statuses. StatusUnknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "out_for_delivery".
// Invalid values return "unknown". This method implements the fmt.Stringer
// interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered, Cancelled, and Declined are terminal.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowedTransitions returns the statuses reachable from s in one step.
// The returned slice is a copy; mutating it does not affect the table.
// Invalid statuses return an empty slice.
func (s Status) AllowedTransitions() []Status {
	targets := getTransitions()[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range getTransitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the (s, target) edge against the transition table
// and returns the new status.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (StatusUnknown, *InvalidTransitionError) otherwise
//
// This method is used by Order.Transition to enforce state transitions.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return StatusUnknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
