package order

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// orders follow the fulfillment workflow and nothing else.
//
// State transitions:
//
//	Pending ──┬──> Shipped ──> Delivered
//	          │
//	          └──> Cancelled
//
// Delivered and Cancelled are terminal. Stock is decremented only on the
// Pending -> Shipped transition; Delivered has no stock side effects.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Only pending orders may have their item set edited.
	Pending

	// Shipped indicates stock has left the warehouse for this order.
	// The transition into Shipped decrements each item's product stock.
	Shipped

	// Delivered indicates the order reached its destination.
	// This is a terminal state with no stock side effects.
	Delivered

	// Cancelled indicates the order was abandoned while still pending.
	// This is a terminal state; no stock was ever decremented.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// transitionTable enumerates the allowed status transitions.
// A status absent from the table is terminal.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending: {Shipped, Cancelled},
		Shipped: {Delivered},
	}
}

// StatusFromString parses a status token into a Status value.
// Unrecognized tokens are rejected rather than written through, so free-text
// statuses can never enter the system.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical token of the status.
//
// Returns "PENDING", "SHIPPED", "DELIVERED", or "CANCELLED" for valid
// statuses, and "UNKNOWN" for invalid values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s Status) IsTerminal() bool {
	targets, ok := transitionTable()[s]
	return !ok || len(targets) == 0
}

// ValidateTransition checks whether the transition to target is allowed
// without performing it.
//
// Allowed transitions:
//   - Pending -> Shipped, Pending -> Cancelled
//   - Shipped -> Delivered
//
// Everything else, including any transition out of Delivered or Cancelled,
// fails with an InvalidStateError.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidStateErrorWithCause("order status",
			fmt.Errorf("%s is terminal", s))
	}

	for _, allowed := range transitionTable()[s] {
		if allowed == target {
			return nil
		}
	}

	return errs.NewInvalidStateErrorWithCause("order status",
		fmt.Errorf("%s cannot transition to %s", s, target))
}

// TransitionTo performs the transition to target.
//
// Returns (target, nil) on a valid transition, or (0, error) if the
// transition is not allowed from the current status.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.ValidateTransition(target); err != nil {
		return 0, err
	}

	return target, nil
}
