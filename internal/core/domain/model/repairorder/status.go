package repairorder

import (
	"fmt"

	"autoshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a repair order.
// It implements a forward-only state machine:
//
//	Pending ──> Inspecting ──> Quoted ──> Repairing ──> Completed ──> Delivered
//	               │  ▲          │  ▲
//	               └──┘          └──┘
//	        (re-inspection)  (re-quoting)
//
// Inspecting and Quoted allow self-transitions so an inspection sheet or a
// quote can be replaced before the work moves on. Every other transition
// outside the table is rejected; the data layer never accepts an arbitrary
// status write.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at intake. The vehicle has
	// entered the shop but nobody has looked at it yet.
	Pending

	// Inspecting indicates the inspection sheet is being filled in.
	Inspecting

	// Quoted indicates repair items have been priced and the quote is
	// awaiting customer approval.
	Quoted

	// Repairing indicates the quoted work is in progress.
	Repairing

	// Completed indicates all repair work has finished.
	Completed

	// Delivered indicates the vehicle has been handed back to the customer.
	// This is the final state.
	Delivered
)

// getStatusStrings returns the string representation for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Inspecting: "inspecting",
		Quoted:     "quoted",
		Repairing:  "repairing",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns only valid Status values, used for parsing
// and validation. Unknown is intentionally excluded.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Inspecting: "inspecting",
		Quoted:     "quoted",
		Repairing:  "repairing",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// getStatusTransitions returns the allowed next states for each status.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Inspecting},
		Inspecting: {Inspecting, Quoted},
		Quoted:     {Quoted, Repairing},
		Repairing:  {Completed},
		Completed:  {Delivered},
		Delivered:  {},
	}
}

// StatusFromString parses a status name as it appears on the wire and in the
// database. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether moving from s to next is allowed by the
// transition table, without performing the transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition from s to next.
//
// Returns:
//   - (next, nil) when the transition is in the table
//   - (Unknown, error) when next is invalid or the move is not allowed
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", s, next),
		)
	}

	return next, nil
}
