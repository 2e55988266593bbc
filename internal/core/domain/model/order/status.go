package order

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the operational state of a transport order.
//
// Unlike a strict workflow state machine, any valid status may be set on an
// order at any time: dispatchers correct statuses manually, so Pending,
// InProgress and Completed are all reachable from each other.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial state of a freshly registered order.
	StatusPending

	// StatusInProgress indicates the order is currently being carried out.
	StatusInProgress

	// StatusCompleted indicates the cargo has been delivered.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
	}
}

// StatusFromString parses a status from its canonical name.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of Pending, InProgress,
// Completed. StatusUnknown and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActive reports whether an order in this status still demands work.
// Pending and InProgress orders are active; Completed orders are not.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}
