package driver

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the duty state of a driver. Transitions are entered
// manually; order assignment never changes them.
type Status int

const (
	StatusUnknown Status = iota
	StatusAvailable
	StatusOnRoute
	StatusOnLeave
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusOnRoute:   "OnRoute",
		StatusOnLeave:   "OnLeave",
	}
}

// StatusFromString parses a driver status from its canonical name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid driver status", s))
}

// Validate checks the status is one of Available, OnRoute, OnLeave.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusOnRoute, StatusOnLeave:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid driver status", s))
	}
}

// String returns the canonical status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
