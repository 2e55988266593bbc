package vehicle

import (
	"fmt"

	"transport/internal/pkg/errs"
)

// Status represents the availability state of a vehicle. Transitions are
// entered manually by dispatchers; order assignment never changes them.
type Status int

const (
	StatusUnknown Status = iota
	StatusAvailable
	StatusInUse
	StatusInRepair
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusInUse:     "InUse",
		StatusInRepair:  "InRepair",
	}
}

// StatusFromString parses a vehicle status from its canonical name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks the status is one of Available, InUse, InRepair.
func (s Status) Validate() error {
	switch s {
	case StatusAvailable, StatusInUse, StatusInRepair:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid vehicle status", s))
	}
}

// String returns the canonical status name.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
