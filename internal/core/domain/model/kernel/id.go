package kernel

import (
	"fmt"
	"strings"

	"transport/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not created through one of
// the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// Kind tags an identifier with the entity family it belongs to. The tag is
// rendered as a short prefix on the string form, preserving the legacy
// identifier shape (ORD..., V..., D..., B..., U...) while the UUID suffix
// makes generation collision-free.
type Kind string

const (
	KindOrder   Kind = "ORD"
	KindVehicle Kind = "V"
	KindDriver  Kind = "D"
	KindBranch  Kind = "B"
	KindUser    Kind = "U"
)

func validKinds() map[Kind]struct{} {
	return map[Kind]struct{}{
		KindOrder:   {},
		KindVehicle: {},
		KindDriver:  {},
		KindBranch:  {},
		KindUser:    {},
	}
}

// Validate checks that the kind is one of the known entity families.
func (k Kind) Validate() error {
	if _, ok := validKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known entity kind", string(k)))
	}
	return nil
}

// ID is a value object identifying an entity of a specific kind. It combines
// a kind prefix with a random UUID (version 4), rendered as "<kind>-<uuid>".
//
// The zero value of ID is invalid and must be constructed via NewID or
// IDFromString. ID is immutable and safe for concurrent use.
//
// Example:
//
//	orderID := kernel.NewID(kernel.KindOrder)
//	fmt.Println(orderID.String()) // e.g. "ORD-550e8400-e29b-41d4-a716-446655440000"
type ID struct {
	kind Kind
	id   uuid.UUID
}

// NewID generates a fresh identifier for the given entity kind.
func NewID(kind Kind) ID {
	return ID{
		kind: kind,
		id:   uuid.New(),
	}
}

// IDFromString parses an identifier from its "<kind>-<uuid>" string form.
// The kind prefix must be a known entity kind and the suffix a valid UUID.
// Typically used when reconstructing entities from persistence or parsing
// identifiers from requests.
func IDFromString(s string) (ID, error) {
	sep := strings.IndexByte(s, '-')
	if sep <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q has no kind prefix", s))
	}

	kind := Kind(s[:sep])
	if err := kind.Validate(); err != nil {
		return ID{}, err
	}

	raw, err := uuid.Parse(s[sep+1:])
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	newID := ID{kind: kind, id: raw}
	if err = newID.Validate(); err != nil {
		return ID{}, err
	}

	return newID, nil
}

// IDFromStringOfKind parses an identifier and additionally checks that it
// belongs to the expected entity kind. Used at boundaries where an order
// identifier must not be silently accepted where, say, a branch is expected.
func IDFromStringOfKind(s string, kind Kind) (ID, error) {
	id, err := IDFromString(s)
	if err != nil {
		return ID{}, err
	}
	if id.kind != kind {
		return ID{}, errs.NewValueIsInvalidErrorWithCause(
			"id", fmt.Errorf("%q is not a %s identifier", s, kind))
	}
	return id, nil
}

// String returns the canonical "<kind>-<uuid>" representation.
func (i ID) String() string {
	return string(i.kind) + "-" + i.id.String()
}

// Kind returns the entity family of the identifier.
func (i ID) Kind() Kind {
	return i.kind
}

// IsEqual compares two identifiers by kind and value.
func (i ID) IsEqual(other ID) bool {
	return i.kind == other.kind && i.id == other.id
}

// Validate checks that the ID was properly constructed. Returns
// ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.id == uuid.Nil {
		return ErrIDIsNotConstructed
	}
	return i.kind.Validate()
}
