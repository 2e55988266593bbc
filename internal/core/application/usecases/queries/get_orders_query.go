package queries

import (
	"errors"
	"fmt"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/core/domain/model/order"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// UnassignedLabel is rendered in place of a vehicle, driver or branch name
// when the order carries no reference or the referenced record is gone.
const UnassignedLabel = "—"

// GetOrdersQuery retrieves the orders visible to the acting user, in the
// order they were registered. Admins may narrow the view to one branch with
// branchFilter; branch users always see exactly their own branch. An optional
// status filter narrows the result further.
type GetOrdersQuery struct {
	actorID      kernel.ID
	branchFilter string
	statusFilter string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the actor's visible orders.
// branchFilter may be empty, the all-branches sentinel or a branch
// identifier. statusFilter may be empty or a valid status name.
func NewGetOrdersQuery(actorID kernel.ID, branchFilter, statusFilter string) (GetOrdersQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if actorID.Kind() != kernel.KindUser {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"actorId", fmt.Errorf("%s is not a user identifier", actorID))
	}

	if statusFilter != "" {
		if _, err := order.StatusFromString(statusFilter); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actorID:      actorID,
		branchFilter: branchFilter,
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the user asking for the list.
func (q GetOrdersQuery) ActorID() kernel.ID { return q.actorID }

// BranchFilter returns the requested branch narrowing, if any.
func (q GetOrdersQuery) BranchFilter() string { return q.branchFilter }

// StatusFilter returns the requested status narrowing, if any.
func (q GetOrdersQuery) StatusFilter() string { return q.statusFilter }

// GetOrdersQueryResponse is one row of the order list: the order's own
// fields plus resolved display names and the computed revenue.
type GetOrdersQueryResponse struct {
	ID              string
	ClientName      string
	PickupAddress   string
	DeliveryAddress string
	PickupAt        time.Time
	DeliveryAt      time.Time
	CargoType       string
	CargoWeight     float64
	VehicleType     string
	Status          string
	DistanceKm      *float64
	VehicleID       string
	VehicleName     string
	DriverID        string
	DriverName      string
	BranchID        string
	BranchName      string
	Revenue         string
}
