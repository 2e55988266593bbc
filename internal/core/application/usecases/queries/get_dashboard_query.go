package queries

import (
	"errors"
	"fmt"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
	"transport/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery computes the dashboard counters over the orders visible
// to the acting user: active orders, today's deliveries and the running
// month's revenue, all relative to local calendar time.
type GetDashboardQuery struct {
	actorID      kernel.ID
	branchFilter string

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query for the given actor.
func NewGetDashboardQuery(actorID kernel.ID, branchFilter string) (GetDashboardQuery, error) {
	if err := actorID.Validate(); err != nil {
		return GetDashboardQuery{}, err
	}
	if actorID.Kind() != kernel.KindUser {
		return GetDashboardQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"actorId", fmt.Errorf("%s is not a user identifier", actorID))
	}

	return GetDashboardQuery{
		actorID:      actorID,
		branchFilter: branchFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// ActorID returns the identifier of the user asking for the dashboard.
func (q GetDashboardQuery) ActorID() kernel.ID { return q.actorID }

// BranchFilter returns the requested branch narrowing, if any.
func (q GetDashboardQuery) BranchFilter() string { return q.branchFilter }

// GetDashboardQueryResponse carries the three dashboard counters. Revenue is
// pre-formatted to two decimal places for direct display.
type GetDashboardQueryResponse struct {
	ActiveCount     int
	TodayDeliveries int
	MonthlyRevenue  string
}
