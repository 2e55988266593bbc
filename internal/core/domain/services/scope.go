package services

import (
	"transport/internal/core/domain/model/order"
	"transport/internal/core/domain/model/user"
)

// AllBranches is the branch override sentinel admins use to see every
// branch. An empty override means the same thing.
const AllBranches = "all"

// Scope narrows a full order collection to the subset visible to a given
// user. Admins see everything, optionally narrowed to one branch via an
// explicit override; branch users always see exactly their own branch and
// any override is ignored.
//
// Filtering is pure and stable: the input slice is never mutated and the
// relative order of the surviving orders is preserved.
type Scope struct{}

// NewScope creates a Scope service.
func NewScope() Scope {
	return Scope{}
}

// VisibleOrders returns the orders the actor is permitted to see.
// branchOverride only applies to admins; AllBranches or "" disables it.
func (s Scope) VisibleOrders(orders []*order.Order, actor *user.User, branchOverride string) []*order.Order {
	if actor.IsAdmin() {
		if branchOverride == "" || branchOverride == AllBranches {
			return orders
		}
		return filterByBranch(orders, branchOverride)
	}

	if actor.Branch() == nil {
		return []*order.Order{}
	}
	return filterByBranch(orders, actor.Branch().String())
}

func filterByBranch(orders []*order.Order, branchID string) []*order.Order {
	visible := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Branch() != nil && o.Branch().String() == branchID {
			visible = append(visible, o)
		}
	}
	return visible
}
