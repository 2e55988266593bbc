// Package order provides the transport order aggregate and its status values.
//
// The package includes:
//   - Order: the aggregate root carrying route, cargo and pricing details
//     plus weak references to vehicle, driver and branch
//   - Status: the Pending/InProgress/Completed operational state
//
// Key business rules:
//   - Orders must carry a valid identifier, non-empty route and cargo
//     fields, non-negative cargo weight and (when known) distance
//   - Statuses are freely editable between the three valid values;
//     dispatchers correct them manually, so no transition graph is enforced
//   - A branch reference, once assigned, is never cleared
package order
