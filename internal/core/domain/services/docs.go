// Package services provides domain services that implement business rules
// spanning whole order collections rather than a single aggregate.
//
// The package includes:
//   - Tariff: the per-kilometer pricing rule keyed by vehicle type
//   - Scope: role/branch based visibility filtering of orders
//   - MetricsCalculator: dashboard aggregation over a scoped order set
//
// All three are stateless and deterministic; callers pass the order
// collection explicitly and results are recomputed on every invocation.
package services
