// Package services provides domain services that derive read-only views from
// the order list in the seller order service. It implements computations that
// span many orders and therefore don't belong to a single aggregate root.
//
// The package includes:
//   - EarningsProjector: Computes completed and pending earnings from order and payment state
//   - CustomerAnalytics: Computes per-customer purchase aggregates
//
// Both services are pure projections: they never mutate the orders they read,
// and recomputing them from the same order list always yields the same result.
package services
