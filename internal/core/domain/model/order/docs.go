// Package order implements the order aggregate and its lifecycle state
// machine for the seller order service.
//
// An order moves through a fixed set of fulfillment statuses:
//
//	new ──> accepted ──> preparing ──> ready ──> assigned ──> out_for_delivery ──> delivered
//	 │          │            │           │          │                │
//	 └> declined└────────────┴───────────┴──────────┴── cancelled <──┘
//
// Only the transitions encoded in the transition table are permitted;
// delivered, cancelled, and declined are terminal. Every successful
// transition appends exactly one event to the order's timeline, which is an
// append-only audit log whose last entry always matches the current status.
//
// Payment status is tracked independently of fulfillment status: an order can
// be paid before it is delivered or delivered before payment settles.
//
// The aggregate keeps private fields and mutates only through validated
// methods, so the transition table and the timeline invariants cannot be
// bypassed by callers.
package order
