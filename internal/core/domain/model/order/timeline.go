package order

import (
	"fmt"
	"time"
)

// Actor identifies who caused a lifecycle event.
type Actor string

const (
	// ActorSeller marks events triggered by the seller (accept, pack, hand over).
	ActorSeller Actor = "seller"
	// ActorSystem marks events generated by the service itself, such as the
	// creation entry appended when an order is placed.
	ActorSystem Actor = "system"
	// ActorCustomer marks events triggered by the customer.
	ActorCustomer Actor = "customer"
)

// TimelineEvent is one entry in an order's append-only audit log. It records
// the status the order entered, when, a human-readable description, and the
// actor that caused the change.
//
// Events are value records: once appended to a timeline they are never
// modified, removed, or reordered.
type TimelineEvent struct {
	Status      Status
	Timestamp   time.Time
	Description string
	Actor       Actor
}

// transitionDescription returns the fixed human-readable description recorded
// on the timeline when an order enters the given status.
func transitionDescription(s Status) string {
	switch s {
	case StatusNew:
		return "Order placed"
	case StatusAccepted:
		return "Order accepted"
	case StatusDeclined:
		return "Order declined"
	case StatusPreparing:
		return "Order preparation started"
	case StatusReady:
		return "Order ready for pickup"
	case StatusAssigned:
		return "Delivery partner assigned"
	case StatusOutForDelivery:
		return "Order out for delivery"
	case StatusDelivered:
		return "Order delivered"
	case StatusCancelled:
		return "Order cancelled"
	default:
		return "Order updated"
	}
}

// assignmentDescription returns the timeline description for a delivery
// assignment, embedding the courier's name.
func assignmentDescription(courierName string) string {
	return fmt.Sprintf("Delivery partner %s assigned", courierName)
}
