package services

import (
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
)

// EarningsWindow bounds an earnings projection to orders whose relevant
// lifecycle event happened in [From, To). A zero From or To leaves that side
// unbounded.
type EarningsWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether ts falls inside the window.
func (w EarningsWindow) Contains(ts time.Time) bool {
	if !w.From.IsZero() && ts.Before(w.From) {
		return false
	}
	if !w.To.IsZero() && !ts.Before(w.To) {
		return false
	}
	return true
}

// EarningsSummary is the wallet view over a set of orders.
//
// Completed earnings are orders that were delivered and paid; pending
// earnings are paid orders currently with a courier (assigned or out for
// delivery) whose sale is not final yet.
type EarningsSummary struct {
	Completed       kernel.Money
	CompletedOrders int
	Pending         kernel.Money
	PendingOrders   int
}

// EarningsProjector derives the seller's wallet summary from the order list.
//
// Business rules:
//   - delivered + payment received counts as a completed sale
//   - assigned or out_for_delivery + payment received counts as a pending earning
//   - all other combinations contribute nothing
//
// The projector reads order state only; it never mutates the orders.
//
// Example:
//
//	projector := services.NewEarningsProjector()
//	summary, err := projector.Project(orders, services.EarningsWindow{})
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("completed: %s over %d orders\n", summary.Completed, summary.CompletedOrders)
type EarningsProjector struct{}

// NewEarningsProjector creates a new EarningsProjector instance.
func NewEarningsProjector() EarningsProjector {
	return EarningsProjector{}
}

// Project computes the earnings summary for the given orders.
//
// An order is attributed to the window by the timestamp of the timeline event
// that made it count: the delivered event for completed earnings, the latest
// assignment or out-for-delivery event for pending earnings.
func (p EarningsProjector) Project(orders []*order.Order, window EarningsWindow) (EarningsSummary, error) {
	completed, err := kernel.NewMoney(0)
	if err != nil {
		return EarningsSummary{}, err
	}
	pending, err := kernel.NewMoney(0)
	if err != nil {
		return EarningsSummary{}, err
	}

	summary := EarningsSummary{Completed: completed, Pending: pending}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return EarningsSummary{}, err
		}
		if o.PaymentStatus() != order.PaymentReceived {
			continue
		}

		switch o.Status() {
		case order.StatusDelivered:
			ts, ok := lastEventTime(o, order.StatusDelivered)
			if !ok || !window.Contains(ts) {
				continue
			}
			summary.Completed, err = summary.Completed.Add(o.PaymentAmount())
			if err != nil {
				return EarningsSummary{}, err
			}
			summary.CompletedOrders++
		case order.StatusAssigned, order.StatusOutForDelivery:
			ts, ok := lastEventTime(o, o.Status())
			if !ok || !window.Contains(ts) {
				continue
			}
			summary.Pending, err = summary.Pending.Add(o.PaymentAmount())
			if err != nil {
				return EarningsSummary{}, err
			}
			summary.PendingOrders++
		}
	}

	return summary, nil
}

// lastEventTime returns the timestamp of the most recent timeline event with
// the given status.
func lastEventTime(o *order.Order, status order.Status) (time.Time, bool) {
	timeline := o.Timeline()
	for i := len(timeline) - 1; i >= 0; i-- {
		if timeline[i].Status == status {
			return timeline[i].Timestamp, true
		}
	}
	return time.Time{}, false
}
