package order

import (
	"errors"
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/errs"
	"sellerhub/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrNumberIsRequired is returned when creating an order without a customer-facing number.
	ErrNumberIsRequired = errs.NewValueIsRequiredError("order number")
	// ErrItemsAreRequired is returned when creating an order with no line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("order items")
)

// Order represents one customer purchase moving through fulfillment. It is
// the aggregate root that owns the fulfillment status, the line items, the
// delivery assignment, and the append-only timeline.
//
// Order maintains these invariants:
//   - Status changes only through the transition table (see Status)
//   - Every successful transition appends exactly one timeline event
//   - The last timeline entry's status always equals the current status
//   - The timeline is never truncated or reordered
//   - A transition either applies fully (status, timeline, timestamps,
//     optional cancellation reason) or not at all
//
// All fields are private; mutation flows exclusively through the validated
// methods below.
type Order struct {
	// id is the internal identifier, stable and never reused
	id kernel.UUID

	// number is the customer-facing order number used for display
	number string

	// customer is who placed the order
	customer Customer

	// items are the order's line items in their original sequence
	items []*Item

	// status is the current position in the lifecycle state machine
	status Status

	// paymentStatus tracks money collection independently of status
	paymentStatus PaymentStatus

	// paymentAmount is the order total
	paymentAmount kernel.Money

	// timeline is the append-only audit log of status changes
	timeline []TimelineEvent

	// delivery is the courier assignment, nil until status reaches assigned
	delivery *DeliveryAssignment

	// cancellationReason is free text, set only on cancel or decline
	cancellationReason string

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates an order in status new with payment pending and a single
// creation event on the timeline (actor system).
//
// Parameters:
//   - id: Internal identifier (must be a valid UUID)
//   - number: Customer-facing order number (must be non-empty)
//   - customer: The customer who placed the order
//   - items: Line items (at least one required)
//   - paymentAmount: The order total
//
// Returns the order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	items []*Item,
	paymentAmount kernel.Money,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if number == "" {
		return nil, ErrNumberIsRequired
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if err := paymentAmount.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &Order{
		id:            id,
		number:        number,
		customer:      customer,
		items:         items,
		status:        StatusNew,
		paymentStatus: PaymentPending,
		paymentAmount: paymentAmount,
		timeline: []TimelineEvent{{
			Status:      StatusNew,
			Timestamp:   now,
			Description: transitionDescription(StatusNew),
			Actor:       ActorSystem,
		}},
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderParams carries the full persisted state of an order for
// reconstruction from storage.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Number             string
	Customer           Customer
	Items              []*Item
	Status             Status
	PaymentStatus      PaymentStatus
	PaymentAmount      kernel.Money
	Timeline           []TimelineEvent
	Delivery           *DeliveryAssignment
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// RestoreOrder reconstructs an order aggregate from persistence. It validates
// identity, status, and timeline consistency but does not re-run transition
// checks: the persisted state is trusted to have been produced by this
// aggregate.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := params.ID.Validate(); err != nil {
		return nil, err
	}
	if params.Number == "" {
		return nil, ErrNumberIsRequired
	}
	if err := params.Customer.Validate(); err != nil {
		return nil, err
	}
	if err := params.Status.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaymentStatus.Validate(); err != nil {
		return nil, err
	}
	if err := params.PaymentAmount.Validate(); err != nil {
		return nil, err
	}
	for _, item := range params.Items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	if params.Delivery != nil {
		if err := params.Delivery.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                 params.ID,
		number:             params.Number,
		customer:           params.Customer,
		items:              params.Items,
		status:             params.Status,
		paymentStatus:      params.PaymentStatus,
		paymentAmount:      params.PaymentAmount,
		timeline:           params.Timeline,
		delivery:           params.Delivery,
		cancellationReason: params.CancellationReason,
		createdAt:          params.CreatedAt,
		updatedAt:          params.UpdatedAt,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() string {
	return o.number
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the order's line items in their original sequence.
// The slice is a copy; the items themselves are shared and must only be
// mutated through the order's methods.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// PaymentAmount returns the order total.
func (o *Order) PaymentAmount() kernel.Money {
	return o.paymentAmount
}

// Timeline returns a copy of the order's audit log, oldest entry first.
func (o *Order) Timeline() []TimelineEvent {
	out := make([]TimelineEvent, len(o.timeline))
	copy(out, o.timeline)
	return out
}

// Delivery returns the courier assignment, or nil if no courier has been
// assigned yet.
func (o *Order) Delivery() *DeliveryAssignment {
	return o.delivery
}

// CancellationReason returns the free-text reason recorded when the order was
// cancelled or declined, or empty otherwise.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last modified.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanTransitionTo reports whether target is currently reachable in one step.
func (o *Order) CanTransitionTo(target Status) bool {
	return o.status.CanTransitionTo(target)
}

// AllowedTransitions returns the statuses reachable from the current status.
func (o *Order) AllowedTransitions() []Status {
	return o.status.AllowedTransitions()
}

// Transition moves the order to target if the transition table permits it.
//
// On success it sets the status, appends exactly one timeline event (fixed
// description for the target status, actor seller), and updates the
// last-modified timestamp. When target is cancelled or declined and notes is
// non-empty, notes is stored as the cancellation reason.
//
// On failure nothing is modified and an *InvalidTransitionError is returned
// naming both statuses.
func (o *Order) Transition(target Status, notes string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.timeline = append(o.timeline, TimelineEvent{
		Status:      newStatus,
		Timestamp:   now,
		Description: transitionDescription(newStatus),
		Actor:       ActorSeller,
	})
	o.updatedAt = now

	if (newStatus == StatusCancelled || newStatus == StatusDeclined) && notes != "" {
		o.cancellationReason = notes
	}

	return nil
}

// AssignDelivery attaches a courier to the order and moves it to assigned.
//
// The order must currently be in ready: the transition table only permits
// entering assigned from there, so any other current status yields an
// *InvalidTransitionError. On success the delivery assignment record is set
// and the appended timeline event's description embeds the courier's name.
func (o *Order) AssignDelivery(courierID kernel.UUID, courierName, courierPhone string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(StatusAssigned)
	if err != nil {
		return err
	}

	now := time.Now()
	assignment, err := NewDeliveryAssignment(courierID, courierName, courierPhone, now)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.delivery = &assignment
	o.timeline = append(o.timeline, TimelineEvent{
		Status:      newStatus,
		Timestamp:   now,
		Description: assignmentDescription(courierName),
		Actor:       ActorSeller,
	})
	o.updatedAt = now

	return nil
}

// SetItemPacked sets the packed flag on the named line item.
//
// This is a plain data mutation: it appends no timeline event and performs no
// status check. Packing is only meaningful while the order is preparing, but
// that restriction is deliberately not enforced here.
func (o *Order) SetItemPacked(itemID kernel.UUID, packed bool) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			item.setPacked(packed)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("item", itemID.String())
}

// SetPaymentStatus updates the payment status. Payment tracking is orthogonal
// to fulfillment, so no transition check applies and no timeline event is
// appended.
func (o *Order) SetPaymentStatus(paymentStatus PaymentStatus) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := paymentStatus.Validate(); err != nil {
		return err
	}

	o.paymentStatus = paymentStatus
	o.updatedAt = time.Now()
	return nil
}
