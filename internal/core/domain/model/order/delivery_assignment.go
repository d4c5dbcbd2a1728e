package order

import (
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/errs"
	"sellerhub/internal/pkg/guard"
)

// Domain errors for delivery assignment construction.
var (
	// ErrCourierNameIsRequired is returned when assigning a courier without a name.
	ErrCourierNameIsRequired = errs.NewValueIsRequiredError("courier name")
	// ErrCourierPhoneIsRequired is returned when assigning a courier without a phone number.
	ErrCourierPhoneIsRequired = errs.NewValueIsRequiredError("courier phone")
	// ErrDeliveryAssignmentIsNotConstructed is returned when using an improperly
	// initialized DeliveryAssignment.
	ErrDeliveryAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
		"delivery assignment must be created via NewDeliveryAssignment constructor")
)

// DeliveryAssignment records which courier an order was handed to and when.
// It is an immutable value object that exists only once an order has reached
// the assigned status.
type DeliveryAssignment struct {
	courierID    kernel.UUID
	courierName  string
	courierPhone string
	assignedAt   time.Time
	guard        guard.ConstructorGuard
}

// NewDeliveryAssignment creates a delivery assignment record.
// All courier fields are required; assignedAt must be non-zero.
func NewDeliveryAssignment(
	courierID kernel.UUID,
	courierName string,
	courierPhone string,
	assignedAt time.Time,
) (DeliveryAssignment, error) {
	if err := courierID.Validate(); err != nil {
		return DeliveryAssignment{}, err
	}
	if courierName == "" {
		return DeliveryAssignment{}, ErrCourierNameIsRequired
	}
	if courierPhone == "" {
		return DeliveryAssignment{}, ErrCourierPhoneIsRequired
	}
	if assignedAt.IsZero() {
		return DeliveryAssignment{}, errs.NewValueIsRequiredError("assignedAt")
	}

	return DeliveryAssignment{
		courierID:    courierID,
		courierName:  courierName,
		courierPhone: courierPhone,
		assignedAt:   assignedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was created through NewDeliveryAssignment.
func (d DeliveryAssignment) Validate() error {
	return d.guard.Validate(ErrDeliveryAssignmentIsNotConstructed)
}

// CourierID returns the assigned courier's identifier.
func (d DeliveryAssignment) CourierID() kernel.UUID {
	return d.courierID
}

// CourierName returns the assigned courier's display name.
func (d DeliveryAssignment) CourierName() string {
	return d.courierName
}

// CourierPhone returns the assigned courier's contact number.
func (d DeliveryAssignment) CourierPhone() string {
	return d.courierPhone
}

// AssignedAt returns when the courier was assigned.
func (d DeliveryAssignment) AssignedAt() time.Time {
	return d.assignedAt
}
