// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and customer phone.
//
// Items and timeline events live in child tables keyed by OrderID. The
// delivery assignment is embedded: it is at most one per order and only
// present for orders that reached the assigned status.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number             string    `gorm:"uniqueIndex"`
	CustomerName       string
	CustomerPhone      string `gorm:"index"`
	Status             int    `gorm:"index"`
	PaymentStatus      int
	PaymentAmount      int64
	CancellationReason string
	CourierID          *uuid.UUID `gorm:"type:uuid"`
	CourierName        string
	CourierPhone       string
	AssignedAt         *time.Time
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
	Items              []ItemDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Timeline           []TimelineEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Quantity  int
	UnitPrice int64
	Packed    bool
}

// TableName specifies the database table name for order items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// TimelineEventDTO represents one append-only audit log row. Seq is the
// event's position within its order's timeline; the composite primary key
// (OrderID, Seq) makes re-saving an aggregate an upsert rather than a
// duplicate insert, which is safe because events are never rewritten.
type TimelineEventDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq         int       `gorm:"primaryKey"`
	Status      int
	Timestamp   time.Time
	Description string
	Actor       string
}

// TableName specifies the database table name for timeline events.
func (TimelineEventDTO) TableName() string {
	return "order_timeline_events"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including line items, the audit timeline, and the
// optional delivery assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
			Packed:    item.Packed(),
		})
	}

	timeline := make([]TimelineEventDTO, 0, len(aggregate.Timeline()))
	for seq, event := range aggregate.Timeline() {
		timeline = append(timeline, TimelineEventDTO{
			OrderID:     aggregate.ID().Bytes(),
			Seq:         seq,
			Status:      int(event.Status),
			Timestamp:   event.Timestamp,
			Description: event.Description,
			Actor:       string(event.Actor),
		})
	}

	dto := OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Number:             aggregate.Number(),
		CustomerName:       aggregate.Customer().Name(),
		CustomerPhone:      aggregate.Customer().Phone(),
		Status:             int(aggregate.Status()),
		PaymentStatus:      int(aggregate.PaymentStatus()),
		PaymentAmount:      aggregate.PaymentAmount().Amount(),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Items:              items,
		Timeline:           timeline,
	}

	if delivery := aggregate.Delivery(); delivery != nil {
		courierID := delivery.CourierID().Bytes()
		assignedAt := delivery.AssignedAt()
		dto.CourierID = &courierID
		dto.CourierName = delivery.CourierName()
		dto.CourierPhone = delivery.CourierPhone()
		dto.AssignedAt = &assignedAt
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items, timeline, and delivery
// assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone)
	if err != nil {
		return nil, err
	}

	paymentAmount, err := kernel.NewMoney(dto.PaymentAmount)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.Name, itemDTO.Quantity, unitPrice, itemDTO.Packed)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	timeline := make([]order.TimelineEvent, 0, len(dto.Timeline))
	for _, eventDTO := range dto.Timeline {
		timeline = append(timeline, order.TimelineEvent{
			Status:      order.Status(eventDTO.Status),
			Timestamp:   eventDTO.Timestamp,
			Description: eventDTO.Description,
			Actor:       order.Actor(eventDTO.Actor),
		})
	}

	var delivery *order.DeliveryAssignment
	if dto.CourierID != nil {
		courierID, deliveryErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		assignment, deliveryErr := order.NewDeliveryAssignment(
			courierID, dto.CourierName, dto.CourierPhone, *dto.AssignedAt)
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		delivery = &assignment
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:                 id,
		Number:             dto.Number,
		Customer:           customer,
		Items:              items,
		Status:             order.Status(dto.Status),
		PaymentStatus:      order.PaymentStatus(dto.PaymentStatus),
		PaymentAmount:      paymentAmount,
		Timeline:           timeline,
		Delivery:           delivery,
		CancellationReason: dto.CancellationReason,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
