package http

import "time"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one line item of an incoming order.
type OrderItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	Number        string             `json:"number"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemRequest `json:"items"`
	PaymentAmount int64              `json:"paymentAmount"`
}

// CreateOrderResponse returns the identifier of the newly placed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// TransitionRequest asks for a fulfillment status change.
type TransitionRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// AssignDeliveryRequest attaches a delivery partner to a ready order.
type AssignDeliveryRequest struct {
	CourierID    string `json:"courierId"`
	CourierName  string `json:"courierName"`
	CourierPhone string `json:"courierPhone"`
}

// SetItemPackedRequest flips the packed flag on a line item.
type SetItemPackedRequest struct {
	Packed bool `json:"packed"`
}

// SetPaymentStatusRequest records a payment state change.
type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// OrderItemResponse is one line item in an order detail response.
type OrderItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Packed    bool   `json:"packed"`
}

// TimelineEventResponse is one audit log entry in an order detail response.
type TimelineEventResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Actor       string    `json:"actor"`
}

// DeliveryResponse is the delivery assignment in an order detail response.
type DeliveryResponse struct {
	CourierID    string    `json:"courierId"`
	CourierName  string    `json:"courierName"`
	CourierPhone string    `json:"courierPhone"`
	AssignedAt   time.Time `json:"assignedAt"`
}

// OrderResponse is the full detail of one order.
type OrderResponse struct {
	ID                 string                  `json:"id"`
	Number             string                  `json:"number"`
	CustomerName       string                  `json:"customerName"`
	CustomerPhone      string                  `json:"customerPhone"`
	Status             string                  `json:"status"`
	PaymentStatus      string                  `json:"paymentStatus"`
	PaymentAmount      int64                   `json:"paymentAmount"`
	CancellationReason string                  `json:"cancellationReason,omitempty"`
	Items              []OrderItemResponse     `json:"items"`
	Timeline           []TimelineEventResponse `json:"timeline"`
	Delivery           *DeliveryResponse       `json:"delivery,omitempty"`
	AllowedTransitions []string                `json:"allowedTransitions"`
	CreatedAt          time.Time               `json:"createdAt"`
	UpdatedAt          time.Time               `json:"updatedAt"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID            string    `json:"id"`
	Number        string    `json:"number"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	PaymentAmount int64     `json:"paymentAmount"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// WalletSummaryResponse is the seller's earnings view.
type WalletSummaryResponse struct {
	CompletedAmount int64 `json:"completedAmount"`
	CompletedOrders int   `json:"completedOrders"`
	PendingAmount   int64 `json:"pendingAmount"`
	PendingOrders   int   `json:"pendingOrders"`
}

// CustomerStatsResponse is one customer's purchase aggregates.
type CustomerStatsResponse struct {
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Orders       int       `json:"orders"`
	Items        int       `json:"items"`
	TotalSpend   int64     `json:"totalSpend"`
	FirstOrderAt time.Time `json:"firstOrderAt"`
	LastOrderAt  time.Time `json:"lastOrderAt"`
}
