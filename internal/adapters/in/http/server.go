// Package http exposes the order lifecycle over a JSON API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"sellerhub/internal/core/application/usecases/commands"
	"sellerhub/internal/core/application/usecases/queries"
	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
	"sellerhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	transitionOrderHandler  commands.TransitionOrderCommandHandler
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler
	setItemPackedHandler    commands.SetItemPackedCommandHandler
	setPaymentStatusHandler commands.SetPaymentStatusCommandHandler
	removeOrderHandler      commands.RemoveOrderCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	walletSummaryHandler queries.WalletSummaryQueryHandler
	customerStatsHandler queries.CustomerStatsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	setItemPackedHandler commands.SetItemPackedCommandHandler,
	setPaymentStatusHandler commands.SetPaymentStatusCommandHandler,
	removeOrderHandler commands.RemoveOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	walletSummaryHandler queries.WalletSummaryQueryHandler,
	customerStatsHandler queries.CustomerStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		assignDeliveryHandler:   assignDeliveryHandler,
		setItemPackedHandler:    setItemPackedHandler,
		setPaymentStatusHandler: setPaymentStatusHandler,
		removeOrderHandler:      removeOrderHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersHandler:        getOrdersHandler,
		walletSummaryHandler:    walletSummaryHandler,
		customerStatsHandler:    customerStatsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.DELETE("/orders/:orderId", s.RemoveOrder)
	api.POST("/orders/:orderId/transition", s.TransitionOrder)
	api.POST("/orders/:orderId/assign-delivery", s.AssignDelivery)
	api.PATCH("/orders/:orderId/items/:itemId/packed", s.SetItemPacked)
	api.POST("/orders/:orderId/payment-status", s.SetPaymentStatus)
	api.GET("/wallet/summary", s.WalletSummary)
	api.GET("/customers/stats", s.CustomerStats)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.OrderItemInput{
			ID:        kernel.NewUUID(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.Number, req.CustomerName, req.CustomerPhone, items, req.PaymentAmount)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists order summaries.
// The optional status query parameter holds a comma-separated status set.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statuses []order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			status, err := order.StatusFromString(strings.TrimSpace(name))
			if err != nil {
				return badRequest(ctx, "Unknown status: "+name)
			}
			statuses = append(statuses, status)
		}
	}

	query, err := queries.NewGetOrdersQuery(statuses...)
	if err != nil {
		return badRequest(ctx, "Invalid status filter: "+err.Error())
	}

	summaries, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummaryResponse{
			ID:            summary.ID.String(),
			Number:        summary.Number,
			CustomerName:  summary.CustomerName,
			CustomerPhone: summary.CustomerPhone,
			Status:        summary.Status.String(),
			PaymentStatus: summary.PaymentStatus.String(),
			PaymentAmount: summary.PaymentAmount,
			ItemCount:     summary.ItemCount,
			CreatedAt:     summary.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - returns one order in full.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse(detail))
}

// RemoveOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) RemoveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.removeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to remove order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles POST /api/v1/orders/:orderId/transition.
// Illegal transitions yield 409 with a message naming both statuses.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, req.Notes)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if err = s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to transition order")
	}

	return s.respondWithOrder(ctx, orderID)
}

// AssignDelivery handles POST /api/v1/orders/:orderId/assign-delivery.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req AssignDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, courierID, req.CourierName, req.CourierPhone)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to assign delivery")
	}

	return s.respondWithOrder(ctx, orderID)
}

// SetItemPacked handles PATCH /api/v1/orders/:orderId/items/:itemId/packed.
func (s *Server) SetItemPacked(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, "Invalid item id")
	}

	var req SetItemPackedRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetItemPackedCommand(orderID, itemID, req.Packed)
	if err != nil {
		return badRequest(ctx, "Invalid packing data: "+err.Error())
	}

	if err = s.setItemPackedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to update item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetPaymentStatus handles POST /api/v1/orders/:orderId/payment-status.
func (s *Server) SetPaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req SetPaymentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentStatus, err := order.PaymentStatusFromString(req.PaymentStatus)
	if err != nil {
		return badRequest(ctx, "Unknown payment status: "+req.PaymentStatus)
	}

	cmd, err := commands.NewSetPaymentStatusCommand(orderID, paymentStatus)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.setPaymentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err, "Failed to update payment status")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WalletSummary handles GET /api/v1/wallet/summary.
// The optional from/to query parameters are RFC 3339 timestamps bounding the
// earnings window.
func (s *Server) WalletSummary(ctx echo.Context) error {
	var from, to time.Time
	var err error
	if raw := ctx.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(ctx, "Invalid from timestamp")
		}
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(ctx, "Invalid to timestamp")
		}
	}

	query, err := queries.NewWalletSummaryQuery(from, to)
	if err != nil {
		return badRequest(ctx, "Invalid window: "+err.Error())
	}

	summary, err := s.walletSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to compute wallet summary")
	}

	return ctx.JSON(http.StatusOK, WalletSummaryResponse{
		CompletedAmount: summary.CompletedAmount,
		CompletedOrders: summary.CompletedOrders,
		PendingAmount:   summary.PendingAmount,
		PendingOrders:   summary.PendingOrders,
	})
}

// CustomerStats handles GET /api/v1/customers/stats.
func (s *Server) CustomerStats(ctx echo.Context) error {
	stats, err := s.customerStatsHandler.Handle(ctx.Request().Context(), queries.NewCustomerStatsQuery())
	if err != nil {
		return internalError(ctx, "Failed to compute customer stats")
	}

	response := make([]CustomerStatsResponse, len(stats))
	for i, row := range stats {
		response[i] = CustomerStatsResponse{
			Name:         row.Name,
			Phone:        row.Phone,
			Orders:       row.Orders,
			Items:        row.Items,
			TotalSpend:   row.TotalSpend,
			FirstOrderAt: row.FirstOrderAt,
			LastOrderAt:  row.LastOrderAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithOrder returns the current state of an order after a write.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse(detail))
}

func orderDetailResponse(detail queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID.String(),
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Packed:    item.Packed,
		}
	}

	timeline := make([]TimelineEventResponse, len(detail.Timeline))
	for i, event := range detail.Timeline {
		timeline[i] = TimelineEventResponse{
			Status:      event.Status.String(),
			Timestamp:   event.Timestamp,
			Description: event.Description,
			Actor:       string(event.Actor),
		}
	}

	var delivery *DeliveryResponse
	if detail.Delivery != nil {
		delivery = &DeliveryResponse{
			CourierID:    detail.Delivery.CourierID.String(),
			CourierName:  detail.Delivery.CourierName,
			CourierPhone: detail.Delivery.CourierPhone,
			AssignedAt:   detail.Delivery.AssignedAt,
		}
	}

	allowed := make([]string, len(detail.AllowedTransitions))
	for i, status := range detail.AllowedTransitions {
		allowed[i] = status.String()
	}

	return OrderResponse{
		ID:                 detail.ID.String(),
		Number:             detail.Number,
		CustomerName:       detail.CustomerName,
		CustomerPhone:      detail.CustomerPhone,
		Status:             detail.Status.String(),
		PaymentStatus:      detail.PaymentStatus.String(),
		PaymentAmount:      detail.PaymentAmount,
		CancellationReason: detail.CancellationReason,
		Items:              items,
		Timeline:           timeline,
		Delivery:           delivery,
		AllowedTransitions: allowed,
		CreatedAt:          detail.CreatedAt,
		UpdatedAt:          detail.UpdatedAt,
	}
}

// commandError maps a command failure to the right HTTP status: 404 for
// missing objects, 409 for transition table violations, 400 for value
// validation, 500 otherwise.
func commandError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return notFound(ctx, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err.Error())
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
