package queries

import (
	"context"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order summaries straight from the database.
// Skips aggregate reconstruction: a listing only needs the flat order row
// plus an item count.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(order.StatusReady)
//
//	summaries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d orders ready for pickup\n", len(summaries))
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order summary queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results come back oldest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.number,
			o.customer_name,
			o.customer_phone,
			o.status,
			o.payment_status,
			o.payment_amount,
			COUNT(i.id) AS item_count,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
	`
	args := make([]any, 0, 1)
	if len(query.Statuses()) > 0 {
		sql += " WHERE o.status IN ?"
		statuses := make([]int, 0, len(query.Statuses()))
		for _, status := range query.Statuses() {
			statuses = append(statuses, int(status))
		}
		args = append(args, statuses)
	}
	sql += `
		GROUP BY o.id, o.number, o.customer_name, o.customer_phone,
			o.status, o.payment_status, o.payment_amount, o.created_at
		ORDER BY o.created_at
	`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var summary GetOrdersQueryResponse
		var id uuid.UUID
		var status, paymentStatus int

		err = rows.Scan(
			&id,
			&summary.Number,
			&summary.CustomerName,
			&summary.CustomerPhone,
			&status,
			&paymentStatus,
			&summary.PaymentAmount,
			&summary.ItemCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status)
		summary.PaymentStatus = order.PaymentStatus(paymentStatus)
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
