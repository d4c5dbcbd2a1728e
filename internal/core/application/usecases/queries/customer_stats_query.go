package queries

import (
	"errors"
	"time"

	"sellerhub/internal/pkg/guard"
)

var ErrCustomerStatsQueryIsNotConstructed = errors.New(
	"CustomerStatsQuery must be created via NewCustomerStatsQuery constructor",
)

// CustomerStatsQuery retrieves per-customer purchase aggregates across the
// whole order history. Customers are keyed by phone number.
type CustomerStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewCustomerStatsQuery creates a parameterless customer analytics query.
func NewCustomerStatsQuery() CustomerStatsQuery {
	return CustomerStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrCustomerStatsQueryIsNotConstructed if validation fails.
func (q CustomerStatsQuery) Validate() error {
	return q.guard.Validate(ErrCustomerStatsQueryIsNotConstructed)
}

// CustomerStatsQueryResponse represents one customer's aggregate row,
// ordered by total spend, highest first.
type CustomerStatsQueryResponse struct {
	Name         string
	Phone        string
	Orders       int
	Items        int
	TotalSpend   int64
	FirstOrderAt time.Time
	LastOrderAt  time.Time
}
