package queries

import (
	"errors"
	"time"

	"sellerhub/internal/pkg/guard"
)

var (
	ErrWalletSummaryQueryIsNotConstructed = errors.New(
		"WalletSummaryQuery must be created via NewWalletSummaryQuery constructor",
	)
	ErrWalletWindowIsInvalid = errors.New("wallet window start must not be after its end")
)

// WalletSummaryQuery computes the seller's earnings over an optional time
// window. A zero From or To leaves that side of the window unbounded.
//
// Completed earnings come from delivered and paid orders; pending earnings
// from paid orders still out with a delivery partner.
type WalletSummaryQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewWalletSummaryQuery creates a wallet summary query for the given window.
func NewWalletSummaryQuery(from, to time.Time) (WalletSummaryQuery, error) {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return WalletSummaryQuery{}, ErrWalletWindowIsInvalid
	}

	return WalletSummaryQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrWalletSummaryQueryIsNotConstructed if validation fails.
func (q WalletSummaryQuery) Validate() error {
	return q.guard.Validate(ErrWalletSummaryQueryIsNotConstructed)
}

// From returns the inclusive window start; zero means unbounded.
func (q WalletSummaryQuery) From() time.Time {
	return q.from
}

// To returns the exclusive window end; zero means unbounded.
func (q WalletSummaryQuery) To() time.Time {
	return q.to
}

// WalletSummaryQueryResponse carries the projected earnings figures in minor
// currency units.
type WalletSummaryQueryResponse struct {
	CompletedAmount int64
	CompletedOrders int
	PendingAmount   int64
	PendingOrders   int
}
