package services

import (
	"sort"
	"time"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/core/domain/model/order"
)

// CustomerSummary aggregates one customer's purchase history across all of
// their orders, whatever their status.
type CustomerSummary struct {
	Name         string
	Phone        string
	Orders       int
	Items        int
	TotalSpend   kernel.Money
	FirstOrderAt time.Time
	LastOrderAt  time.Time
}

// CustomerAnalytics derives per-customer aggregates from the order list.
// Customers are keyed by phone number. The service reads order state only;
// it never mutates the orders.
type CustomerAnalytics struct{}

// NewCustomerAnalytics creates a new CustomerAnalytics instance.
func NewCustomerAnalytics() CustomerAnalytics {
	return CustomerAnalytics{}
}

// Aggregate computes one summary per customer over all given orders.
// Results are ordered by total spend, highest first, with phone number as the
// tie-breaker so output is deterministic.
func (a CustomerAnalytics) Aggregate(orders []*order.Order) ([]CustomerSummary, error) {
	byPhone := make(map[string]*CustomerSummary)

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		customer := o.Customer()
		summary, ok := byPhone[customer.Phone()]
		if !ok {
			zero, err := kernel.NewMoney(0)
			if err != nil {
				return nil, err
			}
			summary = &CustomerSummary{
				Name:         customer.Name(),
				Phone:        customer.Phone(),
				TotalSpend:   zero,
				FirstOrderAt: o.CreatedAt(),
				LastOrderAt:  o.CreatedAt(),
			}
			byPhone[customer.Phone()] = summary
		}

		total, err := summary.TotalSpend.Add(o.PaymentAmount())
		if err != nil {
			return nil, err
		}
		summary.TotalSpend = total
		summary.Orders++
		for _, item := range o.Items() {
			summary.Items += item.Quantity()
		}
		if o.CreatedAt().Before(summary.FirstOrderAt) {
			summary.FirstOrderAt = o.CreatedAt()
		}
		if o.CreatedAt().After(summary.LastOrderAt) {
			summary.LastOrderAt = o.CreatedAt()
		}
	}

	summaries := make([]CustomerSummary, 0, len(byPhone))
	for _, summary := range byPhone {
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalSpend.Amount() != summaries[j].TotalSpend.Amount() {
			return summaries[i].TotalSpend.Amount() > summaries[j].TotalSpend.Amount()
		}
		return summaries[i].Phone < summaries[j].Phone
	})

	return summaries, nil
}
