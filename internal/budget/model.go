package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a per-trip spending envelope denominated in the trip's base
// currency. Amounts are decimal so allocation percentages multiply out
// without float drift.
type Budget struct {
	ID           string          `json:"id"`
	TripID       string          `json:"trip_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CurrencyCode string          `json:"currency_code"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Envelope allocates a fraction of the budget total to one expense
// category. Percentage is a fraction in (0, 1]; the fractions of all
// envelopes together may not exceed 1.
type Envelope struct {
	ID         string          `json:"id"`
	BudgetID   string          `json:"budget_id"`
	Category   string          `json:"category"`
	Percentage decimal.Decimal `json:"percentage"`
}

// EnvelopeReport compares one envelope's allocation against what the trip
// has actually spent in that category.
type EnvelopeReport struct {
	Category  string          `json:"category"`
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Overspent bool            `json:"overspent"`
}

// Report is the budget roll-up for a trip: per-envelope positions plus
// totals, including spend in categories no envelope covers.
type Report struct {
	TripID         string            `json:"trip_id"`
	CurrencyCode   string            `json:"currency_code"`
	TotalAmount    decimal.Decimal   `json:"total_amount"`
	TotalSpent     decimal.Decimal   `json:"total_spent"`
	TotalRemaining decimal.Decimal   `json:"total_remaining"`
	Unbudgeted     decimal.Decimal   `json:"unbudgeted"`
	Envelopes      []*EnvelopeReport `json:"envelopes"`
}
