package expense

import (
	"time"

	"github.com/wanderfolk/tripledger/internal/expense/split"
)

// SplitStatus represents the status of a split
type SplitStatus string

const (
	SplitStatusPending   SplitStatus = "PENDING"
	SplitStatusPaid      SplitStatus = "PAID"
	SplitStatusConfirmed SplitStatus = "CONFIRMED"
	SplitStatusDisputed  SplitStatus = "DISPUTED"
)

// Expense represents a shared cost inside a trip. Amount is denominated in
// the trip's base currency; any conversion happened before the record was
// created.
type Expense struct {
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	PayerID     string    `json:"payer_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    *string   `json:"category,omitempty"`
	SplitType   string    `json:"split_type"` // EVEN, PERCENTAGE, EXACT
	CreatedAt   time.Time `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// Split represents an individual debt from an expense. The payer's own
// share is never stored as a split; it is implied by the difference between
// the expense amount and the stored splits.
type Split struct {
	ID            string      `json:"id"`
	ExpenseID     string      `json:"expense_id"`
	DebtorID      string      `json:"debtor_id"`
	AmountOwed    float64     `json:"amount_owed"`
	Status        SplitStatus `json:"status"`
	DisputeReason *string     `json:"dispute_reason,omitempty"`
	SettlementID  *string     `json:"settlement_id,omitempty"` // Optional: locked to settlement
	UpdatedAt     time.Time   `json:"updated_at"`

	// Populated via JOIN
	DebtorName string `json:"debtor_name,omitempty"`
}

// ExpenseWithSplits combines an expense with its calculated splits
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*Split
}

// SplitParticipant is used when creating an expense with splits
type SplitParticipant struct {
	TravelerID string   `json:"traveler_id"`
	Percentage *float64 `json:"percentage,omitempty"` // For PERCENTAGE split
	Amount     *float64 `json:"amount,omitempty"`     // For EXACT split
}

// ToSplitInput converts to the split package's input type
func (p *SplitParticipant) ToSplitInput() split.SplitInput {
	return split.SplitInput{
		TravelerID: p.TravelerID,
		Percentage: p.Percentage,
		Amount:     p.Amount,
	}
}
