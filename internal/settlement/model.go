package settlement

import (
	"time"

	"github.com/wanderfolk/tripledger/internal/settle"
)

// SettlementStatus represents the status of a recorded settlement
type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "PENDING"
	SettlementStatusPaid      SettlementStatus = "PAID"
	SettlementStatusConfirmed SettlementStatus = "CONFIRMED"
	SettlementStatusRejected  SettlementStatus = "REJECTED"
)

// Settlement represents a recorded bulk payment between two trip members
type Settlement struct {
	ID           string           `json:"id"`
	TripID       string           `json:"trip_id"`
	PayerID      string           `json:"payer_id"`     // Who sends the money
	ReceiverID   string           `json:"receiver_id"`  // Who receives the money
	Amount       float64          `json:"amount"`       // The net amount
	CurrencyCode string           `json:"currency_code"`
	Status       SettlementStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`

	// Populated via JOIN
	PayerName    string `json:"payer_name,omitempty"`
	ReceiverName string `json:"receiver_name,omitempty"`
}

// MemberBalance is one trip member's net position
type MemberBalance struct {
	TravelerID string  `json:"traveler_id"`
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"` // Positive = is owed money, negative = owes money
}

// PlanTransfer is a single suggested payment from the settlement engine,
// decorated with viewer-aware labels
type PlanTransfer struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	FromLabel string  `json:"from_label"`
	ToLabel   string  `json:"to_label"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"` // e.g., "you pay Lina 25.00 EUR"
}

// Plan is the full settle-up suggestion for a trip: everyone's net balance
// plus the transfers that clear them. It is recomputed from scratch on every
// request and never stored.
type Plan struct {
	TripID       string          `json:"trip_id"`
	CurrencyCode string          `json:"currency_code"`
	Balances     []*MemberBalance `json:"balances"`
	Transfers    []*PlanTransfer  `json:"transfers"`
}

// pairwiseNet is the outstanding debt between two travelers, derived from
// the same expense snapshot the engine consumes. Positive means the first
// traveler owes the second.
type pairwiseNet struct {
	owes     float64
	owed     float64
	splitIDs []string // every unsettled split between the pair, both directions
}

func (p pairwiseNet) net() float64 {
	return p.owes - p.owed
}

// snapshot is the in-memory view of a trip handed to the engine.
type snapshot struct {
	expenses []settle.Expense
	roster   []settle.ParticipantID
	names    map[settle.ParticipantID]string
	currency string
}
