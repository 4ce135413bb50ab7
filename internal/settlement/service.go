package settlement

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/wanderfolk/tripledger/internal/expense"
	"github.com/wanderfolk/tripledger/internal/settle"
	"github.com/wanderfolk/tripledger/internal/trip"
)

// Common errors
var (
	ErrSettlementNotFound  = errors.New("settlement not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrAlreadySettled      = errors.New("already settled up - no pending debts")
	ErrNotPayer            = errors.New("only the payer can mark as paid")
	ErrNotReceiver         = errors.New("only the receiver can confirm/reject")
	ErrInvalidStatusChange = errors.New("invalid status change")
	ErrCannotSettleSelf    = errors.New("cannot create settlement with yourself")
)

//go:generate mockgen -source=service.go -destination=mock.go -package=settlement

// Store persists recorded settlements
type Store interface {
	Create(ctx context.Context, tripID, payerID, receiverID string, amount float64, currencyCode string) (*Settlement, error)
	GetByID(ctx context.Context, id string) (*Settlement, error)
	ListByTripID(ctx context.Context, tripID string, limit, offset int) ([]*Settlement, int, error)
	UpdateStatus(ctx context.Context, id string, status SettlementStatus) (*Settlement, error)
}

// ExpenseSource provides the expense snapshot the engine consumes, plus
// split locking for in-flight settlements
type ExpenseSource interface {
	ListByTripIDWithSplits(ctx context.Context, tripID string) ([]*expense.ExpenseWithSplits, error)
	LockSplitsToSettlement(ctx context.Context, splitIDs []string, settlementID string) error
	ConfirmSplitsBySettlement(ctx context.Context, settlementID string) error
	UnlockSplitsFromSettlement(ctx context.Context, settlementID string) error
}

// TripSource provides trip metadata and the member roster
type TripSource interface {
	GetByID(ctx context.Context, id string) (*trip.Trip, error)
	GetMembers(ctx context.Context, tripID string) ([]*trip.TripMember, error)
}

// Service handles settlement business logic
type Service struct {
	store    Store
	expenses ExpenseSource
	trips    TripSource
}

// NewService creates a new settlement service
func NewService(store Store, expenses ExpenseSource, trips TripSource) *Service {
	return &Service{
		store:    store,
		expenses: expenses,
		trips:    trips,
	}
}

// GetPlan recomputes the settle-up suggestion for a trip from the current
// expense list and roster. Nothing is persisted; two identical snapshots
// produce identical plans.
func (s *Service) GetPlan(ctx context.Context, tripID, viewerID string) (*Plan, error) {
	snap, err := s.buildSnapshot(ctx, tripID)
	if err != nil {
		return nil, err
	}

	balances := settle.Aggregate(snap.expenses, snap.roster)
	transfers := settle.Minimize(balances)

	viewer := settle.ParticipantID(viewerID)

	plan := &Plan{
		TripID:       tripID,
		CurrencyCode: snap.currency,
		Balances:     make([]*MemberBalance, 0, len(snap.roster)),
		Transfers:    make([]*PlanTransfer, 0, len(transfers)),
	}

	// Balances in canonical roster order; anyone the roster missed (e.g. a
	// payer who has since left the trip) is appended after, ascending.
	seen := make(map[settle.ParticipantID]bool, len(snap.roster))
	ordered := make([]settle.ParticipantID, 0, len(balances))
	for _, id := range snap.roster {
		if _, ok := balances[id]; ok && !seen[id] {
			ordered = append(ordered, id)
			seen[id] = true
		}
	}
	var extras []settle.ParticipantID
	for id := range balances {
		if !seen[id] {
			extras = append(extras, id)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	ordered = append(ordered, extras...)

	for _, id := range ordered {
		plan.Balances = append(plan.Balances, &MemberBalance{
			TravelerID: string(id),
			Label:      settle.DisplayName(id, viewer, snap.names),
			Amount:     math.Round(balances[id]*100) / 100,
		})
	}

	for _, tr := range transfers {
		fromLabel := settle.DisplayName(tr.From, viewer, snap.names)
		toLabel := settle.DisplayName(tr.To, viewer, snap.names)

		var message string
		if tr.From == viewer {
			message = fmt.Sprintf("you pay %s %.2f %s", toLabel, tr.Amount, snap.currency)
		} else if tr.To == viewer {
			message = fmt.Sprintf("%s pays you %.2f %s", fromLabel, tr.Amount, snap.currency)
		} else {
			message = fmt.Sprintf("%s pays %s %.2f %s", fromLabel, toLabel, tr.Amount, snap.currency)
		}

		plan.Transfers = append(plan.Transfers, &PlanTransfer{
			From:      string(tr.From),
			To:        string(tr.To),
			FromLabel: fromLabel,
			ToLabel:   toLabel,
			Amount:    tr.Amount,
			Message:   message,
		})
	}

	return plan, nil
}

// CreateSettlement creates a new bulk settlement between the initiator and
// another trip member. Anyone can initiate - the outstanding balance decides
// who pays whom. Even a zero settlement is valid when mutual debts cancel
// out; it just needs confirmation to clear the pending splits.
func (s *Service) CreateSettlement(ctx context.Context, initiatorID string, req *CreateSettlementRequest) (*Settlement, error) {
	otherID := req.OtherTravelerID

	if initiatorID == otherID {
		return nil, ErrCannotSettleSelf
	}

	tr, err := s.trips.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, ErrTripNotFound
	}

	items, err := s.expenses.ListByTripIDWithSplits(ctx, req.TripID)
	if err != nil {
		return nil, err
	}

	pair := pairwiseFromSnapshot(items, initiatorID, otherID)
	net := pair.net()

	var payerID, receiverID string
	var amount float64

	switch {
	case net > 0:
		// Initiator owes the other traveler
		payerID = initiatorID
		receiverID = otherID
		amount = math.Round(net*100) / 100
	case net < 0:
		payerID = otherID
		receiverID = initiatorID
		amount = math.Round(-net*100) / 100
	default:
		if len(pair.splitIDs) == 0 {
			return nil, ErrAlreadySettled
		}
		// Mutual debts cancel out: zero-amount settlement
		payerID = initiatorID
		receiverID = otherID
		amount = 0
	}

	settlement, err := s.store.Create(ctx, req.TripID, payerID, receiverID, amount, tr.BaseCurrency)
	if err != nil {
		return nil, err
	}

	// Lock every outstanding split between the pair, both directions
	if len(pair.splitIDs) > 0 {
		if err := s.expenses.LockSplitsToSettlement(ctx, pair.splitIDs, settlement.ID); err != nil {
			// TODO: Should rollback settlement creation in a transaction
			return nil, err
		}
	}

	return settlement, nil
}

// GetByID retrieves a settlement by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Settlement, error) {
	settlement, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}
	return settlement, nil
}

// ListByTripID retrieves recorded settlements for a trip
func (s *Service) ListByTripID(ctx context.Context, tripID string, page, perPage int) ([]*Settlement, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListByTripID(ctx, tripID, perPage, offset)
}

// MarkAsPaid allows the payer to mark the settlement as paid
func (s *Service) MarkAsPaid(ctx context.Context, settlementID, travelerID string) (*Settlement, error) {
	settlement, err := s.store.GetByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}

	if settlement.PayerID != travelerID {
		return nil, ErrNotPayer
	}

	if settlement.Status != SettlementStatusPending {
		return nil, ErrInvalidStatusChange
	}

	return s.store.UpdateStatus(ctx, settlementID, SettlementStatusPaid)
}

// Confirm allows the receiver to confirm they received the payment
func (s *Service) Confirm(ctx context.Context, settlementID, travelerID string) (*Settlement, error) {
	settlement, err := s.store.GetByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}

	if settlement.ReceiverID != travelerID {
		return nil, ErrNotReceiver
	}

	if settlement.Status != SettlementStatusPaid {
		return nil, ErrInvalidStatusChange
	}

	settlement, err = s.store.UpdateStatus(ctx, settlementID, SettlementStatusConfirmed)
	if err != nil {
		return nil, err
	}

	// Everything locked to this settlement is now squared away
	if err := s.expenses.ConfirmSplitsBySettlement(ctx, settlementID); err != nil {
		return nil, err
	}

	return settlement, nil
}

// Reject allows the receiver to reject the settlement (payment never arrived)
func (s *Service) Reject(ctx context.Context, settlementID, travelerID string) (*Settlement, error) {
	settlement, err := s.store.GetByID(ctx, settlementID)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, ErrSettlementNotFound
	}

	if settlement.ReceiverID != travelerID {
		return nil, ErrNotReceiver
	}

	if settlement.Status != SettlementStatusPending && settlement.Status != SettlementStatusPaid {
		return nil, ErrInvalidStatusChange
	}

	settlement, err = s.store.UpdateStatus(ctx, settlementID, SettlementStatusRejected)
	if err != nil {
		return nil, err
	}

	// Release the splits so they can be settled another way
	if err := s.expenses.UnlockSplitsFromSettlement(ctx, settlementID); err != nil {
		return nil, err
	}

	return settlement, nil
}

// buildSnapshot assembles the immutable view of a trip the engine consumes:
// outstanding splits per expense, the roster in canonical ascending order,
// and the display-name lookup.
func (s *Service) buildSnapshot(ctx context.Context, tripID string) (*snapshot, error) {
	tr, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if tr == nil {
		return nil, ErrTripNotFound
	}

	members, err := s.trips.GetMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		roster:   make([]settle.ParticipantID, 0, len(members)),
		names:    make(map[settle.ParticipantID]string, len(members)),
		currency: tr.BaseCurrency,
	}
	for _, m := range members {
		id := settle.ParticipantID(m.TravelerID)
		snap.roster = append(snap.roster, id)
		snap.names[id] = m.DisplayName
	}
	sort.Slice(snap.roster, func(i, j int) bool { return snap.roster[i] < snap.roster[j] })

	items, err := s.expenses.ListByTripIDWithSplits(ctx, tripID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		splits := make(map[settle.ParticipantID]float64)
		var outstanding float64
		for _, sp := range item.Splits {
			if !splitOutstanding(sp) {
				continue
			}
			splits[settle.ParticipantID(sp.DebtorID)] += sp.AmountOwed
			outstanding += sp.AmountOwed
		}
		if len(splits) == 0 {
			continue
		}

		// The expense enters the snapshot at its outstanding value: the
		// payer's own share (and any split already confirmed) is excluded
		// from both sides, so the snapshot still nets to zero.
		snap.expenses = append(snap.expenses, settle.Expense{
			ID:     item.Expense.ID,
			Amount: outstanding,
			Payer:  settle.ParticipantID(item.Expense.PayerID),
			Splits: splits,
		})
	}

	return snap, nil
}

// pairwiseFromSnapshot computes the outstanding debt between two travelers
// from the expense snapshot, collecting the split ids that a settlement
// between the pair should lock.
func pairwiseFromSnapshot(items []*expense.ExpenseWithSplits, travelerID, otherID string) pairwiseNet {
	var pair pairwiseNet
	for _, item := range items {
		payerID := item.Expense.PayerID
		for _, sp := range item.Splits {
			if !splitOutstanding(sp) {
				continue
			}
			switch {
			case sp.DebtorID == travelerID && payerID == otherID:
				pair.owes += sp.AmountOwed
				pair.splitIDs = append(pair.splitIDs, sp.ID)
			case sp.DebtorID == otherID && payerID == travelerID:
				pair.owed += sp.AmountOwed
				pair.splitIDs = append(pair.splitIDs, sp.ID)
			}
		}
	}
	return pair
}

// splitOutstanding reports whether a split still counts toward balances:
// not yet confirmed, not disputed, and not locked to an in-flight settlement.
func splitOutstanding(sp *expense.Split) bool {
	if sp.SettlementID != nil {
		return false
	}
	return sp.Status == expense.SplitStatusPending || sp.Status == expense.SplitStatusPaid
}
