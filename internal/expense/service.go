package expense

import (
	"context"
	"errors"

	"github.com/wanderfolk/tripledger/internal/expense/split"
)

// Common errors
var (
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrSplitNotFound       = errors.New("split not found")
	ErrSplitLocked         = errors.New("split is locked to a settlement")
	ErrNotDebtor           = errors.New("only the debtor can mark as paid")
	ErrNotPayer            = errors.New("only the payer can perform this action")
	ErrInvalidStatusChange = errors.New("invalid status change")
	ErrCannotDeleteExpense = errors.New("cannot delete expense with paid/confirmed splits")
)

// Service handles expense business logic
type Service struct {
	repo         *Repository
	splitFactory *split.Factory
}

// NewService creates a new expense service with dependencies injected
func NewService(repo *Repository, splitFactory *split.Factory) *Service {
	return &Service{
		repo:         repo,
		splitFactory: splitFactory,
	}
}

// CreateExpense creates a new expense and calculates splits using the
// strategy matching the requested split type.
func (s *Service) CreateExpense(ctx context.Context, payerID string, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	strategy, err := s.splitFactory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	inputs := make([]split.SplitInput, len(req.Participants))
	for i, p := range req.Participants {
		inputs[i] = p.ToSplitInput()
	}

	splitOutputs, err := strategy.Calculate(req.Amount, payerID, inputs)
	if err != nil {
		return nil, err
	}

	expense, err := s.repo.CreateExpense(ctx, payerID, req)
	if err != nil {
		return nil, err
	}

	splits := make([]*Split, len(splitOutputs))
	for i, output := range splitOutputs {
		sp, err := s.repo.CreateSplit(ctx, expense.ID, output.TravelerID, output.AmountOwed)
		if err != nil {
			// TODO: Should rollback expense creation in a transaction
			return nil, err
		}
		splits[i] = sp
	}

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// GetExpenseByID retrieves an expense with its splits
func (s *Service) GetExpenseByID(ctx context.Context, id string) (*ExpenseWithSplits, error) {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{
		Expense: expense,
		Splits:  splits,
	}, nil
}

// ListExpensesByTripID retrieves expenses for a trip
func (s *Service) ListExpensesByTripID(ctx context.Context, tripID string, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListExpensesByTripID(ctx, tripID, perPage, offset)
}

// MarkSplitAsPaid allows the debtor to mark their split as paid
func (s *Service) MarkSplitAsPaid(ctx context.Context, splitID, debtorID string) (*Split, error) {
	sp, err := s.repo.GetSplitByID(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSplitNotFound
	}

	if sp.DebtorID != debtorID {
		return nil, ErrNotDebtor
	}

	if sp.SettlementID != nil {
		return nil, ErrSplitLocked
	}

	if sp.Status != SplitStatusPending {
		return nil, ErrInvalidStatusChange
	}

	return s.repo.UpdateSplitStatus(ctx, splitID, SplitStatusPaid, nil)
}

// ConfirmSplitPayment allows the payer to confirm they received the payment
func (s *Service) ConfirmSplitPayment(ctx context.Context, splitID, payerID string) (*Split, error) {
	sp, err := s.repo.GetSplitByID(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSplitNotFound
	}

	expense, err := s.repo.GetExpenseByID(ctx, sp.ExpenseID)
	if err != nil {
		return nil, err
	}
	if expense.PayerID != payerID {
		return nil, ErrNotPayer
	}

	if sp.SettlementID != nil {
		return nil, ErrSplitLocked
	}

	if sp.Status != SplitStatusPaid {
		return nil, ErrInvalidStatusChange
	}

	return s.repo.UpdateSplitStatus(ctx, splitID, SplitStatusConfirmed, nil)
}

// DisputeSplit allows the debtor to dispute a split
func (s *Service) DisputeSplit(ctx context.Context, splitID, debtorID, reason string) (*Split, error) {
	sp, err := s.repo.GetSplitByID(ctx, splitID)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSplitNotFound
	}

	if sp.DebtorID != debtorID {
		return nil, ErrNotDebtor
	}

	if sp.Status != SplitStatusPending && sp.Status != SplitStatusPaid {
		return nil, ErrInvalidStatusChange
	}

	return s.repo.UpdateSplitStatus(ctx, splitID, SplitStatusDisputed, &reason)
}

// DeleteExpense deletes an expense if no splits are paid/confirmed
func (s *Service) DeleteExpense(ctx context.Context, id, travelerID string) error {
	expense, err := s.repo.GetExpenseByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	// Only the payer can delete
	if expense.PayerID != travelerID {
		return ErrNotPayer
	}

	splits, err := s.repo.GetSplitsByExpenseID(ctx, id)
	if err != nil {
		return err
	}
	for _, sp := range splits {
		if sp.Status == SplitStatusPaid || sp.Status == SplitStatusConfirmed {
			return ErrCannotDeleteExpense
		}
	}

	return s.repo.DeleteExpense(ctx, id)
}
