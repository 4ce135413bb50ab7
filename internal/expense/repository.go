package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateExpense inserts a new expense into the database
func (r *Repository) CreateExpense(ctx context.Context, payerID string, req *CreateExpenseRequest) (*Expense, error) {
	query := `
		INSERT INTO expenses (id, trip_id, payer_id, description, amount, category, split_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, trip_id, payer_id, description, amount, category, split_type, created_at
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), req.TripID, payerID, req.Description, req.Amount, req.Category, req.SplitType,
	).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// CreateSplit inserts a new split for an expense
func (r *Repository) CreateSplit(ctx context.Context, expenseID, debtorID string, amountOwed float64) (*Split, error) {
	query := `
		INSERT INTO splits (id, expense_id, debtor_id, amount_owed, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, expense_id, debtor_id, amount_owed, status, dispute_reason, settlement_id, updated_at
	`

	split := &Split{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), expenseID, debtorID, amountOwed, SplitStatusPending).Scan(
		&split.ID,
		&split.ExpenseID,
		&split.DebtorID,
		&split.AmountOwed,
		&split.Status,
		&split.DisputeReason,
		&split.SettlementID,
		&split.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create split: %w", err)
	}

	return split, nil
}

// GetExpenseByID retrieves an expense by its ID
func (r *Repository) GetExpenseByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.category, e.split_type, e.created_at,
		       t.display_name as payer_name
		FROM expenses e
		JOIN travelers t ON e.payer_id = t.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.TripID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&expense.SplitType,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSplitsByExpenseID retrieves all splits for an expense
func (r *Repository) GetSplitsByExpenseID(ctx context.Context, expenseID string) ([]*Split, error) {
	query := `
		SELECT s.id, s.expense_id, s.debtor_id, s.amount_owed, s.status, s.dispute_reason, s.settlement_id, s.updated_at,
		       t.display_name as debtor_name
		FROM splits s
		JOIN travelers t ON s.debtor_id = t.id
		WHERE s.expense_id = $1
		ORDER BY s.debtor_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	return scanSplits(rows)
}

// GetSplitByID retrieves a single split
func (r *Repository) GetSplitByID(ctx context.Context, id string) (*Split, error) {
	query := `
		SELECT s.id, s.expense_id, s.debtor_id, s.amount_owed, s.status, s.dispute_reason, s.settlement_id, s.updated_at,
		       t.display_name as debtor_name
		FROM splits s
		JOIN travelers t ON s.debtor_id = t.id
		WHERE s.id = $1
	`

	split := &Split{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&split.ID,
		&split.ExpenseID,
		&split.DebtorID,
		&split.AmountOwed,
		&split.Status,
		&split.DisputeReason,
		&split.SettlementID,
		&split.UpdatedAt,
		&split.DebtorName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	return split, nil
}

// ListExpensesByTripID retrieves expenses for a trip with pagination
func (r *Repository) ListExpensesByTripID(ctx context.Context, tripID string, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE trip_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, tripID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.trip_id, e.payer_id, e.description, e.amount, e.category, e.split_type, e.created_at,
		       t.display_name as payer_name
		FROM expenses e
		JOIN travelers t ON e.payer_id = t.id
		WHERE e.trip_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, tripID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.TripID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.Category,
			&expense.SplitType,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	return expenses, total, nil
}

// ListByTripIDWithSplits retrieves every expense in a trip together with its
// splits, in creation order. This is the snapshot the settlement engine
// consumes, so no pagination.
func (r *Repository) ListByTripIDWithSplits(ctx context.Context, tripID string) ([]*ExpenseWithSplits, error) {
	query := `
		SELECT id, trip_id, payer_id, description, amount, category, split_type, created_at
		FROM expenses
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip expenses: %w", err)
	}
	defer rows.Close()

	var result []*ExpenseWithSplits
	byID := make(map[string]*ExpenseWithSplits)
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.TripID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.Category,
			&expense.SplitType,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		ews := &ExpenseWithSplits{Expense: expense}
		result = append(result, ews)
		byID[expense.ID] = ews
	}
	if len(result) == 0 {
		return result, nil
	}

	splitQuery := `
		SELECT s.id, s.expense_id, s.debtor_id, s.amount_owed, s.status, s.dispute_reason, s.settlement_id, s.updated_at
		FROM splits s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.trip_id = $1
		ORDER BY s.debtor_id ASC
	`

	splitRows, err := r.db.QueryContext(ctx, splitQuery, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trip splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		split := &Split{}
		if err := splitRows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.DebtorID,
			&split.AmountOwed,
			&split.Status,
			&split.DisputeReason,
			&split.SettlementID,
			&split.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		if ews, ok := byID[split.ExpenseID]; ok {
			ews.Splits = append(ews.Splits, split)
		}
	}

	return result, nil
}

// UpdateSplitStatus updates the status (and optional dispute reason) of a split
func (r *Repository) UpdateSplitStatus(ctx context.Context, id string, status SplitStatus, disputeReason *string) (*Split, error) {
	query := `
		UPDATE splits
		SET status = $2, dispute_reason = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, expense_id, debtor_id, amount_owed, status, dispute_reason, settlement_id, updated_at
	`

	split := &Split{}
	err := r.db.QueryRowContext(ctx, query, id, status, disputeReason).Scan(
		&split.ID,
		&split.ExpenseID,
		&split.DebtorID,
		&split.AmountOwed,
		&split.Status,
		&split.DisputeReason,
		&split.SettlementID,
		&split.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update split status: %w", err)
	}

	return split, nil
}

// LockSplitsToSettlement attaches pending splits to a settlement so they
// cannot be individually marked paid while the settlement is in flight
func (r *Repository) LockSplitsToSettlement(ctx context.Context, splitIDs []string, settlementID string) error {
	query := `UPDATE splits SET settlement_id = $1, updated_at = NOW() WHERE id = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, settlementID, pq.Array(splitIDs)); err != nil {
		return fmt.Errorf("failed to lock splits: %w", err)
	}
	return nil
}

// ConfirmSplitsBySettlement marks all splits locked to a settlement as confirmed
func (r *Repository) ConfirmSplitsBySettlement(ctx context.Context, settlementID string) error {
	query := `UPDATE splits SET status = $1, updated_at = NOW() WHERE settlement_id = $2`
	if _, err := r.db.ExecContext(ctx, query, SplitStatusConfirmed, settlementID); err != nil {
		return fmt.Errorf("failed to confirm splits: %w", err)
	}
	return nil
}

// UnlockSplitsFromSettlement detaches splits from a rejected settlement
func (r *Repository) UnlockSplitsFromSettlement(ctx context.Context, settlementID string) error {
	query := `UPDATE splits SET settlement_id = NULL, updated_at = NOW() WHERE settlement_id = $1`
	if _, err := r.db.ExecContext(ctx, query, settlementID); err != nil {
		return fmt.Errorf("failed to unlock splits: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense and its splits
func (r *Repository) DeleteExpense(ctx context.Context, id string) error {
	query := `DELETE FROM expenses WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func scanSplits(rows *sql.Rows) ([]*Split, error) {
	var splits []*Split
	for rows.Next() {
		split := &Split{}
		if err := rows.Scan(
			&split.ID,
			&split.ExpenseID,
			&split.DebtorID,
			&split.AmountOwed,
			&split.Status,
			&split.DisputeReason,
			&split.SettlementID,
			&split.UpdatedAt,
			&split.DebtorName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	return splits, nil
}
