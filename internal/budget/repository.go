package budget

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository handles database operations for budgets
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new budget repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a budget and its envelopes in one transaction.
func (r *Repository) Create(ctx context.Context, tripID string, total decimal.Decimal, currencyCode string, envelopes []*Envelope) (*Budget, []*Envelope, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	budget := &Budget{
		ID:           uuid.NewString(),
		TripID:       tripID,
		TotalAmount:  total,
		CurrencyCode: currencyCode,
	}

	query := `
		INSERT INTO budgets (id, trip_id, total_amount, currency_code)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err = tx.QueryRowContext(ctx, query, budget.ID, budget.TripID, budget.TotalAmount, budget.CurrencyCode).
		Scan(&budget.CreatedAt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create budget: %w", err)
	}

	envQuery := `
		INSERT INTO budget_envelopes (id, budget_id, category, percentage)
		VALUES ($1, $2, $3, $4)`

	for _, env := range envelopes {
		env.ID = uuid.NewString()
		env.BudgetID = budget.ID
		if _, err := tx.ExecContext(ctx, envQuery, env.ID, env.BudgetID, env.Category, env.Percentage); err != nil {
			return nil, nil, fmt.Errorf("failed to create envelope: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return budget, envelopes, nil
}

// GetByTripID retrieves a trip's budget with its envelopes.
// Returns nil if the trip has no budget.
func (r *Repository) GetByTripID(ctx context.Context, tripID string) (*Budget, []*Envelope, error) {
	budget := &Budget{}

	query := `
		SELECT id, trip_id, total_amount, currency_code, created_at
		FROM budgets
		WHERE trip_id = $1`

	err := r.db.QueryRowContext(ctx, query, tripID).
		Scan(&budget.ID, &budget.TripID, &budget.TotalAmount, &budget.CurrencyCode, &budget.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get budget: %w", err)
	}

	envQuery := `
		SELECT id, budget_id, category, percentage
		FROM budget_envelopes
		WHERE budget_id = $1
		ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, envQuery, budget.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get envelopes: %w", err)
	}
	defer rows.Close()

	var envelopes []*Envelope
	for rows.Next() {
		env := &Envelope{}
		if err := rows.Scan(&env.ID, &env.BudgetID, &env.Category, &env.Percentage); err != nil {
			return nil, nil, fmt.Errorf("failed to scan envelope: %w", err)
		}
		envelopes = append(envelopes, env)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate envelopes: %w", err)
	}

	return budget, envelopes, nil
}

// SpendByCategory sums a trip's expenses per category. Expenses without a
// category land under the empty string key.
func (r *Repository) SpendByCategory(ctx context.Context, tripID string) (map[string]decimal.Decimal, error) {
	query := `
		SELECT COALESCE(category, ''), SUM(amount)
		FROM expenses
		WHERE trip_id = $1
		GROUP BY COALESCE(category, '')`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}
	defer rows.Close()

	spend := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var total decimal.Decimal
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan spend row: %w", err)
		}
		spend[category] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spend rows: %w", err)
	}

	return spend, nil
}

// Delete removes a budget and cascades to its envelopes
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
