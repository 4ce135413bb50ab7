package budget

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/wanderfolk/tripledger/internal/trip"
)

// Common errors
var (
	ErrBudgetNotFound    = errors.New("budget not found")
	ErrBudgetExists      = errors.New("trip already has a budget")
	ErrTripNotFound      = errors.New("trip not found")
	ErrInvalidAmount     = errors.New("total amount must be positive")
	ErrInvalidAllocation = errors.New("envelope percentages must be positive and sum to at most 1")
	ErrDuplicateCategory = errors.New("duplicate envelope category")
	ErrEmptyCategory     = errors.New("envelope category is required")
)

// TripSource provides the trip metadata a budget is attached to
type TripSource interface {
	GetByID(ctx context.Context, id string) (*trip.Trip, error)
}

// Service handles budget business logic
type Service struct {
	repo  *Repository
	trips TripSource
}

// NewService creates a new budget service
func NewService(repo *Repository, trips TripSource) *Service {
	return &Service{repo: repo, trips: trips}
}

// Create creates a budget for a trip, denominated in the trip's base
// currency. One budget per trip.
func (s *Service) Create(ctx context.Context, req *CreateBudgetRequest) (*Budget, []*Envelope, error) {
	total := decimal.NewFromFloat(req.TotalAmount)
	if !total.GreaterThan(decimal.Zero) {
		return nil, nil, ErrInvalidAmount
	}

	envelopes, err := envelopesFromInputs(req.Envelopes)
	if err != nil {
		return nil, nil, err
	}

	tr, err := s.trips.GetByID(ctx, req.TripID)
	if err != nil {
		return nil, nil, err
	}
	if tr == nil {
		return nil, nil, ErrTripNotFound
	}

	existing, _, err := s.repo.GetByTripID(ctx, req.TripID)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrBudgetExists
	}

	return s.repo.Create(ctx, req.TripID, total, tr.BaseCurrency, envelopes)
}

// GetByTripID retrieves a trip's budget with its envelopes
func (s *Service) GetByTripID(ctx context.Context, tripID string) (*Budget, []*Envelope, error) {
	budget, envelopes, err := s.repo.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, nil, err
	}
	if budget == nil {
		return nil, nil, ErrBudgetNotFound
	}
	return budget, envelopes, nil
}

// GetReport rolls the trip's expense totals up against the budget
func (s *Service) GetReport(ctx context.Context, tripID string) (*Report, error) {
	budget, envelopes, err := s.GetByTripID(ctx, tripID)
	if err != nil {
		return nil, err
	}

	spend, err := s.repo.SpendByCategory(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return buildReport(budget, envelopes, spend), nil
}

// Delete removes a trip's budget
func (s *Service) Delete(ctx context.Context, tripID string) error {
	budget, _, err := s.GetByTripID(ctx, tripID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, budget.ID)
}

// envelopesFromInputs validates and converts the requested allocations.
// Each percentage is a fraction of the total; together they may not
// exceed 1 (an uncovered remainder is fine).
func envelopesFromInputs(inputs []EnvelopeInput) ([]*Envelope, error) {
	envelopes := make([]*Envelope, 0, len(inputs))
	seen := make(map[string]bool, len(inputs))
	sum := decimal.Zero

	for _, in := range inputs {
		if in.Category == "" {
			return nil, ErrEmptyCategory
		}
		if seen[in.Category] {
			return nil, ErrDuplicateCategory
		}
		seen[in.Category] = true

		pct := decimal.NewFromFloat(in.Percentage)
		if !pct.GreaterThan(decimal.Zero) {
			return nil, ErrInvalidAllocation
		}
		sum = sum.Add(pct)

		envelopes = append(envelopes, &Envelope{
			Category:   in.Category,
			Percentage: pct,
		})
	}

	if sum.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidAllocation
	}

	return envelopes, nil
}

// buildReport computes per-envelope positions and the trip totals from the
// category spend roll-up.
func buildReport(budget *Budget, envelopes []*Envelope, spend map[string]decimal.Decimal) *Report {
	report := &Report{
		TripID:       budget.TripID,
		CurrencyCode: budget.CurrencyCode,
		TotalAmount:  budget.TotalAmount,
		TotalSpent:   decimal.Zero,
		Unbudgeted:   decimal.Zero,
		Envelopes:    make([]*EnvelopeReport, 0, len(envelopes)),
	}

	covered := make(map[string]bool, len(envelopes))
	for _, env := range envelopes {
		covered[env.Category] = true

		allocated := budget.TotalAmount.Mul(env.Percentage).Round(2)
		spent := spend[env.Category]

		report.Envelopes = append(report.Envelopes, &EnvelopeReport{
			Category:  env.Category,
			Allocated: allocated,
			Spent:     spent,
			Remaining: allocated.Sub(spent),
			Overspent: spent.GreaterThan(allocated),
		})
	}

	for category, total := range spend {
		report.TotalSpent = report.TotalSpent.Add(total)
		if !covered[category] {
			report.Unbudgeted = report.Unbudgeted.Add(total)
		}
	}
	report.TotalRemaining = report.TotalAmount.Sub(report.TotalSpent)

	return report
}
