package budget

// EnvelopeInput is one category allocation in a budget creation request.
// Percentage is a fraction of the total, e.g. 0.4 for 40%.
type EnvelopeInput struct {
	Category   string  `json:"category" validate:"required"`
	Percentage float64 `json:"percentage" validate:"required,gt=0"`
}

// CreateBudgetRequest represents the request to create a trip budget
type CreateBudgetRequest struct {
	TripID      string          `json:"trip_id" validate:"required"`
	TotalAmount float64         `json:"total_amount" validate:"required,gt=0"`
	Envelopes   []EnvelopeInput `json:"envelopes"`
}

// BudgetResponse represents a budget with its envelopes in API responses
type BudgetResponse struct {
	Budget    *Budget     `json:"budget"`
	Envelopes []*Envelope `json:"envelopes"`
}
