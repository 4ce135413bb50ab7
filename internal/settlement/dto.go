package settlement

// CreateSettlementRequest represents the request to settle up with another
// trip member. Payer/receiver roles and the amount are derived from the
// outstanding balance, never supplied by the client.
type CreateSettlementRequest struct {
	TripID          string `json:"trip_id" validate:"required"`
	OtherTravelerID string `json:"other_traveler_id" validate:"required"`
}

// SettlementResponse represents the response for a recorded settlement
type SettlementResponse struct {
	ID           string           `json:"id"`
	TripID       string           `json:"trip_id"`
	PayerID      string           `json:"payer_id"`
	PayerName    string           `json:"payer_name,omitempty"`
	ReceiverID   string           `json:"receiver_id"`
	ReceiverName string           `json:"receiver_name,omitempty"`
	Amount       float64          `json:"amount"`
	CurrencyCode string           `json:"currency_code"`
	Status       SettlementStatus `json:"status"`
	CreatedAt    string           `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:           s.ID,
		TripID:       s.TripID,
		PayerID:      s.PayerID,
		PayerName:    s.PayerName,
		ReceiverID:   s.ReceiverID,
		ReceiverName: s.ReceiverName,
		Amount:       s.Amount,
		CurrencyCode: s.CurrencyCode,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
