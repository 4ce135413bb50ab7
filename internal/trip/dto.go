package trip

import "time"

// CreateTripRequest represents the request to create a trip
type CreateTripRequest struct {
	Name         string     `json:"name" validate:"required,min=1,max=100"`
	Destination  *string    `json:"destination,omitempty"`
	BaseCurrency string     `json:"base_currency" validate:"required,len=3"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

// UpdateTripRequest represents the request to update a trip
type UpdateTripRequest struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Destination *string    `json:"destination,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// AddMemberRequest represents the request to add a member to a trip
type AddMemberRequest struct {
	TravelerID string     `json:"traveler_id" validate:"required"`
	Role       MemberRole `json:"role,omitempty"`
}

// UpdateMemberRequest represents the request to update a trip member
type UpdateMemberRequest struct {
	Status *MemberStatus `json:"status,omitempty"`
	Role   *MemberRole   `json:"role,omitempty"`
}

// TripResponse represents the response for a trip
type TripResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Destination  *string           `json:"destination,omitempty"`
	BaseCurrency string            `json:"base_currency"`
	StartDate    *time.Time        `json:"start_date,omitempty"`
	EndDate      *time.Time        `json:"end_date,omitempty"`
	CreatedAt    string            `json:"created_at"`
	Members      []*MemberResponse `json:"members,omitempty"`
}

// MemberResponse represents the response for a trip member
type MemberResponse struct {
	ID          string       `json:"id"`
	TravelerID  string       `json:"traveler_id"`
	DisplayName string       `json:"display_name,omitempty"`
	Email       string       `json:"email,omitempty"`
	Status      MemberStatus `json:"status"`
	Role        MemberRole   `json:"role"`
	JoinedAt    string       `json:"joined_at"`
}

// ToResponse converts a Trip model to a TripResponse DTO
func (t *Trip) ToResponse() *TripResponse {
	return &TripResponse{
		ID:           t.ID,
		Name:         t.Name,
		Destination:  t.Destination,
		BaseCurrency: t.BaseCurrency,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		CreatedAt:    t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a TripMember model to a MemberResponse DTO
func (m *TripMember) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:          m.ID,
		TravelerID:  m.TravelerID,
		DisplayName: m.DisplayName,
		Email:       m.Email,
		Status:      m.Status,
		Role:        m.Role,
		JoinedAt:    m.JoinedAt.Format("2006-01-02T15:04:05Z"),
	}
}
