package traveler

// CreateTravelerRequest represents the request body for creating a traveler
type CreateTravelerRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	DisplayName string  `json:"display_name" validate:"required,min=1,max=100"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// UpdateTravelerRequest represents the request body for updating a traveler
type UpdateTravelerRequest struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=100"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

// TravelerResponse represents the response for a single traveler
type TravelerResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ToResponse converts a Traveler model to a TravelerResponse DTO
func (t *Traveler) ToResponse() *TravelerResponse {
	return &TravelerResponse{
		ID:          t.ID,
		Username:    t.Username,
		Email:       t.Email,
		DisplayName: t.DisplayName,
		AvatarURL:   t.AvatarURL,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
