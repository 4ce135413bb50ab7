package traveler

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrTravelerNotFound  = errors.New("traveler not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
)

// Service handles traveler business logic
type Service struct {
	repo *Repository
}

// NewService creates a new traveler service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new traveler
func (s *Service) Create(ctx context.Context, req *CreateTravelerRequest) (*Traveler, error) {
	// Check if email is already in use
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a traveler by their ID
func (s *Service) GetByID(ctx context.Context, id string) (*Traveler, error) {
	traveler, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if traveler == nil {
		return nil, ErrTravelerNotFound
	}
	return traveler, nil
}

// List retrieves all travelers with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Traveler, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies an existing traveler
func (s *Service) Update(ctx context.Context, id string, req *UpdateTravelerRequest) (*Traveler, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTravelerNotFound
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes a traveler
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
