package trip

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrTripNotFound        = errors.New("trip not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("traveler is already a member of this trip")
	ErrNotAuthorized       = errors.New("not authorized to perform this action")
)

// Service handles trip business logic
type Service struct {
	repo *Repository
}

// NewService creates a new trip service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new trip and adds the creator as organizer
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateTripRequest) (*Trip, error) {
	trip, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	// Add creator as organizer
	_, err = s.repo.AddMember(ctx, trip.ID, &AddMemberRequest{
		TravelerID: creatorID,
		Role:       MemberRoleOrganizer,
	})
	if err != nil {
		// TODO: Should rollback trip creation in a transaction
		return nil, err
	}

	// The organizer joins immediately, no invitation step
	_, err = s.repo.UpdateMember(ctx, trip.ID, creatorID, &UpdateMemberRequest{
		Status: statusPtr(MemberStatusJoined),
	})
	if err != nil {
		return nil, err
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// GetByIDWithMembers retrieves a trip with its full roster
func (s *Service) GetByIDWithMembers(ctx context.Context, id string) (*Trip, []*TripMember, error) {
	trip, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return trip, members, nil
}

// ListByTravelerID retrieves all trips for a traveler
func (s *Service) ListByTravelerID(ctx context.Context, travelerID string, page, perPage int) ([]*Trip, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByTravelerID(ctx, travelerID, perPage, offset)
}

// Update modifies an existing trip
func (s *Service) Update(ctx context.Context, id string, req *UpdateTripRequest) (*Trip, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTripNotFound
	}

	return s.repo.Update(ctx, id, req)
}

// Delete removes a trip; only an organizer may do this
func (s *Service) Delete(ctx context.Context, id, travelerID string) error {
	member, err := s.repo.GetMember(ctx, id, travelerID)
	if err != nil {
		return err
	}
	if member == nil || member.Role != MemberRoleOrganizer {
		return ErrNotAuthorized
	}

	return s.repo.Delete(ctx, id)
}

// AddMember invites a traveler to the trip
func (s *Service) AddMember(ctx context.Context, tripID string, req *AddMemberRequest) (*TripMember, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}

	existing, err := s.repo.GetMember(ctx, tripID, req.TravelerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.AddMember(ctx, tripID, req)
}

// JoinTrip marks an invited traveler as joined
func (s *Service) JoinTrip(ctx context.Context, tripID, travelerID string) (*TripMember, error) {
	member, err := s.repo.GetMember(ctx, tripID, travelerID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrMemberNotFound
	}

	return s.repo.UpdateMember(ctx, tripID, travelerID, &UpdateMemberRequest{
		Status: statusPtr(MemberStatusJoined),
	})
}

// RemoveMember removes a traveler from the trip roster
func (s *Service) RemoveMember(ctx context.Context, tripID, travelerID string) error {
	member, err := s.repo.GetMember(ctx, tripID, travelerID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(ctx, tripID, travelerID)
}

// GetMembers returns the roster for a trip in canonical order
func (s *Service) GetMembers(ctx context.Context, tripID string) ([]*TripMember, error) {
	return s.repo.GetMembers(ctx, tripID)
}

func statusPtr(s MemberStatus) *MemberStatus {
	return &s
}
