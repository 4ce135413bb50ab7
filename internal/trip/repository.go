package trip

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles trip data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new trip repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new trip into the database
func (r *Repository) Create(ctx context.Context, req *CreateTripRequest) (*Trip, error) {
	query := `
		INSERT INTO trips (id, name, destination, base_currency, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, destination, base_currency, start_date, end_date, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), req.Name, req.Destination, req.BaseCurrency, req.StartDate, req.EndDate,
	).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Destination,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip, nil
}

// GetByID retrieves a trip by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Trip, error) {
	query := `
		SELECT id, name, destination, base_currency, start_date, end_date, created_at
		FROM trips
		WHERE id = $1
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Destination,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return trip, nil
}

// ListByTravelerID retrieves all trips a traveler is a member of
func (r *Repository) ListByTravelerID(ctx context.Context, travelerID string, limit, offset int) ([]*Trip, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(DISTINCT t.id)
		FROM trips t
		JOIN trip_members tm ON t.id = tm.trip_id
		WHERE tm.traveler_id = $1
	`
	if err := r.db.QueryRowContext(ctx, countQuery, travelerID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	query := `
		SELECT DISTINCT t.id, t.name, t.destination, t.base_currency, t.start_date, t.end_date, t.created_at
		FROM trips t
		JOIN trip_members tm ON t.id = tm.trip_id
		WHERE tm.traveler_id = $1
		ORDER BY t.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, travelerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*Trip
	for rows.Next() {
		trip := &Trip{}
		if err := rows.Scan(
			&trip.ID,
			&trip.Name,
			&trip.Destination,
			&trip.BaseCurrency,
			&trip.StartDate,
			&trip.EndDate,
			&trip.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}

	return trips, total, nil
}

// Update modifies an existing trip
func (r *Repository) Update(ctx context.Context, id string, req *UpdateTripRequest) (*Trip, error) {
	query := `
		UPDATE trips
		SET name = COALESCE($2, name),
		    destination = COALESCE($3, destination),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date)
		WHERE id = $1
		RETURNING id, name, destination, base_currency, start_date, end_date, created_at
	`

	trip := &Trip{}
	err := r.db.QueryRowContext(ctx, query, id, req.Name, req.Destination, req.StartDate, req.EndDate).Scan(
		&trip.ID,
		&trip.Name,
		&trip.Destination,
		&trip.BaseCurrency,
		&trip.StartDate,
		&trip.EndDate,
		&trip.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// Delete removes a trip
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM trips WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// AddMember adds a traveler to a trip
func (r *Repository) AddMember(ctx context.Context, tripID string, req *AddMemberRequest) (*TripMember, error) {
	role := req.Role
	if role == "" {
		role = MemberRoleMember
	}

	query := `
		INSERT INTO trip_members (id, trip_id, traveler_id, status, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, trip_id, traveler_id, status, role, joined_at
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), tripID, req.TravelerID, MemberStatusInvited, role).Scan(
		&member.ID,
		&member.TripID,
		&member.TravelerID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add trip member: %w", err)
	}

	return member, nil
}

// GetMember retrieves a single membership row
func (r *Repository) GetMember(ctx context.Context, tripID, travelerID string) (*TripMember, error) {
	query := `
		SELECT tm.id, tm.trip_id, tm.traveler_id, tm.status, tm.role, tm.joined_at,
		       t.display_name, t.email
		FROM trip_members tm
		JOIN travelers t ON tm.traveler_id = t.id
		WHERE tm.trip_id = $1 AND tm.traveler_id = $2
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, travelerID).Scan(
		&member.ID,
		&member.TripID,
		&member.TravelerID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
		&member.DisplayName,
		&member.Email,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trip member: %w", err)
	}

	return member, nil
}

// GetMembers retrieves the full roster for a trip, in canonical order
// (ascending traveler id) so downstream settlement output is deterministic.
func (r *Repository) GetMembers(ctx context.Context, tripID string) ([]*TripMember, error) {
	query := `
		SELECT tm.id, tm.trip_id, tm.traveler_id, tm.status, tm.role, tm.joined_at,
		       t.display_name, t.email
		FROM trip_members tm
		JOIN travelers t ON tm.traveler_id = t.id
		WHERE tm.trip_id = $1
		ORDER BY tm.traveler_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip members: %w", err)
	}
	defer rows.Close()

	var members []*TripMember
	for rows.Next() {
		member := &TripMember{}
		if err := rows.Scan(
			&member.ID,
			&member.TripID,
			&member.TravelerID,
			&member.Status,
			&member.Role,
			&member.JoinedAt,
			&member.DisplayName,
			&member.Email,
		); err != nil {
			return nil, fmt.Errorf("failed to scan trip member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// UpdateMember updates the status or role of a trip member
func (r *Repository) UpdateMember(ctx context.Context, tripID, travelerID string, req *UpdateMemberRequest) (*TripMember, error) {
	query := `
		UPDATE trip_members
		SET status = COALESCE($3, status),
		    role = COALESCE($4, role)
		WHERE trip_id = $1 AND traveler_id = $2
		RETURNING id, trip_id, traveler_id, status, role, joined_at
	`

	member := &TripMember{}
	err := r.db.QueryRowContext(ctx, query, tripID, travelerID, req.Status, req.Role).Scan(
		&member.ID,
		&member.TripID,
		&member.TravelerID,
		&member.Status,
		&member.Role,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update trip member: %w", err)
	}

	return member, nil
}

// RemoveMember removes a traveler from a trip
func (r *Repository) RemoveMember(ctx context.Context, tripID, travelerID string) error {
	query := `DELETE FROM trip_members WHERE trip_id = $1 AND traveler_id = $2`
	if _, err := r.db.ExecContext(ctx, query, tripID, travelerID); err != nil {
		return fmt.Errorf("failed to remove trip member: %w", err)
	}
	return nil
}
