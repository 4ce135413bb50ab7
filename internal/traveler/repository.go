package traveler

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles traveler data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new traveler repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new traveler into the database
func (r *Repository) Create(ctx context.Context, req *CreateTravelerRequest) (*Traveler, error) {
	query := `
		INSERT INTO travelers (id, username, email, display_name, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, email, display_name, avatar_url, created_at
	`

	traveler := &Traveler{}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), req.Username, req.Email, req.DisplayName, req.AvatarURL).Scan(
		&traveler.ID,
		&traveler.Username,
		&traveler.Email,
		&traveler.DisplayName,
		&traveler.AvatarURL,
		&traveler.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create traveler: %w", err)
	}

	return traveler, nil
}

// GetByID retrieves a traveler by their ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Traveler, error) {
	query := `
		SELECT id, username, email, display_name, avatar_url, created_at
		FROM travelers
		WHERE id = $1
	`

	traveler := &Traveler{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&traveler.ID,
		&traveler.Username,
		&traveler.Email,
		&traveler.DisplayName,
		&traveler.AvatarURL,
		&traveler.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get traveler: %w", err)
	}

	return traveler, nil
}

// GetByEmail retrieves a traveler by their email address
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Traveler, error) {
	query := `
		SELECT id, username, email, display_name, avatar_url, created_at
		FROM travelers
		WHERE email = $1
	`

	traveler := &Traveler{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&traveler.ID,
		&traveler.Username,
		&traveler.Email,
		&traveler.DisplayName,
		&traveler.AvatarURL,
		&traveler.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get traveler by email: %w", err)
	}

	return traveler, nil
}

// List retrieves travelers with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Traveler, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM travelers`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count travelers: %w", err)
	}

	query := `
		SELECT id, username, email, display_name, avatar_url, created_at
		FROM travelers
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list travelers: %w", err)
	}
	defer rows.Close()

	var travelers []*Traveler
	for rows.Next() {
		traveler := &Traveler{}
		if err := rows.Scan(
			&traveler.ID,
			&traveler.Username,
			&traveler.Email,
			&traveler.DisplayName,
			&traveler.AvatarURL,
			&traveler.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan traveler: %w", err)
		}
		travelers = append(travelers, traveler)
	}

	return travelers, total, nil
}

// Update modifies an existing traveler
func (r *Repository) Update(ctx context.Context, id string, req *UpdateTravelerRequest) (*Traveler, error) {
	query := `
		UPDATE travelers
		SET display_name = COALESCE($2, display_name),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING id, username, email, display_name, avatar_url, created_at
	`

	traveler := &Traveler{}
	err := r.db.QueryRowContext(ctx, query, id, req.DisplayName, req.AvatarURL).Scan(
		&traveler.ID,
		&traveler.Username,
		&traveler.Email,
		&traveler.DisplayName,
		&traveler.AvatarURL,
		&traveler.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update traveler: %w", err)
	}

	return traveler, nil
}

// Delete removes a traveler
func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM travelers WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete traveler: %w", err)
	}
	return nil
}
