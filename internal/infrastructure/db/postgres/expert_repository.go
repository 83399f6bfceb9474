package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

type ExpertRepository struct {
	pool *pgxpool.Pool
}

func NewExpertRepository(pool *pgxpool.Pool) *ExpertRepository {
	return &ExpertRepository{pool: pool}
}

// Promote inserts the expert profile and updates the owning user's role in a
// single transaction, so the profile exists if and only if the role is
// "expert". A second profile for the same user hits the unique constraint
// and surfaces as domain.ErrProfileExists.
func (r *ExpertRepository) Promote(ctx context.Context, profile *domain.ExpertProfile) (*domain.ExpertProfile, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin promote: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertQ = `
		INSERT INTO expert_profiles (user_id, title, bio, hourly_rate, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	created := *profile
	err = tx.QueryRow(ctx, insertQ,
		profile.UserID, profile.Title, profile.Bio, profile.HourlyRate, profile.Location).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	const updateQ = `UPDATE users SET role = $1, updated_at = now() WHERE id = $2`
	tag, err := tx.Exec(ctx, updateQ, domain.RoleExpert, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("promote role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrUserNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit promote: %w", err)
	}
	return &created, nil
}

func (r *ExpertRepository) ListExperts(ctx context.Context) ([]*domain.Expert, error) {
	const q = `
		SELECT u.id, u.full_name, p.title, p.bio, p.hourly_rate, p.location
		FROM users u
		JOIN expert_profiles p ON p.user_id = u.id
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	defer rows.Close()

	var experts []*domain.Expert
	for rows.Next() {
		var e domain.Expert
		if err := rows.Scan(&e.UserID, &e.FullName, &e.Title, &e.Bio, &e.HourlyRate, &e.Location); err != nil {
			return nil, fmt.Errorf("scan expert: %w", err)
		}
		experts = append(experts, &e)
	}
	return experts, rows.Err()
}
