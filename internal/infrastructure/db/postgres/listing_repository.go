package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	const q = `
		INSERT INTO ip_listings (user_id, title, description, price, category, ip_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	created := *l
	err := r.pool.QueryRow(ctx, q,
		l.UserID, l.Title, l.Description, l.Price, l.Category, l.IPType, l.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert listing: %w", err)
	}
	return &created, nil
}

func (r *ListingRepository) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	const q = `
		SELECT id, user_id, title, description, price, category, ip_type, status, created_at
		FROM ip_listings
		WHERE status = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, domain.ListingStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var listings []*domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ID, &l.UserID, &l.Title, &l.Description, &l.Price,
			&l.Category, &l.IPType, &l.Status, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, &l)
	}
	return listings, rows.Err()
}
