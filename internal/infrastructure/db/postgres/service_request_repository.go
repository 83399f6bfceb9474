package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

type ServiceRequestRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRequestRepository(pool *pgxpool.Pool) *ServiceRequestRepository {
	return &ServiceRequestRepository{pool: pool}
}

func (r *ServiceRequestRepository) Create(ctx context.Context, sr *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	const q = `
		INSERT INTO service_requests (client_id, title, description, budget, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	created := *sr
	err := r.pool.QueryRow(ctx, q,
		sr.ClientID, sr.Title, sr.Description, sr.Budget, sr.Status).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert service request: %w", err)
	}
	return &created, nil
}
