package ports

import (
	"context"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// UserRepository defines persistence for user credential records.
// Every lookup is a fresh read from the backing store; the unique email
// constraint is the sole guard against concurrent duplicate registration.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateRole sets the user's role. Idempotent when the role is unchanged.
	UpdateRole(ctx context.Context, id int64, role string) error
}
