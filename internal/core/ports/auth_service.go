package ports

import (
	"context"
	"time"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// TokenClaims is the verified identity carried by a bearer token.
type TokenClaims struct {
	UserID    int64
	Role      string
	TokenID   string
	ExpiresAt time.Time
}

// TokenVerifier validates a bearer token string and returns its claims.
// Used by the auth middleware; implemented by service.TokenManager.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (TokenClaims, error)
}

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the presented token until its natural expiry.
	Logout(ctx context.Context, claims TokenClaims) error
	CurrentUser(ctx context.Context, userID int64) (*domain.User, error)
}
