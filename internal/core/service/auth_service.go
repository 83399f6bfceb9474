package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// AuditQueue is the interface services use to enqueue activity-trail events.
type AuditQueue interface {
	Enqueue(event ports.AuditEventInput)
}

// AuthService implements registration, login, and logout.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenManager
	audit  AuditQueue
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, tokens *TokenManager, audit AuditQueue, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, audit: audit, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = domain.RoleInventor
	}
	if !domain.ValidRegistrationRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  created.ID,
		Action:   domain.AuditUserRegistered,
		Entity:   "user",
		EntityID: created.ID,
	})
	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user registered")

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	// bcrypt's comparison is constant-time; a malformed stored digest is a
	// verification failure, not a fault.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the presented token. The server keeps no session state
// beyond the denylist entry, which expires with the token.
func (s *AuthService) Logout(ctx context.Context, claims ports.TokenClaims) error {
	if err := s.tokens.Revoke(ctx, claims); err != nil {
		s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("token revocation failed")
		return err
	}
	s.logger.Info().Int64("user_id", claims.UserID).Msg("user logged out")
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
