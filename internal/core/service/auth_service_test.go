package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// stubAuditQueue records enqueued events for assertions.
type stubAuditQueue struct {
	events []ports.AuditEventInput
}

func (q *stubAuditQueue) Enqueue(event ports.AuditEventInput) {
	q.events = append(q.events, event)
}

func newAuthService(repo ports.UserRepository) (*AuthService, *stubAuditQueue) {
	audit := &stubAuditQueue{}
	tokens := NewTokenManager("secret", time.Hour, nil)
	return NewAuthService(repo, tokens, audit, zerolog.Nop()), audit
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, audit := newAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "alice@example.com",
		Password: "pass12345",
		FullName: "Alice Liddell",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.Role != domain.RoleInventor {
		t.Fatalf("expected default role inventor, got %s", user.Role)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditUserRegistered {
		t.Fatalf("expected one registration audit event, got %+v", audit.events)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), ports.RegisterInput{Password: "x"}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for missing email, got %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "bob@example.com", Password: "pass", Role: domain.RoleExpert,
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for expert role at sign-up, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	in := ports.RegisterInput{Email: "bob@example.com", Password: "pass12345", Role: domain.RoleClient}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "carol@example.com", Password: "s3cretpass", FullName: "Carol", Role: domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := svc.tokens.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "dave@example.com", Password: "goodpass1"})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Logout_Revokes(t *testing.T) {
	denylist := newStubDenylist()
	repo := newStubUserRepo()
	audit := &stubAuditQueue{}
	tokens := NewTokenManager("secret", time.Hour, denylist)
	svc := NewAuthService(repo, tokens, audit, zerolog.Nop())

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Email: "erin@example.com", Password: "erinpass1"})
	token, _, err := svc.Login(context.Background(), "erin@example.com", "erinpass1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := tokens.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := svc.Logout(context.Background(), claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := tokens.Verify(context.Background(), token); err != domain.ErrInvalidToken {
		t.Fatalf("expected revoked token to fail verification, got %v", err)
	}
}
