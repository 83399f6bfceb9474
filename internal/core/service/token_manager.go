package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// TokenDenylist abstracts the revocation store (Redis). A revoked token id
// stays listed until the token's natural expiry, after which the signature
// check alone rejects it.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager mints and validates HS256 bearer tokens. The signing secret
// is process-wide configuration; rotating it invalidates every outstanding
// token.
type TokenManager struct {
	secret   []byte
	ttl      time.Duration
	denylist TokenDenylist
}

func NewTokenManager(secret string, ttl time.Duration, denylist TokenDenylist) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, denylist: denylist}
}

// Issue mints a signed token encoding the user's id and role.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			ID:        newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify validates signature, algorithm, structure, and expiry, then checks
// the denylist. Any failure surfaces as domain.ErrInvalidToken.
func (m *TokenManager) Verify(ctx context.Context, token string) (ports.TokenClaims, error) {
	var claims tokenClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return ports.TokenClaims{}, domain.ErrInvalidToken
	}

	out := ports.TokenClaims{
		UserID:  userID,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	if m.denylist != nil && out.TokenID != "" {
		revoked, err := m.denylist.IsRevoked(ctx, out.TokenID)
		if err != nil {
			return ports.TokenClaims{}, fmt.Errorf("denylist check: %w", err)
		}
		if revoked {
			return ports.TokenClaims{}, domain.ErrInvalidToken
		}
	}

	return out, nil
}

// Revoke denylists the token until its expiry.
func (m *TokenManager) Revoke(ctx context.Context, claims ports.TokenClaims) error {
	if m.denylist == nil {
		return nil
	}
	until := claims.ExpiresAt
	if until.IsZero() {
		until = time.Now().UTC().Add(m.ttl)
	}
	return m.denylist.Revoke(ctx, claims.TokenID, until)
}

// newTokenID returns a random 16-byte hex token id for the jti claim.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 16)
	}
	return hex.EncodeToString(b)
}
