package ports

import (
	"context"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// ExpertRepository defines persistence for expert profiles and the
// role-promotion write.
type ExpertRepository interface {
	// Promote inserts the profile and updates the owning user's role to
	// "expert" in a single transaction: either the profile exists and the
	// role is "expert", or neither write happened.
	// Returns domain.ErrProfileExists when the user already has a profile.
	Promote(ctx context.Context, profile *domain.ExpertProfile) (*domain.ExpertProfile, error)
	// ListExperts returns the joined user + profile directory view.
	ListExperts(ctx context.Context) ([]*domain.Expert, error)
}
