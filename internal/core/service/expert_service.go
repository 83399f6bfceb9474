package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ExpertService implements the expert directory and the one-way
// inventor/client → expert role promotion.
type ExpertService struct {
	repo   ports.ExpertRepository
	audit  AuditQueue
	logger zerolog.Logger
}

func NewExpertService(repo ports.ExpertRepository, audit AuditQueue, logger zerolog.Logger) *ExpertService {
	return &ExpertService{repo: repo, audit: audit, logger: logger}
}

// BecomeExpert inserts the profile and promotes the user's role. Both writes
// happen in one repository transaction: either the profile exists and the
// role is "expert", or neither write landed. The user id always comes from
// the verified token claims.
func (s *ExpertService) BecomeExpert(ctx context.Context, in ports.BecomeExpertInput) (*domain.ExpertProfile, error) {
	profile, err := s.repo.Promote(ctx, &domain.ExpertProfile{
		UserID:     in.UserID,
		Title:      in.Title,
		Bio:        in.Bio,
		HourlyRate: in.HourlyRate,
		Location:   in.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("become expert: %w", err)
	}

	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  in.UserID,
		Action:   domain.AuditExpertPromoted,
		Entity:   "expert_profile",
		EntityID: profile.ID,
	})
	s.logger.Info().Int64("user_id", in.UserID).Int64("profile_id", profile.ID).Msg("user promoted to expert")

	return profile, nil
}

func (s *ExpertService) List(ctx context.Context) ([]*domain.Expert, error) {
	experts, err := s.repo.ListExperts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experts: %w", err)
	}
	return experts, nil
}
