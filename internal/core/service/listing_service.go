package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ListingService implements posting and browsing of IP listings.
type ListingService struct {
	repo   ports.ListingRepository
	audit  AuditQueue
	logger zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, audit AuditQueue, logger zerolog.Logger) *ListingService {
	return &ListingService{repo: repo, audit: audit, logger: logger}
}

func (s *ListingService) Create(ctx context.Context, in ports.CreateListingInput) (*domain.Listing, error) {
	created, err := s.repo.Create(ctx, &domain.Listing{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		IPType:      in.IPType,
		Status:      domain.ListingStatusActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  in.UserID,
		Action:   domain.AuditListingCreated,
		Entity:   "listing",
		EntityID: created.ID,
	})
	s.logger.Info().Int64("listing_id", created.ID).Int64("user_id", in.UserID).Str("ip_type", in.IPType).Msg("listing created")

	return created, nil
}

func (s *ListingService) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	listings, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}
