package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ServiceRequestService implements posting of client service requests.
// The endpoint is unauthenticated, matching the upstream behaviour, so the
// client id is trusted from the request body.
type ServiceRequestService struct {
	repo   ports.ServiceRequestRepository
	audit  AuditQueue
	logger zerolog.Logger
}

func NewServiceRequestService(repo ports.ServiceRequestRepository, audit AuditQueue, logger zerolog.Logger) *ServiceRequestService {
	return &ServiceRequestService{repo: repo, audit: audit, logger: logger}
}

func (s *ServiceRequestService) Create(ctx context.Context, in ports.CreateServiceRequestInput) (*domain.ServiceRequest, error) {
	created, err := s.repo.Create(ctx, &domain.ServiceRequest{
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		Status:      "open",
	})
	if err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}

	s.audit.Enqueue(ports.AuditEventInput{
		ActorID:  in.ClientID,
		Action:   domain.AuditServiceRequested,
		Entity:   "service_request",
		EntityID: created.ID,
	})
	s.logger.Info().Int64("request_id", created.ID).Int64("client_id", in.ClientID).Msg("service request created")

	return created, nil
}
