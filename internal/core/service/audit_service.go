package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists activity-trail
// entries. Processing runs on the dispatcher workers, never on the request
// path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, in ports.AuditEventInput) error {
	ts := in.OccurredAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	event := &domain.AuditEvent{
		ActorID:   in.ActorID,
		Action:    in.Action,
		Entity:    in.Entity,
		EntityID:  in.EntityID,
		CreatedAt: ts,
	}
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}

	s.log.Debug().
		Int64("actor_id", in.ActorID).
		Str("action", in.Action).
		Msg("audit event recorded")

	return nil
}
