package ports

import (
	"context"
	"time"
)

// AuditEventInput is the DTO enqueued by handlers and services for the
// asynchronous activity trail.
type AuditEventInput struct {
	ActorID    int64
	Action     string
	Entity     string
	EntityID   int64
	OccurredAt time.Time
}

// AuditService processes a single activity-trail event.
type AuditService interface {
	Process(ctx context.Context, in AuditEventInput) error
}
