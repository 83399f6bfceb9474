package ports

import (
	"context"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// AuditRepository persists activity-trail entries.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
}
