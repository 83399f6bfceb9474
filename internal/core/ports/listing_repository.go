package ports

import (
	"context"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// ListingRepository defines persistence operations for IP listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	// ListActive returns listings with status "active", newest first.
	ListActive(ctx context.Context) ([]*domain.Listing, error)
}

// ServiceRequestRepository defines persistence for client service requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, r *domain.ServiceRequest) (*domain.ServiceRequest, error)
}
