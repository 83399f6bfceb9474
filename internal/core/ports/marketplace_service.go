package ports

import (
	"context"

	"github.com/techxchange/marketplace-api/internal/core/domain"
)

// CreateListingInput carries all data needed to post a listing. UserID is
// always the identity from the verified token, never client-supplied.
type CreateListingInput struct {
	UserID      int64
	Title       string
	Description string
	Price       float64
	Category    string
	IPType      string
}

type ListingService interface {
	Create(ctx context.Context, in CreateListingInput) (*domain.Listing, error)
	ListActive(ctx context.Context) ([]*domain.Listing, error)
}

// BecomeExpertInput carries the profile attributes for role promotion.
// UserID is taken from the verified token.
type BecomeExpertInput struct {
	UserID     int64
	Title      string
	Bio        string
	HourlyRate float64
	Location   string
}

type ExpertService interface {
	BecomeExpert(ctx context.Context, in BecomeExpertInput) (*domain.ExpertProfile, error)
	List(ctx context.Context) ([]*domain.Expert, error)
}

// CreateServiceRequestInput carries a posted client brief. The endpoint is
// unauthenticated, so ClientID arrives in the request body.
type CreateServiceRequestInput struct {
	ClientID    int64
	Title       string
	Description string
	Budget      float64
}

type ServiceRequestService interface {
	Create(ctx context.Context, in CreateServiceRequestInput) (*domain.ServiceRequest, error)
}
