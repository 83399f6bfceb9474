package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type stubExpertRepo struct {
	promoteFn func(ctx context.Context, profile *domain.ExpertProfile) (*domain.ExpertProfile, error)
	listFn    func(ctx context.Context) ([]*domain.Expert, error)
}

func (r *stubExpertRepo) Promote(ctx context.Context, profile *domain.ExpertProfile) (*domain.ExpertProfile, error) {
	return r.promoteFn(ctx, profile)
}

func (r *stubExpertRepo) ListExperts(ctx context.Context) ([]*domain.Expert, error) {
	return r.listFn(ctx)
}

func TestExpertService_BecomeExpert_Success(t *testing.T) {
	repo := &stubExpertRepo{
		promoteFn: func(_ context.Context, profile *domain.ExpertProfile) (*domain.ExpertProfile, error) {
			if profile.UserID != 7 {
				t.Fatalf("expected user id 7, got %d", profile.UserID)
			}
			created := *profile
			created.ID = 42
			return &created, nil
		},
	}
	audit := &stubAuditQueue{}
	svc := NewExpertService(repo, audit, zerolog.Nop())

	profile, err := svc.BecomeExpert(context.Background(), ports.BecomeExpertInput{
		UserID:     7,
		Title:      "Patent Attorney",
		Bio:        "Ten years of IP litigation.",
		HourlyRate: 250,
		Location:   "Austin, TX",
	})
	if err != nil {
		t.Fatalf("BecomeExpert returned error: %v", err)
	}
	if profile.ID != 42 || profile.Title != "Patent Attorney" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditExpertPromoted {
		t.Fatalf("expected promotion audit event, got %+v", audit.events)
	}
}

// A repository failure must leave no partial observable state: the service
// returns the error untouched and records nothing in the activity trail.
func TestExpertService_BecomeExpert_RepoFailure(t *testing.T) {
	repo := &stubExpertRepo{
		promoteFn: func(_ context.Context, _ *domain.ExpertProfile) (*domain.ExpertProfile, error) {
			return nil, domain.ErrProfileExists
		},
	}
	audit := &stubAuditQueue{}
	svc := NewExpertService(repo, audit, zerolog.Nop())

	_, err := svc.BecomeExpert(context.Background(), ports.BecomeExpertInput{UserID: 7})
	if !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}
	if len(audit.events) != 0 {
		t.Fatalf("expected no audit events on failure, got %+v", audit.events)
	}
}

func TestExpertService_List(t *testing.T) {
	repo := &stubExpertRepo{
		listFn: func(_ context.Context) ([]*domain.Expert, error) {
			return []*domain.Expert{
				{UserID: 1, FullName: "Alice", Title: "Trademark Counsel", HourlyRate: 180},
			}, nil
		},
	}
	svc := NewExpertService(repo, &stubAuditQueue{}, zerolog.Nop())

	experts, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(experts) != 1 || experts[0].FullName != "Alice" {
		t.Fatalf("unexpected experts: %+v", experts)
	}
}
