package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/api/middleware"
	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type stubExpertService struct {
	becomeFn func(ctx context.Context, in ports.BecomeExpertInput) (*domain.ExpertProfile, error)
	listFn   func(ctx context.Context) ([]*domain.Expert, error)
}

func (s *stubExpertService) BecomeExpert(ctx context.Context, in ports.BecomeExpertInput) (*domain.ExpertProfile, error) {
	return s.becomeFn(ctx, in)
}

func (s *stubExpertService) List(ctx context.Context) ([]*domain.Expert, error) {
	return s.listFn(ctx)
}

func TestExpertHandler_BecomeExpert_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpertService{
		becomeFn: func(_ context.Context, in ports.BecomeExpertInput) (*domain.ExpertProfile, error) {
			if in.UserID != 9 {
				t.Fatalf("expected user from token (9), got %d", in.UserID)
			}
			return &domain.ExpertProfile{
				ID:         1,
				UserID:     in.UserID,
				Title:      in.Title,
				Bio:        in.Bio,
				HourlyRate: in.HourlyRate,
				Location:   in.Location,
			}, nil
		},
	}
	handler := NewExpertHandler(stub)

	body := strings.NewReader(`{"title":"Patent Attorney","bio":"20 years of IP law","hourly_rate":150,"location":"Boston"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/experts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(9))
	c.Set(middleware.CtxRole, domain.RoleClient)

	if err := handler.BecomeExpert(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["user_id"] != float64(9) || resp["hourly_rate"] != float64(150) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestExpertHandler_BecomeExpert_ProfileExists(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpertService{
		becomeFn: func(_ context.Context, _ ports.BecomeExpertInput) (*domain.ExpertProfile, error) {
			return nil, domain.ErrProfileExists
		},
	}
	handler := NewExpertHandler(stub)

	body := strings.NewReader(`{"title":"Patent Attorney","bio":"x","hourly_rate":150,"location":"Boston"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/experts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(9))

	err := handler.BecomeExpert(c)
	if !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists to propagate, got %v", err)
	}
}

func TestExpertHandler_BecomeExpert_InvalidBody(t *testing.T) {
	e := newTestEcho()
	handler := NewExpertHandler(&stubExpertService{
		becomeFn: func(_ context.Context, _ ports.BecomeExpertInput) (*domain.ExpertProfile, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"title":"Patent Attorney","bio":"x","hourly_rate":0,"location":"Boston"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/experts", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(9))

	_ = handler.BecomeExpert(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestExpertHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubExpertService{
		listFn: func(_ context.Context) ([]*domain.Expert, error) {
			return []*domain.Expert{
				{UserID: 9, FullName: "Carol", Title: "Patent Attorney", HourlyRate: 150, Location: "Boston"},
			}, nil
		},
	}
	handler := NewExpertHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/experts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["full_name"] != "Carol" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
