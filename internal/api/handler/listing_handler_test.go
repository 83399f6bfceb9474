package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/api/middleware"
	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

type stubListingService struct {
	createFn func(ctx context.Context, in ports.CreateListingInput) (*domain.Listing, error)
	listFn   func(ctx context.Context) ([]*domain.Listing, error)
}

func (s *stubListingService) Create(ctx context.Context, in ports.CreateListingInput) (*domain.Listing, error) {
	return s.createFn(ctx, in)
}

func (s *stubListingService) ListActive(ctx context.Context) ([]*domain.Listing, error) {
	return s.listFn(ctx)
}

func TestListingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		createFn: func(_ context.Context, in ports.CreateListingInput) (*domain.Listing, error) {
			if in.UserID != 5 {
				t.Fatalf("expected owner from token (5), got %d", in.UserID)
			}
			if in.Title != "Widget Patent" || in.Price != 1000 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Listing{
				ID:          1,
				UserID:      in.UserID,
				Title:       in.Title,
				Description: in.Description,
				Price:       in.Price,
				Category:    in.Category,
				IPType:      in.IPType,
				Status:      domain.ListingStatusActive,
				CreatedAt:   time.Now(),
			}, nil
		},
	}
	handler := NewListingHandler(stub)

	body := strings.NewReader(`{"title":"Widget Patent","description":"A novel widget","price":1000,"category":"Tech","ip_type":"Patent"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/listings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, int64(5))
	c.Set(middleware.CtxRole, domain.RoleInventor)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != domain.ListingStatusActive || resp["user_id"] != float64(5) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestListingHandler_Create_InvalidBody(t *testing.T) {
	e := newTestEcho()
	handler := NewListingHandler(&stubListingService{
		createFn: func(_ context.Context, _ ports.CreateListingInput) (*domain.Listing, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	for name, body := range map[string]string{
		"negative price": `{"title":"Widget Patent","description":"x","price":-5,"category":"Tech","ip_type":"Patent"}`,
		"bad ip type":    `{"title":"Widget Patent","description":"x","price":1000,"category":"Tech","ip_type":"Recipe"}`,
		"missing title":  `{"description":"x","price":1000,"category":"Tech","ip_type":"Patent"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/listings", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(middleware.CtxUserID, int64(5))

		_ = handler.Create(c)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestListingHandler_Create_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewListingHandler(&stubListingService{
		createFn: func(_ context.Context, _ ports.CreateListingInput) (*domain.Listing, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"title":"Widget Patent","description":"x","price":1000,"category":"Tech","ip_type":"Patent"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/listings", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestListingHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubListingService{
		listFn: func(_ context.Context) ([]*domain.Listing, error) {
			return []*domain.Listing{
				{ID: 1, UserID: 5, Title: "Widget Patent", Price: 1000, Category: "Tech", IPType: domain.IPTypePatent, Status: domain.ListingStatusActive},
			}, nil
		},
	}
	handler := NewListingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
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
	if len(resp) != 1 || resp[0]["title"] != "Widget Patent" || resp[0]["price"] != float64(1000) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestListingHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	handler := NewListingHandler(&stubListingService{
		listFn: func(_ context.Context) ([]*domain.Listing, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/listings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}
