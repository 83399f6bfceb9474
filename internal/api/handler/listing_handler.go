package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/api/metrics"
	"github.com/techxchange/marketplace-api/internal/core/domain"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ListingHandler handles HTTP requests for IP listings.
type ListingHandler struct {
	service ports.ListingService
}

func NewListingHandler(service ports.ListingService) *ListingHandler {
	return &ListingHandler{service: service}
}

// List handles GET /api/listings. Browsing is open, no auth required.
//
// @Summary      Browse active IP listings
// @Tags         listings
// @Produce      json
// @Success      200  {array}   listingResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/listings [get]
func (h *ListingHandler) List(c echo.Context) error {
	listings, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, toListingResponse(l))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/listings. The owner is always the authenticated
// identity from the token, never the request body.
//
// @Summary      Post an IP listing for sale
// @Tags         listings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createListingRequest  true  "Listing details"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/listings [post]
func (h *ListingHandler) Create(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	listing, err := h.service.Create(c.Request().Context(), ports.CreateListingInput{
		UserID:      claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		IPType:      req.IPType,
	})
	if err != nil {
		return err
	}

	metrics.ListingsCreatedTotal.WithLabelValues(listing.IPType).Inc()

	return c.JSON(http.StatusCreated, toListingResponse(listing))
}

func toListingResponse(l *domain.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    l.Category,
		IPType:      l.IPType,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt.UTC(),
	}
}
