package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/api/metrics"
	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ExpertHandler handles the expert directory and role promotion.
type ExpertHandler struct {
	service ports.ExpertService
}

func NewExpertHandler(service ports.ExpertService) *ExpertHandler {
	return &ExpertHandler{service: service}
}

type becomeExpertRequest struct {
	Title      string  `json:"title"       validate:"required"`
	Bio        string  `json:"bio"         validate:"required"`
	HourlyRate float64 `json:"hourly_rate" validate:"required,gt=0"`
	Location   string  `json:"location"    validate:"required"`
}

type expertProfileResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"user_id"`
	Title      string  `json:"title"`
	Bio        string  `json:"bio"`
	HourlyRate float64 `json:"hourly_rate"`
	Location   string  `json:"location"`
}

type expertResponse struct {
	UserID     int64   `json:"user_id"`
	FullName   string  `json:"full_name"`
	Title      string  `json:"title"`
	Bio        string  `json:"bio"`
	HourlyRate float64 `json:"hourly_rate"`
	Location   string  `json:"location"`
}

// List handles GET /api/experts, the public expert directory.
//
// @Summary      Browse the expert directory
// @Tags         experts
// @Produce      json
// @Success      200  {array}   expertResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/experts [get]
func (h *ExpertHandler) List(c echo.Context) error {
	experts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]expertResponse, 0, len(experts))
	for _, e := range experts {
		resp = append(resp, expertResponse{
			UserID:     e.UserID,
			FullName:   e.FullName,
			Title:      e.Title,
			Bio:        e.Bio,
			HourlyRate: e.HourlyRate,
			Location:   e.Location,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// BecomeExpert handles POST /api/experts. It creates the caller's profile and
// promotes their role in one transaction. The promoted user is always the
// token identity.
//
// @Summary      Create an expert profile (role promotion)
// @Tags         experts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      becomeExpertRequest  true  "Profile details"
// @Success      201   {object}  expertProfileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/experts [post]
func (h *ExpertHandler) BecomeExpert(c echo.Context) error {
	var req becomeExpertRequest
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

	profile, err := h.service.BecomeExpert(c.Request().Context(), ports.BecomeExpertInput{
		UserID:     claims.UserID,
		Title:      req.Title,
		Bio:        req.Bio,
		HourlyRate: req.HourlyRate,
		Location:   req.Location,
	})
	if err != nil {
		return err
	}

	metrics.ExpertPromotionsTotal.Inc()

	return c.JSON(http.StatusCreated, expertProfileResponse{
		ID:         profile.ID,
		UserID:     profile.UserID,
		Title:      profile.Title,
		Bio:        profile.Bio,
		HourlyRate: profile.HourlyRate,
		Location:   profile.Location,
	})
}
