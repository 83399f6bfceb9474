package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/techxchange/marketplace-api/internal/core/ports"
)

// ServiceRequestHandler handles client service-request submissions.
// The endpoint is intentionally unauthenticated, matching the upstream API.
type ServiceRequestHandler struct {
	service ports.ServiceRequestService
}

func NewServiceRequestHandler(service ports.ServiceRequestService) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: service}
}

// Create handles POST /api/services.
//
// @Summary      Post a service request
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequestBody  true  "Service request details"
// @Success      201   {object}  serviceRequestResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/services [post]
func (h *ServiceRequestHandler) Create(c echo.Context) error {
	var req createServiceRequestBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateServiceRequestInput{
		ClientID:    req.ClientID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, serviceRequestResponse{
		ID:          created.ID,
		ClientID:    created.ClientID,
		Title:       created.Title,
		Description: created.Description,
		Budget:      created.Budget,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt.UTC(),
	})
}
