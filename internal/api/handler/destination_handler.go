package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/api/metrics"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// DestinationHandler handles HTTP requests for the destination catalog.
type DestinationHandler struct {
	service ports.DestinationService
}

func NewDestinationHandler(service ports.DestinationService) *DestinationHandler {
	return &DestinationHandler{service: service}
}

type destinationRequest struct {
	Country     string `json:"country" validate:"required,max=70"`
	City        string `json:"city" validate:"required,max=70"`
	Description string `json:"description" validate:"required,max=400"`
	Image       string `json:"image" validate:"required,http_url"`
}

type deleteResponse struct {
	Message string `json:"message"`
}

func (r destinationRequest) input() ports.DestinationInput {
	return ports.DestinationInput{
		Country:     r.Country,
		City:        r.City,
		Description: r.Description,
		Image:       r.Image,
	}
}

// List handles GET /destinations.
//
// @Summary      List all destinations
// @Tags         destinations
// @Produce      json
// @Success      200  {array}  ports.DestinationView
// @Router       /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /destinations/:id.
//
// @Summary      Get a destination by id
// @Tags         destinations
// @Produce      json
// @Param        id   path      int  true  "Destination id"
// @Success      200  {object}  ports.DestinationView
// @Failure      404  {object}  map[string]string
// @Router       /destinations/{id} [get]
func (h *DestinationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// ListByOwner handles GET /destinations/user/:userId.
//
// @Summary      List destinations owned by a user
// @Tags         destinations
// @Produce      json
// @Param        userId  path      int  true  "Owner user id"
// @Success      200     {array}   ports.DestinationView
// @Failure      404     {object}  map[string]string
// @Router       /destinations/user/{userId} [get]
func (h *DestinationHandler) ListByOwner(c echo.Context) error {
	id, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	views, err := h.service.ListByOwner(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Create handles POST /destinations. The caller becomes the owner.
//
// @Summary      Create a destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      destinationRequest  true  "Destination details"
// @Success      201   {object}  ports.DestinationView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /destinations [post]
func (h *DestinationHandler) Create(c echo.Context) error {
	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.service.Create(c.Request().Context(), req.input(), ctxCallerIfAny(c))
	if err != nil {
		return err
	}

	metrics.DestinationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /destinations/:id. Only the owner or an administrator
// may update; the owner is never reassigned.
//
// @Summary      Update a destination
// @Tags         destinations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Destination id"
// @Param        body  body      destinationRequest  true  "Destination details"
// @Success      200   {object}  ports.DestinationView
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /destinations/{id} [put]
func (h *DestinationHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req destinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	view, err := h.service.Update(c.Request().Context(), id, req.input(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /destinations/:id.
//
// @Summary      Delete a destination
// @Tags         destinations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Destination id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	msg, err := h.service.Delete(c.Request().Context(), id, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Message: msg})
}

// pathID parses a numeric path parameter, rejecting non-numeric values with
// 400 before the service layer sees them.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a number")
	}
	return id, nil
}
