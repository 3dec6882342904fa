package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/api/metrics"
	"github.com/dreamroute/travel-catalog/internal/core/policy"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// UserHandler handles HTTP requests for user account management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,password"`
}

type updateUserRequest struct {
	Username string   `json:"username" validate:"omitempty,max=20"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Password string   `json:"password" validate:"omitempty,min=8,password"`
	Roles    []string `json:"roles"`
}

// List handles GET /users/all.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.UserView
// @Failure      403  {object}  map[string]string
// @Router       /users/all [get]
func (h *UserHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := policy.Authorize(policy.ActionList, policy.ResourceUser, caller); err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// GetByID handles GET /users/id/:id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  ports.UserView
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/id/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := policy.Authorize(policy.ActionRead, policy.ResourceUser, caller); err != nil {
		return err
	}

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

// GetByUsername handles GET /users/username/:username. The lookup is
// case-insensitive.
//
// @Summary      Get a user by username
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  ports.UserView
// @Failure      404       {object}  map[string]string
// @Router       /users/username/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}
	if err := policy.Authorize(policy.ActionRead, policy.ResourceUser, caller); err != nil {
		return err
	}

	view, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Create handles POST /users/create, the admin-provisioning path.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  ports.UserView
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /users/create [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
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
	view, err := h.service.Create(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}, caller)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues("admin").Inc()
	return c.JSON(http.StatusCreated, view)
}

// Update handles PUT /users/update/:id. Empty fields are left unchanged;
// which fields the caller may touch is decided by the authorization policy.
//
// @Summary      Update a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  ports.UserView
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/update/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateUserRequest
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
	view, err := h.service.Update(c.Request().Context(), id, ports.UserUpdateInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    req.Roles,
	}, caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /users/delete/:id. The admin gate is enforced in the
// service before the target is even looked up, so non-admins cannot probe
// which user ids exist.
//
// @Summary      Delete a user account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  deleteResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
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
