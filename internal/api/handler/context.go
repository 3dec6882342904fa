package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/api/middleware"
	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// ctxCaller extracts the caller identity injected by the Authenticate
// middleware and fast-fails before any service call. A route behind
// RequireAuth always has a caller; a missing one here means the route was
// wired without the middleware, which we treat as an auth failure rather
// than a 500.
func ctxCaller(c echo.Context) (domain.Caller, error) {
	caller, _ := c.Get(middleware.CallerContextKey).(domain.Caller)
	if !caller.Valid() {
		return domain.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return caller, nil
}

// ctxCallerIfAny returns the caller when one was resolved and the zero
// Caller otherwise. Public routes use it so the service layer can still
// distinguish anonymous from authenticated requests.
func ctxCallerIfAny(c echo.Context) domain.Caller {
	caller, _ := c.Get(middleware.CallerContextKey).(domain.Caller)
	return caller
}
