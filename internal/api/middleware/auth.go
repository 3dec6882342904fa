package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// CallerContextKey is the echo context key holding the resolved domain.Caller.
const CallerContextKey = "caller"

// Authenticate resolves the caller identity for the request. A missing,
// malformed, invalid, or expired bearer token is not an error here: the
// request simply continues anonymously and route gates decide what that
// means. A verified token whose subject no longer exists is rejected with
// 401, since the token is structurally valid but names nobody.
func Authenticate(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			claims, ok := tokens.Verify(parts[1])
			if !ok {
				return next(c)
			}

			// Re-resolve the account on every request so role changes and
			// deletions take effect immediately. The roles in the token are
			// deliberately ignored in favour of the stored ones.
			user, err := users.FindByUsername(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token subject no longer exists")
				}
				return err
			}

			c.Set(CallerContextKey, domain.Caller{
				ID:       user.ID,
				Username: user.Username,
				Roles:    user.RoleNames(),
			})
			return next(c)
		}
	}
}

// RequireAuth rejects anonymous requests with 401. It sits in front of routes
// whose policy never permits anonymous access; the finer role and ownership
// decisions stay in the service layer.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(CallerContextKey).(domain.Caller)
			if !caller.Valid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
