package ports

import (
	"context"
)

// RegisterInput carries the fields for self-registration and for the
// admin-provisioning path.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*UserView, error)
	// Login verifies credentials and returns a signed bearer token together
	// with the authenticated user's projection.
	Login(ctx context.Context, username, password string) (string, *UserView, error)
}
