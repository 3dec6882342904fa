package ports

import (
	"context"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// UserView is the projection of a user returned by the service layer.
// Destinations holds the cities of the destinations the user owns.
type UserView struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Destinations []string `json:"destinations"`
	Roles        []string `json:"roles"`
}

// UserUpdateInput carries the mutable fields of a user update. Empty string
// fields are left unchanged; a nil or empty Roles slice leaves the role list
// unchanged.
type UserUpdateInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// UserService defines use-case operations on user accounts. Mutating
// operations take the resolved caller context and consult the authorization
// policy before touching the repository.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	GetByUsername(ctx context.Context, username string) (*UserView, error)
	List(ctx context.Context) ([]UserView, error)
	// Create is the admin-provisioning path: same flow as registration but
	// restricted to administrators.
	Create(ctx context.Context, input RegisterInput, caller domain.Caller) (*UserView, error)
	Update(ctx context.Context, id int64, input UserUpdateInput, caller domain.Caller) (*UserView, error)
	// Delete removes the user and its destinations, returning a confirmation
	// message. The admin role gate is checked before the target is looked up.
	Delete(ctx context.Context, id int64, caller domain.Caller) (string, error)
}
