package ports

import (
	"context"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// UserRepository is the persistence port for user accounts. Implementations
// return *domain.NotFoundError when a lookup misses and must guarantee an
// atomic read-modify-write per Update call.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername matches case-insensitively.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the user and all destinations it owns.
	Delete(ctx context.Context, user *domain.User) error
}

// RoleRepository is the persistence port for role definitions.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Role, error)
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindAll(ctx context.Context) ([]domain.Role, error)
	Create(ctx context.Context, role *domain.Role) (*domain.Role, error)
}

// DestinationRepository is the persistence port for destinations.
type DestinationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Destination, error)
	FindAll(ctx context.Context) ([]domain.Destination, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]domain.Destination, error)
	Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error)
	Update(ctx context.Context, dest *domain.Destination) (*domain.Destination, error)
	Delete(ctx context.Context, dest *domain.Destination) error
}
