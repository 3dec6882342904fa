package ports

import (
	"context"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// RoleService defines operations on role definitions. Every operation is
// restricted to administrators.
type RoleService interface {
	List(ctx context.Context, caller domain.Caller) ([]domain.Role, error)
	GetByID(ctx context.Context, id int64, caller domain.Caller) (*domain.Role, error)
	Create(ctx context.Context, name string, caller domain.Caller) (*domain.Role, error)
}
