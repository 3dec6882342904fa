package ports

import (
	"context"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

// DestinationInput carries the mutable fields of a destination. The owner is
// derived from the caller on create and never changed on update.
type DestinationInput struct {
	Country     string
	City        string
	Description string
	Image       string
}

// DestinationView is the projection of a destination returned by the service
// layer. Username is the owner's username.
type DestinationView struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Username    string `json:"username"`
}

// DestinationService defines use-case operations for destinations. Reads are
// public; create requires an authenticated caller; update and delete require
// the owner or an administrator.
type DestinationService interface {
	List(ctx context.Context) ([]DestinationView, error)
	GetByID(ctx context.Context, id int64) (*DestinationView, error)
	ListByOwner(ctx context.Context, userID int64) ([]DestinationView, error)
	Create(ctx context.Context, input DestinationInput, caller domain.Caller) (*DestinationView, error)
	Update(ctx context.Context, id int64, input DestinationInput, caller domain.Caller) (*DestinationView, error)
	Delete(ctx context.Context, id int64, caller domain.Caller) (string, error)
}
