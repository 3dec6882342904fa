package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/policy"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// DestinationService orchestrates destination lifecycle operations. Reads are
// public; mutations go through the authorization policy.
type DestinationService struct {
	dests  ports.DestinationRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewDestinationService(dests ports.DestinationRepository, users ports.UserRepository, logger zerolog.Logger) *DestinationService {
	return &DestinationService{dests: dests, users: users, logger: logger}
}

func (s *DestinationService) List(ctx context.Context) ([]ports.DestinationView, error) {
	dests, err := s.dests.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return destinationViews(dests), nil
}

func (s *DestinationService) GetByID(ctx context.Context, id int64) (*ports.DestinationView, error) {
	dest, err := s.dests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return destinationView(dest), nil
}

// ListByOwner returns the destinations owned by the given user. The owner
// must exist; an unknown id fails with the user-not-found error.
func (s *DestinationService) ListByOwner(ctx context.Context, userID int64) ([]ports.DestinationView, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	dests, err := s.dests.FindAllByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	return destinationViews(dests), nil
}

// Create stores a new destination owned by the caller. The owner is resolved
// by username so a token for a since-deleted user fails here.
func (s *DestinationService) Create(ctx context.Context, input ports.DestinationInput, caller domain.Caller) (*ports.DestinationView, error) {
	if err := policy.Authorize(policy.ActionCreate, policy.ResourceDestination, caller); err != nil {
		return nil, err
	}

	owner, err := s.users.FindByUsername(ctx, caller.Username)
	if err != nil {
		return nil, err
	}

	dest := &domain.Destination{
		Country:       input.Country,
		City:          input.City,
		Description:   input.Description,
		Image:         input.Image,
		OwnerID:       owner.ID,
		OwnerUsername: owner.Username,
	}

	created, err := s.dests.Create(ctx, dest)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("destination_id", created.ID).Str("owner", owner.Username).Msg("destination created")
	return destinationView(created), nil
}

// Update rewrites the destination's fields. The owner reference is never
// touched; only the owner or an administrator may update.
func (s *DestinationService) Update(ctx context.Context, id int64, input ports.DestinationInput, caller domain.Caller) (*ports.DestinationView, error) {
	dest, err := s.dests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeDestinationChange(caller, dest); err != nil {
		return nil, err
	}

	dest.Country = input.Country
	dest.City = input.City
	dest.Description = input.Description
	dest.Image = input.Image

	updated, err := s.dests.Update(ctx, dest)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("destination_id", id).Str("updated_by", caller.Username).Msg("destination updated")
	return destinationView(updated), nil
}

func (s *DestinationService) Delete(ctx context.Context, id int64, caller domain.Caller) (string, error) {
	dest, err := s.dests.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := policy.AuthorizeDestinationChange(caller, dest); err != nil {
		return "", err
	}

	if err := s.dests.Delete(ctx, dest); err != nil {
		return "", err
	}

	s.logger.Info().Int64("destination_id", id).Str("deleted_by", caller.Username).Msg("destination deleted")
	return fmt.Sprintf("Destination with id %d has been deleted", id), nil
}

func destinationViews(dests []domain.Destination) []ports.DestinationView {
	views := make([]ports.DestinationView, 0, len(dests))
	for i := range dests {
		views = append(views, *destinationView(&dests[i]))
	}
	return views
}
