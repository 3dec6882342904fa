package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/policy"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// RoleService manages role definitions. All operations are admin-only.
type RoleService struct {
	roles  ports.RoleRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, logger: logger}
}

func (s *RoleService) List(ctx context.Context, caller domain.Caller) ([]domain.Role, error) {
	if err := policy.Authorize(policy.ActionList, policy.ResourceRole, caller); err != nil {
		return nil, err
	}
	return s.roles.FindAll(ctx)
}

func (s *RoleService) GetByID(ctx context.Context, id int64, caller domain.Caller) (*domain.Role, error) {
	if err := policy.Authorize(policy.ActionRead, policy.ResourceRole, caller); err != nil {
		return nil, err
	}
	return s.roles.FindByID(ctx, id)
}

// Create adds a role definition. Names follow ROLE_<UPPERCASE> and are
// unique case-insensitively.
func (s *RoleService) Create(ctx context.Context, name string, caller domain.Caller) (*domain.Role, error) {
	if err := policy.Authorize(policy.ActionCreate, policy.ResourceRole, caller); err != nil {
		return nil, err
	}

	if !domain.ValidRoleName(name) {
		return nil, fmt.Errorf("%w: role name must start with ROLE_ and contain only uppercase letters and underscores", domain.ErrValidationFailed)
	}

	if existing, err := s.roles.FindByName(ctx, name); err == nil && existing != nil {
		return nil, &domain.DuplicateValueError{Field: "role_name", Message: "Role already exists"}
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.roles.Create(ctx, &domain.Role{Name: name})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("role", name).Str("created_by", caller.Username).Msg("role created")
	return created, nil
}
