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

// UserService orchestrates user lifecycle operations around the
// authorization policy and the user repository.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, hasher: hasher, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userView(user), nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*ports.UserView, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return userView(user), nil
}

func (s *UserService) List(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.UserView, 0, len(users))
	for i := range users {
		views = append(views, *userView(&users[i]))
	}
	return views, nil
}

// Create is the admin-provisioning path: the new account gets the default
// ROLE_USER role, like self-registration, but only administrators may call it.
func (s *UserService) Create(ctx context.Context, input ports.RegisterInput, caller domain.Caller) (*ports.UserView, error) {
	if err := policy.Authorize(policy.ActionCreate, policy.ResourceUser, caller); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.NewDuplicateUsername()
	}

	used, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if used {
		return nil, domain.NewDuplicateEmail()
	}

	defaultRole, err := s.roles.FindByName(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        []domain.Role{*defaultRole},
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("created_by", caller.Username).Msg("user provisioned")
	return userView(created), nil
}

// Update applies the requested field changes after the target is resolved and
// the policy allows every touched field. The role list is replaced wholesale:
// one unresolvable role name rejects the entire update.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UserUpdateInput, caller domain.Caller) (*ports.UserView, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeUserUpdate(caller, id, input.Password != "", input.Roles); err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.NewDuplicateUsername()
		}
		user.Username = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		used, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if used {
			return nil, domain.NewDuplicateEmail()
		}
		user.Email = input.Email
	}

	if input.Password != "" {
		hash, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if len(input.Roles) > 0 {
		updated := make([]domain.Role, 0, len(input.Roles))
		for _, name := range input.Roles {
			role, err := s.roles.FindByName(ctx, name)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, &domain.RoleNotFoundError{RoleName: name}
				}
				return nil, err
			}
			updated = append(updated, *role)
		}
		user.Roles = updated
	}

	saved, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Str("updated_by", caller.Username).Msg("user updated")
	return userView(saved), nil
}

// Delete removes a user together with its destinations. The admin role gate
// runs before the target is looked up: non-admins are rejected even for ids
// that do not exist.
func (s *UserService) Delete(ctx context.Context, id int64, caller domain.Caller) (string, error) {
	if err := policy.Authorize(policy.ActionDelete, policy.ResourceUser, caller); err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := s.users.Delete(ctx, user); err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", id).Str("deleted_by", caller.Username).Msg("user deleted")
	return fmt.Sprintf("User with id %d has been deleted", id), nil
}
