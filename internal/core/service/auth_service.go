package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
	"github.com/dreamroute/travel-catalog/internal/core/ports"
)

// AuthService implements registration and login: the credential verifier plus
// token issuance.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates an account holding the default ROLE_USER role. Duplicate
// checks run before any persistence attempt.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error) {
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

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return userView(created), nil
}

// Login verifies the presented credentials and issues a bearer token. A
// missing user and a wrong password both yield ErrInvalidCredentials so the
// response never reveals which one was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *ports.UserView, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to sign token")
		return "", nil, err
	}

	return token, userView(user), nil
}
