package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Destinations").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByID("User", id)
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Destinations").
		Where("LOWER(username) = LOWER(?)", username).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByName("User", username)
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return m.toDomain(), nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var models []userModel
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Preload("Destinations").
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *models[i].toDomain())
	}
	return users, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users by username: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := userModel{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Roles:        fromDomainRoles(user.Roles),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return r.FindByID(ctx, m.ID)
}

// Update rewrites the user row and replaces the role association wholesale,
// inside one transaction so a failed role swap leaves the row untouched.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"username": user.Username,
			"email":    user.Email,
			"password": user.PasswordHash,
		}
		res := tx.Model(&userModel{ID: user.ID}).Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("update user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.NewNotFoundByID("User", user.ID)
		}

		m := userModel{ID: user.ID}
		if err := tx.Model(&m).Association("Roles").Replace(fromDomainRoles(user.Roles)); err != nil {
			return fmt.Errorf("replace user roles: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

// Delete removes the user, its role links and every destination it owns in
// one transaction.
func (r *UserRepository) Delete(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&destinationModel{}).Error; err != nil {
			return fmt.Errorf("delete user destinations: %w", err)
		}

		m := userModel{ID: user.ID}
		if err := tx.Model(&m).Association("Roles").Clear(); err != nil {
			return fmt.Errorf("clear user roles: %w", err)
		}

		res := tx.Delete(&m)
		if res.Error != nil {
			return fmt.Errorf("delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.NewNotFoundByID("User", user.ID)
		}
		return nil
	})
}
