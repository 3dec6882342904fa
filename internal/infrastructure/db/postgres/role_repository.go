package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByID(ctx context.Context, id int64) (*domain.Role, error) {
	var m roleModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByID("Role", id)
		}
		return nil, fmt.Errorf("find role by id: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var m roleModel
	err := r.db.WithContext(ctx).
		Where("LOWER(role_name) = LOWER(?)", name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByName("Role", name)
		}
		return nil, fmt.Errorf("find role by name: %w", err)
	}
	return m.toDomain(), nil
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.Role, error) {
	var models []roleModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(models))
	for i := range models {
		roles = append(roles, *models[i].toDomain())
	}
	return roles, nil
}

func (r *RoleRepository) Create(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	m := roleModel{Name: role.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return m.toDomain(), nil
}
