package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/dreamroute/travel-catalog/internal/core/domain"
)

type DestinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{db: db}
}

func (r *DestinationRepository) FindByID(ctx context.Context, id int64) (*domain.Destination, error) {
	var m destinationModel
	err := r.db.WithContext(ctx).Preload("Owner").First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundByID("Destination", id)
		}
		return nil, fmt.Errorf("find destination by id: %w", err)
	}
	return m.toDomain(), nil
}

func (r *DestinationRepository) FindAll(ctx context.Context) ([]domain.Destination, error) {
	var models []destinationModel
	err := r.db.WithContext(ctx).Preload("Owner").Order("id").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return toDomainDestinations(models), nil
}

func (r *DestinationRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]domain.Destination, error) {
	var models []destinationModel
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("user_id = ?", ownerID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list destinations by owner: %w", err)
	}
	return toDomainDestinations(models), nil
}

func (r *DestinationRepository) Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error) {
	m := fromDomainDestination(dest)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *DestinationRepository) Update(ctx context.Context, dest *domain.Destination) (*domain.Destination, error) {
	updates := map[string]any{
		"country":     dest.Country,
		"city":        dest.City,
		"description": dest.Description,
		"image":       dest.Image,
	}
	res := r.db.WithContext(ctx).Model(&destinationModel{ID: dest.ID}).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("update destination: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundByID("Destination", dest.ID)
	}
	return r.FindByID(ctx, dest.ID)
}

func (r *DestinationRepository) Delete(ctx context.Context, dest *domain.Destination) error {
	res := r.db.WithContext(ctx).Delete(&destinationModel{ID: dest.ID})
	if res.Error != nil {
		return fmt.Errorf("delete destination: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewNotFoundByID("Destination", dest.ID)
	}
	return nil
}

func toDomainDestinations(models []destinationModel) []domain.Destination {
	out := make([]domain.Destination, 0, len(models))
	for i := range models {
		out = append(out, *models[i].toDomain())
	}
	return out
}
