package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type CityRepository interface {
	ListActiveByProvince(ctx context.Context, provinceID uuid.UUID) ([]db_models.City, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (c *cityRepository) ListActiveByProvince(ctx context.Context, provinceID uuid.UUID) ([]db_models.City, error) {
	var cities []db_models.City
	err := c.db.WithContext(ctx).
		Where("province_id = ? AND active = ?", provinceID, true).
		Order("rank ASC, name ASC").
		Find(&cities).Error
	return cities, err
}

func (c *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	var city db_models.City
	err := c.db.WithContext(ctx).First(&city, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}
