package repositories

import (
	"context"

	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type StatsRepository interface {
	CountProvinces(ctx context.Context) (int64, error)
	CountCities(ctx context.Context) (int64, error)
	CountSchools(ctx context.Context) (int64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountProvinces(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.Province{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountCities(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.City{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountSchools(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.DrivingSchool{}).Count(&n).Error
	return n, err
}
