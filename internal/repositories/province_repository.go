package repositories

import (
	"context"

	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type ProvinceRepository interface {
	ListActive(ctx context.Context) ([]db_models.Province, error)
}

type provinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &provinceRepository{db: db}
}

func (p *provinceRepository) ListActive(ctx context.Context) ([]db_models.Province, error) {
	var provinces []db_models.Province
	err := p.db.WithContext(ctx).
		Where("active = ?", true).
		Order("rank ASC, name ASC").
		Find(&provinces).Error
	return provinces, err
}
