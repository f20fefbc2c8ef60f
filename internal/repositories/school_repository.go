package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"autoescuelas/internal/models/db_models"
)

type SchoolRepository interface {
	GetBySlug(ctx context.Context, slug string) (*db_models.DrivingSchool, error)
	RecentReviews(ctx context.Context, schoolID uuid.UUID, limit int) ([]db_models.Review, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.DrivingSchool, int64, error)
	Insert(ctx context.Context, school *db_models.DrivingSchool) error
	Update(ctx context.Context, school *db_models.DrivingSchool) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.DrivingSchool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type schoolRepository struct {
	db *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (s *schoolRepository) GetBySlug(ctx context.Context, slug string) (*db_models.DrivingSchool, error) {
	var school db_models.DrivingSchool
	err := s.db.WithContext(ctx).
		Preload("City.Province").
		Preload("Courses", "active = ?", true).
		First(&school, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

func (s *schoolRepository) RecentReviews(ctx context.Context, schoolID uuid.UUID, limit int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := s.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

func (s *schoolRepository) List(ctx context.Context, page, pageSize int) ([]db_models.DrivingSchool, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&db_models.DrivingSchool{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var schools []db_models.DrivingSchool
	err := s.db.WithContext(ctx).
		Preload("City.Province").
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&schools).Error
	return schools, total, err
}

func (s *schoolRepository) Insert(ctx context.Context, school *db_models.DrivingSchool) error {
	return s.db.WithContext(ctx).Create(school).Error
}

func (s *schoolRepository) Update(ctx context.Context, school *db_models.DrivingSchool) error {
	return s.db.WithContext(ctx).Save(school).Error
}

func (s *schoolRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.DrivingSchool, error) {
	var school db_models.DrivingSchool
	err := s.db.WithContext(ctx).First(&school, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &school, nil
}

func (s *schoolRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&db_models.DrivingSchool{}, "id = ?", id).Error
}
