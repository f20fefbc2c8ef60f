package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/db_models"
	"autoescuelas/internal/models/request_models"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

// A school detail response carries at most this many reviews.
const maxSchoolReviews = 10

const adminPageSize = 20

type SchoolServiceInterface interface {
	GetSchoolBySlug(ctx context.Context, schoolSlug string) (*response_models.SchoolDetail, error)
	ListSchools(ctx context.Context, page int) (*response_models.AdminSchoolList, error)
	CreateSchool(ctx context.Context, req request_models.CreateSchoolRequest) (*response_models.AdminSchoolResponse, error)
	UpdateSchool(ctx context.Context, id uuid.UUID, req request_models.UpdateSchoolRequest) (*response_models.AdminSchoolResponse, error)
	DeleteSchool(ctx context.Context, id uuid.UUID) error
}

type SchoolService struct {
	schoolRepository repositories.SchoolRepository
	cityRepository   repositories.CityRepository
}

func NewSchoolService(schoolRepository repositories.SchoolRepository, cityRepository repositories.CityRepository) SchoolServiceInterface {
	return &SchoolService{
		schoolRepository: schoolRepository,
		cityRepository:   cityRepository,
	}
}

func (s *SchoolService) GetSchoolBySlug(ctx context.Context, schoolSlug string) (*response_models.SchoolDetail, error) {
	school, err := s.schoolRepository.GetBySlug(ctx, schoolSlug)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching school")
		return nil, utils.ErrDatabaseError
	}
	if school == nil {
		return nil, utils.ErrSchoolNotFound
	}

	reviews, err := s.schoolRepository.RecentReviews(ctx, school.ID, maxSchoolReviews)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching school reviews")
		return nil, utils.ErrDatabaseError
	}

	detail := &response_models.SchoolDetail{
		ID:      school.ID.String(),
		Name:    school.Name,
		Slug:    school.Slug,
		Address: school.Address,
		Phone:   school.Phone,
		Hours:   school.Hours,
		Courses: make([]response_models.CourseResponse, 0, len(school.Courses)),
		Reviews: make([]response_models.ReviewResponse, 0, len(reviews)),
	}

	if school.City != nil {
		detail.City = school.City.Name
		if school.City.Province != nil {
			detail.Province = school.City.Province.Name
		}
	}

	for _, course := range school.Courses {
		detail.Courses = append(detail.Courses, response_models.CourseResponse{
			ID:          course.ID.String(),
			Name:        course.Name,
			Description: course.Description,
			PriceMinor:  course.PriceMinor,
		})
	}

	for _, review := range reviews {
		detail.Reviews = append(detail.Reviews, response_models.ReviewResponse{
			ID:        review.ID.String(),
			Author:    review.Author,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return detail, nil
}

func (s *SchoolService) ListSchools(ctx context.Context, page int) (*response_models.AdminSchoolList, error) {
	schools, total, err := s.schoolRepository.List(ctx, page, adminPageSize)
	if err != nil {
		logger.Log.WithError(err).Error("Error listing schools")
		return nil, utils.ErrDatabaseError
	}

	list := &response_models.AdminSchoolList{
		Schools:    make([]response_models.AdminSchoolResponse, 0, len(schools)),
		Page:       page,
		TotalPages: totalPages(total, adminPageSize),
	}
	for i := range schools {
		list.Schools = append(list.Schools, adminSchoolResponse(&schools[i]))
	}

	return list, nil
}

func (s *SchoolService) CreateSchool(ctx context.Context, req request_models.CreateSchoolRequest) (*response_models.AdminSchoolResponse, error) {
	city, err := s.resolveCity(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	school := &db_models.DrivingSchool{
		Name:    req.Name,
		Slug:    slug.Make(req.Name),
		Address: req.Address,
		Phone:   req.Phone,
		Hours:   req.Hours,
		CityID:  city.ID,
		City:    city,
	}

	if err := s.schoolRepository.Insert(ctx, school); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Slug collision: disambiguate and retry once.
			school.Slug = school.Slug + "-" + uuid.New().String()[:8]
			err = s.schoolRepository.Insert(ctx, school)
		}
		if err != nil {
			logger.Log.WithError(err).Error("Error creating school")
			return nil, utils.ErrDatabaseError
		}
	}

	resp := adminSchoolResponse(school)
	return &resp, nil
}

func (s *SchoolService) UpdateSchool(ctx context.Context, id uuid.UUID, req request_models.UpdateSchoolRequest) (*response_models.AdminSchoolResponse, error) {
	school, err := s.schoolRepository.FindByID(ctx, id)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching school")
		return nil, utils.ErrDatabaseError
	}
	if school == nil {
		return nil, utils.ErrSchoolNotFound
	}

	city, err := s.resolveCity(ctx, req.CityID)
	if err != nil {
		return nil, err
	}

	school.Name = req.Name
	school.Address = req.Address
	school.Phone = req.Phone
	school.Hours = req.Hours
	school.CityID = city.ID
	school.City = city

	if err := s.schoolRepository.Update(ctx, school); err != nil {
		logger.Log.WithError(err).Error("Error updating school")
		return nil, utils.ErrDatabaseError
	}

	resp := adminSchoolResponse(school)
	return &resp, nil
}

func (s *SchoolService) DeleteSchool(ctx context.Context, id uuid.UUID) error {
	school, err := s.schoolRepository.FindByID(ctx, id)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching school")
		return utils.ErrDatabaseError
	}
	if school == nil {
		return utils.ErrSchoolNotFound
	}

	if err := s.schoolRepository.Delete(ctx, id); err != nil {
		logger.Log.WithError(err).Error("Error deleting school")
		return utils.ErrDatabaseError
	}

	return nil
}

func (s *SchoolService) resolveCity(ctx context.Context, rawID string) (*db_models.City, error) {
	cityID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, utils.ErrCityNotFound
	}

	city, err := s.cityRepository.FindByID(ctx, cityID)
	if err != nil {
		logger.Log.WithError(err).Error("Error fetching city")
		return nil, utils.ErrDatabaseError
	}
	if city == nil {
		return nil, utils.ErrCityNotFound
	}

	return city, nil
}

func adminSchoolResponse(school *db_models.DrivingSchool) response_models.AdminSchoolResponse {
	resp := response_models.AdminSchoolResponse{
		ID:        school.ID.String(),
		Name:      school.Name,
		Slug:      school.Slug,
		Address:   school.Address,
		Phone:     school.Phone,
		Hours:     school.Hours,
		CreatedAt: school.CreatedAt,
	}
	if school.City != nil {
		resp.City = school.City.Name
		if school.City.Province != nil {
			resp.Province = school.City.Province.Name
		}
	}
	return resp
}

func totalPages(total int64, pageSize int) int {
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
