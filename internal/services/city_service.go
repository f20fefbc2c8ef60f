package services

import (
	"context"

	"github.com/google/uuid"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

type CityServiceInterface interface {
	ListCitiesByProvince(ctx context.Context, provinceID uuid.UUID) ([]response_models.CityResponse, error)
}

type CityService struct {
	cityRepository repositories.CityRepository
}

func NewCityService(cityRepository repositories.CityRepository) CityServiceInterface {
	return &CityService{
		cityRepository: cityRepository,
	}
}

func (c *CityService) ListCitiesByProvince(ctx context.Context, provinceID uuid.UUID) ([]response_models.CityResponse, error) {
	cities, err := c.cityRepository.ListActiveByProvince(ctx, provinceID)
	if err != nil {
		logger.Log.WithError(err).Error("Error listing cities")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CityResponse, 0, len(cities))
	for _, city := range cities {
		responses = append(responses, response_models.CityResponse{
			ID:         city.ID.String(),
			Name:       city.Name,
			Slug:       city.Slug,
			ProvinceID: city.ProvinceID.String(),
		})
	}

	return responses, nil
}
