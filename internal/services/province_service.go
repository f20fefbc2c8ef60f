package services

import (
	"context"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

type ProvinceServiceInterface interface {
	ListProvinces(ctx context.Context) ([]response_models.ProvinceResponse, error)
}

type ProvinceService struct {
	provinceRepository repositories.ProvinceRepository
}

func NewProvinceService(provinceRepository repositories.ProvinceRepository) ProvinceServiceInterface {
	return &ProvinceService{
		provinceRepository: provinceRepository,
	}
}

func (p *ProvinceService) ListProvinces(ctx context.Context) ([]response_models.ProvinceResponse, error) {
	provinces, err := p.provinceRepository.ListActive(ctx)
	if err != nil {
		logger.Log.WithError(err).Error("Error listing provinces")
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProvinceResponse, 0, len(provinces))
	for _, province := range provinces {
		responses = append(responses, response_models.ProvinceResponse{
			ID:   province.ID.String(),
			Name: province.Name,
			Slug: province.Slug,
		})
	}

	return responses, nil
}
