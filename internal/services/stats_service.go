package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/internal/repositories"
	"autoescuelas/pkg/utils"
)

type StatsServiceInterface interface {
	GetStats(ctx context.Context) (*response_models.StatsResponse, error)
}

type StatsService struct {
	statsRepository repositories.StatsRepository
}

func NewStatsService(statsRepository repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{
		statsRepository: statsRepository,
	}
}

// GetStats runs the three counts concurrently. If any one fails the whole
// call fails; no partial counts are returned.
func (s *StatsService) GetStats(ctx context.Context) (*response_models.StatsResponse, error) {
	var stats response_models.StatsResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.statsRepository.CountProvinces(gctx)
		stats.Provinces = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepository.CountSchools(gctx)
		stats.Schools = n
		return err
	})
	g.Go(func() error {
		n, err := s.statsRepository.CountCities(gctx)
		stats.Cities = n
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Error("Error aggregating stats")
		return nil, utils.ErrDatabaseError
	}

	return &stats, nil
}
