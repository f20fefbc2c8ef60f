package services

import (
	"context"
	"fmt"
	"strings"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/pkg/utils"
)

const maxSearchHits = 20

const (
	IndexSchools   = "schools"
	IndexCities    = "cities"
	IndexProvinces = "provinces"
)

// SearchBackend is the slice of the search engine this service uses.
// Matching and ranking live entirely on the other side of it.
type SearchBackend interface {
	Search(ctx context.Context, index, query string, limit int64, filter interface{}) (*response_models.SearchResult, error)
}

// SchoolFilters are forwarded to the engine as filter expressions; their
// values are not validated here.
type SchoolFilters struct {
	Province  string
	MinRating string
	MaxPrice  string
}

type SearchServiceInterface interface {
	SearchSchools(ctx context.Context, query string, filters SchoolFilters) (*response_models.SearchResult, error)
	SearchCities(ctx context.Context, query string) (*response_models.SearchResult, error)
	SearchProvinces(ctx context.Context, query string) (*response_models.SearchResult, error)
}

type SearchService struct {
	backend SearchBackend
}

func NewSearchService(backend SearchBackend) SearchServiceInterface {
	return &SearchService{backend: backend}
}

func (s *SearchService) SearchSchools(ctx context.Context, query string, filters SchoolFilters) (*response_models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return response_models.EmptySearchResult(), nil
	}

	var exprs []string
	if filters.Province != "" {
		exprs = append(exprs, fmt.Sprintf("province = %q", filters.Province))
	}
	if filters.MinRating != "" {
		exprs = append(exprs, "rating >= "+filters.MinRating)
	}
	if filters.MaxPrice != "" {
		exprs = append(exprs, "price <= "+filters.MaxPrice)
	}

	var filter interface{}
	if len(exprs) > 0 {
		filter = strings.Join(exprs, " AND ")
	}

	return s.search(ctx, IndexSchools, query, filter)
}

func (s *SearchService) SearchCities(ctx context.Context, query string) (*response_models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return response_models.EmptySearchResult(), nil
	}
	return s.search(ctx, IndexCities, query, nil)
}

func (s *SearchService) SearchProvinces(ctx context.Context, query string) (*response_models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return response_models.EmptySearchResult(), nil
	}
	return s.search(ctx, IndexProvinces, query, nil)
}

func (s *SearchService) search(ctx context.Context, index, query string, filter interface{}) (*response_models.SearchResult, error) {
	result, err := s.backend.Search(ctx, index, query, maxSearchHits, filter)
	if err != nil {
		logger.Log.WithError(err).WithField("index", index).Error("Search backend error")
		return nil, utils.ErrSearchError
	}
	return result, nil
}
