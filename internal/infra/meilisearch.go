package infra

import (
	"context"

	"github.com/meilisearch/meilisearch-go"

	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/models/response_models"
)

func NewMeiliClient(cfg *config.AppConfig) meilisearch.ServiceManager {
	return meilisearch.New(cfg.MeiliHost, meilisearch.WithAPIKey(cfg.MeiliAPIKey))
}

// MeiliBackend adapts the Meilisearch client to the narrow query surface
// the search service needs.
type MeiliBackend struct {
	client meilisearch.ServiceManager
}

func NewMeiliBackend(client meilisearch.ServiceManager) *MeiliBackend {
	return &MeiliBackend{client: client}
}

func (m *MeiliBackend) Search(ctx context.Context, index, query string, limit int64, filter interface{}) (*response_models.SearchResult, error) {
	req := &meilisearch.SearchRequest{Limit: limit}
	if filter != nil {
		req.Filter = filter
	}

	res, err := m.client.Index(index).SearchWithContext(ctx, query, req)
	if err != nil {
		return nil, err
	}

	hits := res.Hits
	if hits == nil {
		hits = []interface{}{}
	}

	return &response_models.SearchResult{
		Hits:             hits,
		TotalHits:        res.EstimatedTotalHits,
		ProcessingTimeMs: res.ProcessingTimeMs,
	}, nil
}
