package search_fx

import (
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/fx"

	"autoescuelas/internal/infra"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	infra.NewMeiliClient,
	NewSearchBackend,
	NewSearchService)

func NewSearchBackend(client meilisearch.ServiceManager) services.SearchBackend {
	return infra.NewMeiliBackend(client)
}

func NewSearchService(backend services.SearchBackend) services.SearchServiceInterface {
	return services.NewSearchService(backend)
}
