package response_models

type SearchResult struct {
	Hits             []interface{} `json:"hits"`
	TotalHits        int64         `json:"totalHits"`
	ProcessingTimeMs int64         `json:"processingTimeMs"`
}

// EmptySearchResult is what a blank query resolves to without ever
// reaching the search backend.
func EmptySearchResult() *SearchResult {
	return &SearchResult{Hits: []interface{}{}, TotalHits: 0, ProcessingTimeMs: 0}
}
