package response_models

type ArticleResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Excerpt     string `json:"excerpt"`
	Body        string `json:"body"`
	Author      string `json:"author"`
	ReadingTime int    `json:"readingTime"`
	PublishedAt int64  `json:"publishedAt"`
}

// ArticleSummary is the listing/related projection; it carries no body.
type ArticleSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	ReadingTime int    `json:"readingTime"`
	PublishedAt int64  `json:"publishedAt"`
}

type BlogListResponse struct {
	Articles   []ArticleSummary `json:"articles"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}
