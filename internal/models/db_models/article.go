package db_models

type BlogArticle struct {
	BaseModel
	Title       string
	Slug        string `gorm:"uniqueIndex"`
	Category    string `gorm:"index"`
	Excerpt     string
	Body        string
	Author      string
	ReadingTime int
	Published   bool  `gorm:"default:false"`
	PublishedAt int64 `gorm:"index"`
}
