package response_models

type ProvinceResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CityResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ProvinceID string `json:"provinceId"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceMinor  int64  `json:"price"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

// SchoolDetail flattens the nested city/province relations into the
// scalar fields the public site expects.
type SchoolDetail struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Address  string           `json:"address,omitempty"`
	Phone    string           `json:"phone,omitempty"`
	Hours    string           `json:"hours,omitempty"`
	City     string           `json:"city"`
	Province string           `json:"province"`
	Courses  []CourseResponse `json:"courses"`
	Reviews  []ReviewResponse `json:"reviews"`
}

type StatsResponse struct {
	Provinces int64 `json:"provinces"`
	Schools   int64 `json:"schools"`
	Cities    int64 `json:"cities"`
}
