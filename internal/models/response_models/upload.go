package response_models

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
