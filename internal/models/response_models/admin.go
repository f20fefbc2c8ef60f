package response_models

type AdminSchoolResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Hours     string `json:"hours,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type AdminSchoolList struct {
	Schools    []AdminSchoolResponse `json:"schools"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
}

type AdminUserList struct {
	Users      []AdminUserResponse `json:"users"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
}
