package request_models

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	CityID  string `json:"cityId" binding:"required,uuid"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}

type UpdateSchoolRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=150"`
	CityID  string `json:"cityId" binding:"required,uuid"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}
