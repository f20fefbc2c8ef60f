package db_models

type Province struct {
	BaseModel
	Name   string
	Slug   string  `gorm:"uniqueIndex"`
	Active bool    `gorm:"default:true"`
	Rank   int     `gorm:"default:0"`
	Cities []*City `gorm:"foreignKey:ProvinceID"`
}
