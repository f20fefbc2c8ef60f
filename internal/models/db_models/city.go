package db_models

import "github.com/google/uuid"

type City struct {
	BaseModel
	Name       string
	Slug       string `gorm:"index"`
	Active     bool   `gorm:"default:true"`
	Rank       int    `gorm:"default:0"`
	ProvinceID uuid.UUID
	Province   *Province        `gorm:"foreignKey:ProvinceID"`
	Schools    []*DrivingSchool `gorm:"foreignKey:CityID"`
}
