package db_models

import "github.com/google/uuid"

type DrivingSchool struct {
	BaseModel
	Name    string
	Slug    string `gorm:"uniqueIndex"`
	Address string
	Phone   string
	// Free-text opening hours, e.g. "Lun a Vie 9:00-18:00"
	Hours   string
	CityID  uuid.UUID
	City    *City     `gorm:"foreignKey:CityID"`
	Courses []*Course `gorm:"foreignKey:SchoolID"`
	Reviews []*Review `gorm:"foreignKey:SchoolID"`
}

type Course struct {
	BaseModel
	SchoolID    uuid.UUID
	Name        string
	Description string
	PriceMinor  int64
	Active      bool `gorm:"default:true"`
}

type Review struct {
	BaseModel
	SchoolID uuid.UUID
	Author   string
	Rating   int
	Comment  string
}
