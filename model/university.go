package model

import (
	"time"

	"gorm.io/gorm"
)

// University is admin-maintained reference data for campuses
type University struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Name           string         `gorm:"not null;uniqueIndex" json:"name"`
	Location       string         `gorm:"type:varchar(255)" json:"location"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	IsCherryClub   bool           `gorm:"default:false" json:"is_cherry_club"`
	MinistryStatus string         `gorm:"type:varchar(20)" json:"ministry_status"`
	ImageURL       string         `gorm:"type:varchar(255)" json:"image_url"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	Members []User `gorm:"foreignKey:UniversityID" json:"members,omitempty"`
}
