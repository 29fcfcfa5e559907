package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TrainingType identifies the kind of personal training entry
type TrainingType string

const (
	TrainingMeditation TrainingType = "meditation"
	TrainingReading    TrainingType = "reading"
	TrainingPrayer     TrainingType = "prayer"
	TrainingSOC        TrainingType = "soc"
)

// KnownTrainingType reports whether t is one of the supported entry kinds
func KnownTrainingType(t string) bool {
	switch TrainingType(t) {
	case TrainingMeditation, TrainingReading, TrainingPrayer, TrainingSOC:
		return true
	}
	return false
}

// TrainingLog is a member's personal training entry. The per-type fields
// (scripture ranges, prayer time, SOC answers) are stored as an opaque JSON
// detail payload since no server-side logic reads into them.
type TrainingLog struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"index;not null" json:"user_id"`
	Type      TrainingType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Date      datatypes.Date `gorm:"index;not null" json:"date"`
	Detail    datatypes.JSON `gorm:"type:jsonb" json:"detail"`
	IsShared  bool           `gorm:"default:false" json:"is_shared"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for TrainingLog
func (TrainingLog) TableName() string {
	return "training_logs"
}
