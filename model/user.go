package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a club member created on application approval
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string         `gorm:"not null" json:"name"`
	Gender   string         `gorm:"type:varchar(10)" json:"gender"`
	Phone    string         `gorm:"uniqueIndex;not null;type:varchar(20)" json:"phone"` // digits only, normalized at write time
	Birthday datatypes.Date `json:"birthday"`

	UniversityID uint        `gorm:"index;not null" json:"university_id"`
	University   *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`

	// Nil means unset or graduated; such users are excluded from region stats.
	RegionGroupID *uint        `gorm:"index" json:"region_group_id"`
	RegionGroup   *RegionGroup `gorm:"foreignKey:RegionGroupID" json:"region_group,omitempty"`

	Major              string `gorm:"type:varchar(100)" json:"major"`
	StudentNumber      string `gorm:"type:varchar(30)" json:"student_number"`
	Grade              string `gorm:"type:varchar(10)" json:"grade"`
	Semester           string `gorm:"type:varchar(10)" json:"semester"`
	EnrollmentStatus   string `gorm:"type:varchar(20)" json:"enrollment_status"`
	VisionCampBatch    string `gorm:"type:varchar(20)" json:"vision_camp_batch"`
	MinistryStatus     string `gorm:"type:varchar(20)" json:"ministry_status"`
	IsCherryClubMember bool   `gorm:"default:false" json:"is_cherry_club_member"`

	Authority      int  `gorm:"default:0" json:"authority"` // 0 member, 1 staff, 2 admin
	IsCampusLeader bool `gorm:"default:false" json:"is_campus_leader"`

	PasswordHash string `gorm:"not null" json:"-"`
	RefreshToken string `gorm:"type:varchar(100);index" json:"-"` // single active session

	TrainingLogs []TrainingLog `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// AuthorityAdmin is the minimum authority level for admin-only operations
const AuthorityAdmin = 2
