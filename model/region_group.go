package model

import (
	"time"
)

// RegionGroup pairs a region name with a subgroup number. It replaces the
// legacy free-text region column as the join key on user records.
type RegionGroup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Region      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_region_group,priority:1" json:"region"`
	GroupNumber int       `gorm:"not null;uniqueIndex:idx_region_group,priority:2" json:"group_number"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName keeps the historical table name
func (RegionGroup) TableName() string {
	return "region_groups"
}
