package model

import (
	"time"

	"gorm.io/datatypes"
)

// StatSnapshot is an hourly capture of the club status aggregation, kept for
// trend reporting. The live endpoint always recomputes; snapshots are only
// written by the background job.
type StatSnapshot struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	CapturedAt time.Time      `gorm:"index;not null" json:"captured_at"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt  time.Time      `json:"created_at"`
}

// TableName specifies the table name for StatSnapshot
func (StatSnapshot) TableName() string {
	return "stat_snapshots"
}
