package entities

import "time"

type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id,omitempty"` // nil for unattributed system actions
	Action    string    `json:"action"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ActivityLog) TableName() string { return "activity_log" }
