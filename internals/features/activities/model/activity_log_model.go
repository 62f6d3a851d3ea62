package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLogModel struct {
	ActivityID       uuid.UUID  `gorm:"column:activity_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"activity_id"`
	ActivityUserID   uuid.UUID  `gorm:"column:activity_user_id;type:uuid;not null;index" json:"activity_user_id"`
	ActivityTicketID *uuid.UUID `gorm:"column:activity_ticket_id;type:uuid;index" json:"activity_ticket_id"`
	ActivityType     string     `gorm:"column:activity_type;type:varchar(20);not null" json:"activity_type"`
	ActivityTitle    string     `gorm:"column:activity_title;type:varchar(200);not null" json:"activity_title"`
	ActivityNotes    *string    `gorm:"column:activity_notes;type:text" json:"activity_notes"`

	ActivityStartTime       time.Time  `gorm:"column:activity_start_time;not null;index" json:"activity_start_time"`
	ActivityEndTime         *time.Time `gorm:"column:activity_end_time" json:"activity_end_time"`
	ActivityDurationMinutes *int       `gorm:"column:activity_duration_minutes" json:"activity_duration_minutes"`

	ActivityAddress *string  `gorm:"column:activity_address;type:text" json:"activity_address"`
	ActivityLat     *float64 `gorm:"column:activity_lat" json:"activity_lat"`
	ActivityLng     *float64 `gorm:"column:activity_lng" json:"activity_lng"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;autoUpdateTime" json:"activity_updated_at"`
}

func (ActivityLogModel) TableName() string {
	return "daily_activity_logs"
}
