package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Satu pasangan check-in/check-out. Tidak pernah dihapus oleh flow normal;
// re-check-in di hari yang sama membuka kembali sesi yang sudah ditutup.
type AttendanceSessionModel struct {
	AttendanceID         uuid.UUID  `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceUserID     uuid.UUID  `gorm:"column:attendance_user_id;type:uuid;not null;index" json:"attendance_user_id"`
	AttendanceCheckInAt  *time.Time `gorm:"column:attendance_check_in_at;index" json:"attendance_check_in_at"`
	AttendanceCheckOutAt *time.Time `gorm:"column:attendance_check_out_at" json:"attendance_check_out_at"`

	// {latitude, longitude, address} sebagai JSONB
	AttendanceCheckInLocation  datatypes.JSON `gorm:"column:attendance_check_in_location;type:jsonb" json:"attendance_check_in_location"`
	AttendanceCheckOutLocation datatypes.JSON `gorm:"column:attendance_check_out_location;type:jsonb" json:"attendance_check_out_location"`

	AttendanceTotalHours *float64 `gorm:"column:attendance_total_hours" json:"attendance_total_hours"`
	AttendanceStatus     string   `gorm:"column:attendance_status;type:varchar(20);not null;default:'CHECKED_IN';index" json:"attendance_status"`
	AttendanceNotes      string   `gorm:"column:attendance_notes;type:text;not null;default:''" json:"attendance_notes"`
	AttendancePhotoURL   *string  `gorm:"column:attendance_photo_url;type:text" json:"attendance_photo_url"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceSessionModel) TableName() string {
	return "attendance_sessions"
}
