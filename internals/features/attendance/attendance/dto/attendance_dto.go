package dto

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fieldku_backend/internals/features/attendance/attendance/model"
	"fieldku_backend/internals/features/attendance/consolidation"
)

// ============================
// Request DTO
// ============================

// Check-in dikirim sebagai multipart form (foto opsional di field "photo").
type CheckInRequest struct {
	Latitude  float64 `json:"latitude" form:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" form:"longitude" validate:"required,gte=-180,lte=180"`
	Notes     string  `json:"notes" form:"notes"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" form:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" form:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Notes     string   `json:"notes" form:"notes"`
}

type AdminUpdateSessionRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=CHECKED_IN CHECKED_OUT EARLY_CHECKOUT LATE ABSENT"`
	Notes  *string `json:"notes"`
}

// ============================
// Response DTO
// ============================

type AttendanceSessionDTO struct {
	AttendanceID     uuid.UUID                `json:"attendance_id"`
	AttendanceUserID uuid.UUID                `json:"attendance_user_id"`
	CheckInAt        *time.Time               `json:"check_in_at"`
	CheckOutAt       *time.Time               `json:"check_out_at"`
	CheckInLocation  *consolidation.Location  `json:"check_in_location"`
	CheckOutLocation *consolidation.Location  `json:"check_out_location"`
	TotalHours       *float64                 `json:"total_hours"`
	Status           string                   `json:"status"`
	Notes            string                   `json:"notes"`
	PhotoURL         *string                  `json:"photo_url"`
}

// ============================
// Converters
// ============================

func decodeLocation(raw datatypes.JSON) *consolidation.Location {
	if len(raw) == 0 {
		return nil
	}
	var loc consolidation.Location
	if err := sonic.Unmarshal(raw, &loc); err != nil {
		return nil
	}
	return &loc
}

func EncodeLocation(lat, lng float64, address string) datatypes.JSON {
	raw, _ := sonic.Marshal(consolidation.Location{
		Latitude:  &lat,
		Longitude: &lng,
		Address:   &address,
	})
	return datatypes.JSON(raw)
}

func ToAttendanceSessionDTO(m model.AttendanceSessionModel) AttendanceSessionDTO {
	return AttendanceSessionDTO{
		AttendanceID:     m.AttendanceID,
		AttendanceUserID: m.AttendanceUserID,
		CheckInAt:        m.AttendanceCheckInAt,
		CheckOutAt:       m.AttendanceCheckOutAt,
		CheckInLocation:  decodeLocation(m.AttendanceCheckInLocation),
		CheckOutLocation: decodeLocation(m.AttendanceCheckOutLocation),
		TotalHours:       m.AttendanceTotalHours,
		Status:           m.AttendanceStatus,
		Notes:            m.AttendanceNotes,
		PhotoURL:         m.AttendancePhotoURL,
	}
}

// ToConsolidationSession memproyeksikan row storage ke input engine.
func ToConsolidationSession(m model.AttendanceSessionModel) consolidation.Session {
	s := consolidation.Session{
		ID:         m.AttendanceID.String(),
		UserID:     m.AttendanceUserID.String(),
		CheckInAt:  m.AttendanceCheckInAt,
		CheckOutAt: m.AttendanceCheckOutAt,
		TotalHours: m.AttendanceTotalHours,
		Status:     m.AttendanceStatus,
		Notes:      m.AttendanceNotes,
	}
	if loc := decodeLocation(m.AttendanceCheckInLocation); loc != nil {
		s.CheckInLocation = *loc
	}
	if loc := decodeLocation(m.AttendanceCheckOutLocation); loc != nil {
		s.CheckOutLocation = *loc
	}
	return s
}
