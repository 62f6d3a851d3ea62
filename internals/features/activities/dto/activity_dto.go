package dto

import (
	"time"

	"github.com/google/uuid"

	"fieldku_backend/internals/features/activities/model"
	"fieldku_backend/internals/features/attendance/consolidation"
)

type ActivityDTO struct {
	ActivityID       uuid.UUID  `json:"activity_id"`
	ActivityUserID   uuid.UUID  `json:"activity_user_id"`
	ActivityTicketID *uuid.UUID `json:"activity_ticket_id"`
	ActivityType     string     `json:"activity_type"`
	ActivityTitle    string     `json:"activity_title"`
	ActivityNotes    *string    `json:"activity_notes"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time"`
	DurationMinutes  *int       `json:"duration_minutes"`
	Address          *string    `json:"address"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
}

type CreateActivityRequest struct {
	ActivityType string   `json:"activity_type" validate:"required"`
	Title        string   `json:"title" validate:"required,min=3,max=200"`
	Notes        *string  `json:"notes"`
	TicketID     *string  `json:"ticket_id" validate:"omitempty,uuid"`
	StartTime    string   `json:"start_time" validate:"required"` // RFC3339
	EndTime      *string  `json:"end_time"`                       // RFC3339
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type UpdateActivityRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=3,max=200"`
	Notes   *string `json:"notes"`
	EndTime *string `json:"end_time"` // RFC3339
}

func ToActivityDTO(m model.ActivityLogModel) ActivityDTO {
	return ActivityDTO{
		ActivityID:       m.ActivityID,
		ActivityUserID:   m.ActivityUserID,
		ActivityTicketID: m.ActivityTicketID,
		ActivityType:     m.ActivityType,
		ActivityTitle:    m.ActivityTitle,
		ActivityNotes:    m.ActivityNotes,
		StartTime:        m.ActivityStartTime,
		EndTime:          m.ActivityEndTime,
		DurationMinutes:  m.ActivityDurationMinutes,
		Address:          m.ActivityAddress,
		Latitude:         m.ActivityLat,
		Longitude:        m.ActivityLng,
	}
}

// ToGapActivity memproyeksikan log ke input ComputeGaps.
func ToGapActivity(m model.ActivityLogModel) consolidation.Activity {
	return consolidation.Activity{
		ID:        m.ActivityID.String(),
		Title:     m.ActivityTitle,
		StartTime: m.ActivityStartTime,
		EndTime:   m.ActivityEndTime,
	}
}
