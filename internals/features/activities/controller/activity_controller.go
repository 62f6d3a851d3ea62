package controller

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	"fieldku_backend/internals/features/activities/dto"
	"fieldku_backend/internals/features/activities/model"
	attModel "fieldku_backend/internals/features/attendance/attendance/model"
	"fieldku_backend/internals/features/attendance/consolidation"
	ticketModel "fieldku_backend/internals/features/tickets/model"
	helper "fieldku_backend/internals/helpers"
)

var validateActivity = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

func NewActivityController(db *gorm.DB) *ActivityController {
	return &ActivityController{DB: db}
}

func durationMinutes(start time.Time, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// =======================
// ➕ Create Activity (wajib punya sesi CHECKED_IN hari ini)
// =======================
func (ctrl *ActivityController) CreateActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CreateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivity.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidActivityType(body.ActivityType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "activity_type tidak dikenal")
	}

	// Boundary rule: harus ada sesi terbuka hari ini.
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var open attModel.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_user_id = ? AND attendance_status = ? AND attendance_check_in_at >= ?",
			userID, constants.AttendanceCheckedIn, todayStart).
		First(&open).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusConflict, "Harus check-in dulu sebelum mencatat aktivitas")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	startTime, err := time.Parse(time.RFC3339, body.StartTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_time harus RFC3339")
	}

	activity := model.ActivityLogModel{
		ActivityUserID:    userID,
		ActivityType:      body.ActivityType,
		ActivityTitle:     body.Title,
		ActivityNotes:     body.Notes,
		ActivityStartTime: startTime,
		ActivityLat:       body.Latitude,
		ActivityLng:       body.Longitude,
	}

	if body.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *body.EndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_time harus RFC3339")
		}
		if endTime.Before(startTime) {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_time sebelum start_time")
		}
		activity.ActivityEndTime = &endTime
		dur := durationMinutes(startTime, endTime)
		activity.ActivityDurationMinutes = &dur
	}

	if body.TicketID != nil {
		tid, err := uuid.Parse(*body.TicketID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "ticket_id tidak valid")
		}
		var ticket ticketModel.TicketModel
		if err := ctrl.DB.Where("ticket_id = ?", tid).First(&ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Ticket tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		activity.ActivityTicketID = &tid
	}

	// Geocoding non-fatal: fallback "lat, lng".
	if body.Latitude != nil && body.Longitude != nil {
		address := helper.ReverseGeocode(*body.Latitude, *body.Longitude)
		activity.ActivityAddress = &address
	}

	if err := ctrl.DB.Create(&activity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create activity")
	}
	return helper.JsonCreated(c, "Activity logged", dto.ToActivityDTO(activity))
}

// =======================
// ✏️ Update Activity (mis. mengisi end_time)
// =======================
func (ctrl *ActivityController) UpdateActivity(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id := c.Params("id")

	var body dto.UpdateActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateActivity.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var activity model.ActivityLogModel
	if err := ctrl.DB.Where("activity_id = ? AND activity_user_id = ?", id, userID).
		First(&activity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Activity tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if body.Title != nil {
		activity.ActivityTitle = *body.Title
	}
	if body.Notes != nil {
		activity.ActivityNotes = body.Notes
	}
	if body.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *body.EndTime)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_time harus RFC3339")
		}
		if endTime.Before(activity.ActivityStartTime) {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_time sebelum start_time")
		}
		activity.ActivityEndTime = &endTime
		dur := durationMinutes(activity.ActivityStartTime, endTime)
		activity.ActivityDurationMinutes = &dur
	}

	if err := ctrl.DB.Save(&activity).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update activity")
	}
	return helper.JsonUpdated(c, "Activity updated", dto.ToActivityDTO(activity))
}

// =======================
// 📄 List Activities (filter user/date/type/ticket)
// =======================
func (ctrl *ActivityController) GetActivities(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityLogModel{})
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("activity_user_id = ?", userID)
	}
	if date := c.Query("date"); date != "" {
		if t, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
			q = q.Where("activity_start_time >= ? AND activity_start_time < ?", t, t.AddDate(0, 0, 1))
		}
	}
	if typ := c.Query("type"); typ != "" {
		q = q.Where("activity_type = ?", typ)
	}
	if ticketID := c.Query("ticket_id"); ticketID != "" {
		q = q.Where("activity_ticket_id = ?", ticketID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count activities")
	}

	var activities []model.ActivityLogModel
	if err := q.Order("activity_start_time DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve activities")
	}

	resp := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToActivityDTO(a))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 📄 My Activities (milik user login)
// =======================
func (ctrl *ActivityController) MyActivities(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ActivityLogModel{}).Where("activity_user_id = ?", userID)
	if date := c.Query("date"); date != "" {
		if t, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil {
			q = q.Where("activity_start_time >= ? AND activity_start_time < ?", t, t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count activities")
	}

	var activities []model.ActivityLogModel
	if err := q.Order("activity_start_time DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve activities")
	}

	resp := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		resp = append(resp, dto.ToActivityDTO(a))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Day Detail: aktivitas satu user/hari + gap antar aktivitas
// =======================
func (ctrl *ActivityController) GetDayDetail(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}
	dateStr := c.Query("date")
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "date is required")
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "date harus YYYY-MM-DD")
	}

	var activities []model.ActivityLogModel
	if err := ctrl.DB.
		Where("activity_user_id = ? AND activity_start_time >= ? AND activity_start_time < ?",
			userID, date, date.AddDate(0, 0, 1)).
		Order("activity_start_time ASC").
		Find(&activities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve activities")
	}

	gapInput := make([]consolidation.Activity, 0, len(activities))
	resp := make([]dto.ActivityDTO, 0, len(activities))
	for _, a := range activities {
		gapInput = append(gapInput, dto.ToGapActivity(a))
		resp = append(resp, dto.ToActivityDTO(a))
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"activities": resp,
		"gaps":       consolidation.ComputeGaps(gapInput),
	})
}
