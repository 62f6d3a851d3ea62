package controller

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	"fieldku_backend/internals/features/attendance/attendance/dto"
	"fieldku_backend/internals/features/attendance/attendance/model"
	userModel "fieldku_backend/internals/features/users/user/model"
	zoneModel "fieldku_backend/internals/features/zones/model"
	helper "fieldku_backend/internals/helpers"
)

var validateAttendance = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Notes append-only: catatan baru ditempel dengan "; ", tidak pernah overwrite.
func appendNotes(existing, incoming string) string {
	incoming = strings.TrimSpace(incoming)
	if incoming == "" || strings.Contains(existing, incoming) {
		return existing
	}
	if existing == "" {
		return incoming
	}
	return existing + "; " + incoming
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// =======================
// ✅ Check-In
// =======================
func (ctrl *AttendanceController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CheckInRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Satu sesi terbuka per user.
	var open model.AttendanceSessionModel
	err = ctrl.DB.Where("attendance_user_id = ? AND attendance_check_out_at IS NULL", userID).
		First(&open).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Masih ada sesi yang belum check-out")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Guard zona: kalau user punya zona, check-in harus dalam radius.
	var user userModel.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if user.UserZoneID != nil {
		var zone zoneModel.ServiceZoneModel
		if err := ctrl.DB.Where("zone_id = ?", user.UserZoneID).First(&zone).Error; err == nil {
			dist := helper.Geolocation(body.Latitude, body.Longitude, zone.ZoneCenterLat, zone.ZoneCenterLng)
			if dist > zone.ZoneRadiusMeters {
				return helper.JsonError(c, fiber.StatusBadRequest,
					fmt.Sprintf("Lokasi di luar zona %s (%.0f m dari pusat)", zone.ZoneName, dist))
			}
		}
	}

	// Foto opsional
	var photoURL *string
	if fileHeader, err := c.FormFile("photo"); err == nil && fileHeader != nil {
		url, err := helper.UploadCheckInPhoto("attendance", fileHeader)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal upload foto check-in")
		}
		photoURL = &url
	}

	// Geocoding gagal tidak memblokir check-in (fallback "lat, lng").
	address := helper.ReverseGeocode(body.Latitude, body.Longitude)

	now := time.Now()
	session := model.AttendanceSessionModel{
		AttendanceUserID:          userID,
		AttendanceCheckInAt:       &now,
		AttendanceCheckInLocation: dto.EncodeLocation(body.Latitude, body.Longitude, address),
		AttendanceStatus:          constants.AttendanceCheckedIn,
		AttendanceNotes:           strings.TrimSpace(body.Notes),
		AttendancePhotoURL:        photoURL,
	}
	if err := ctrl.DB.Create(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}

	return helper.JsonCreated(c, "Check-in berhasil", dto.ToAttendanceSessionDTO(session))
}

// =======================
// ✅ Check-Out
// =======================
func (ctrl *AttendanceController) CheckOut(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.CheckOutRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_user_id = ? AND attendance_check_out_at IS NULL", userID).
		Order("attendance_check_in_at DESC").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada sesi yang terbuka")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	now := time.Now()
	session.AttendanceCheckOutAt = &now

	if body.Latitude != nil && body.Longitude != nil {
		address := helper.ReverseGeocode(*body.Latitude, *body.Longitude)
		session.AttendanceCheckOutLocation = dto.EncodeLocation(*body.Latitude, *body.Longitude, address)
	}

	hours := round2(now.Sub(*session.AttendanceCheckInAt).Hours())
	session.AttendanceTotalHours = &hours

	session.AttendanceStatus = constants.AttendanceCheckedOut
	if now.Hour() < 16 {
		session.AttendanceStatus = constants.AttendanceEarlyCheckout
	}

	session.AttendanceNotes = appendNotes(session.AttendanceNotes, body.Notes)

	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check out")
	}
	return helper.JsonUpdated(c, "Check-out berhasil", dto.ToAttendanceSessionDTO(session))
}

// =======================
// 🔁 Re-Check-In (buka kembali sesi hari ini yang sudah ditutup)
// =======================
func (ctrl *AttendanceController) ReCheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// Aturan satu sesi terbuka berlaku juga di sini: jangan buka kembali sesi
	// lama selagi masih ada sesi yang belum check-out.
	var open model.AttendanceSessionModel
	err = ctrl.DB.Where("attendance_user_id = ? AND attendance_check_out_at IS NULL", userID).
		First(&open).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Masih ada sesi yang belum check-out")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	today := startOfDay(time.Now())
	var session model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_user_id = ? AND attendance_check_in_at >= ? AND attendance_check_out_at IS NOT NULL",
			userID, today).
		Order("attendance_check_out_at DESC").
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada sesi hari ini yang bisa dibuka kembali")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// Kosongkan field checkout, kembalikan status.
	session.AttendanceCheckOutAt = nil
	session.AttendanceCheckOutLocation = nil
	session.AttendanceTotalHours = nil
	session.AttendanceStatus = constants.AttendanceCheckedIn

	if err := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_id = ?", session.AttendanceID).
		Updates(map[string]interface{}{
			"attendance_check_out_at":       nil,
			"attendance_check_out_location": nil,
			"attendance_total_hours":        nil,
			"attendance_status":             constants.AttendanceCheckedIn,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to re-check-in")
	}
	return helper.JsonUpdated(c, "Sesi dibuka kembali", dto.ToAttendanceSessionDTO(session))
}

// =======================
// 📄 Today (sesi hari ini milik user)
// =======================
func (ctrl *AttendanceController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	today := startOfDay(time.Now())
	var sessions []model.AttendanceSessionModel
	if err := ctrl.DB.
		Where("attendance_user_id = ? AND attendance_check_in_at >= ? AND attendance_check_in_at < ?",
			userID, today, today.AddDate(0, 0, 1)).
		Order("attendance_check_in_at ASC").
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sessions")
	}

	resp := make([]dto.AttendanceSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToAttendanceSessionDTO(s))
	}
	return helper.JsonOK(c, "ok", resp)
}

// =======================
// 📄 My History (paginated, filter rentang tanggal)
// =======================
func (ctrl *AttendanceController) MyHistory(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_user_id = ?", userID)
	if from := c.Query("from"); from != "" {
		if t, err := time.ParseInLocation("2006-01-02", from, time.Local); err == nil {
			q = q.Where("attendance_check_in_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.ParseInLocation("2006-01-02", to, time.Local); err == nil {
			q = q.Where("attendance_check_in_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}

	var sessions []model.AttendanceSessionModel
	if err := q.Order("attendance_check_in_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve sessions")
	}

	resp := make([]dto.AttendanceSessionDTO, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToAttendanceSessionDTO(s))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// ✏️ Admin edit sesi (status + catatan append-only)
// =======================
func (ctrl *AttendanceController) AdminUpdateSession(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.AdminUpdateSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var session model.AttendanceSessionModel
	if err := ctrl.DB.Where("attendance_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if body.Status != nil {
		session.AttendanceStatus = *body.Status
	}
	if body.Notes != nil {
		session.AttendanceNotes = appendNotes(session.AttendanceNotes, *body.Notes)
	}

	if err := ctrl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update session")
	}
	return helper.JsonUpdated(c, "Session updated", dto.ToAttendanceSessionDTO(session))
}
