package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	activityModel "fieldku_backend/internals/features/activities/model"
	attDTO "fieldku_backend/internals/features/attendance/attendance/dto"
	attModel "fieldku_backend/internals/features/attendance/attendance/model"
	"fieldku_backend/internals/features/attendance/consolidation"
	"fieldku_backend/internals/features/attendance/report/dto"
	userModel "fieldku_backend/internals/features/users/user/model"
	helper "fieldku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type activityCountRow struct {
	UserID string `gorm:"column:activity_user_id"`
	Count  int    `gorm:"column:count"`
}

// consolidateDay menarik sesi, roster, dan jumlah aktivitas untuk satu
// tanggal secara paralel lalu menjalankan engine konsolidasi.
func (ctrl *ReportController) consolidateDay(
	c *fiber.Ctx,
	date time.Time,
	zoneID string,
	userID string,
) ([]consolidation.DayRecord, error) {
	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)

	var (
		sessions  []attModel.AttendanceSessionModel
		roster    []userModel.UserModel
		countRows []activityCountRow
	)

	g, gctx := errgroup.WithContext(c.UserContext())

	g.Go(func() error {
		q := ctrl.DB.WithContext(gctx).
			Where("attendance_check_in_at >= ? AND attendance_check_in_at < ?", dayStart, dayEnd)
		if userID != "" {
			q = q.Where("attendance_user_id = ?", userID)
		}
		if zoneID != "" {
			q = q.Where("attendance_user_id IN (?)",
				ctrl.DB.Model(&userModel.UserModel{}).
					Select("user_id").
					Where("user_zone_id = ?", zoneID))
		}
		return q.Find(&sessions).Error
	})

	g.Go(func() error {
		q := ctrl.DB.WithContext(gctx).
			Where("user_role = ? AND user_is_active = ?", constants.RoleServicePerson, true)
		if userID != "" {
			q = q.Where("user_id = ?", userID)
		}
		if zoneID != "" {
			q = q.Where("user_zone_id = ?", zoneID)
		}
		return q.Find(&roster).Error
	})

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&activityModel.ActivityLogModel{}).
			Select("activity_user_id, COUNT(*) AS count").
			Where("activity_start_time >= ? AND activity_start_time < ?", dayStart, dayEnd).
			Group("activity_user_id").
			Scan(&countRows).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	engineSessions := make([]consolidation.Session, 0, len(sessions))
	for _, s := range sessions {
		engineSessions = append(engineSessions, attDTO.ToConsolidationSession(s))
	}

	engineRoster := make([]consolidation.RosterMember, 0, len(roster))
	for _, u := range roster {
		engineRoster = append(engineRoster, consolidation.RosterMember{
			UserID:   u.UserID.String(),
			UserName: u.UserName,
		})
	}

	activityCounts := make(map[string]int, len(countRows))
	for _, row := range countRows {
		activityCounts[row.UserID] = row.Count
	}

	return consolidation.Consolidate(engineSessions, engineRoster, date, activityCounts, time.Now())
}

// =======================
// 📊 Daily Report (?date=YYYY-MM-DD&zone_id=&user_id=&format=json|csv)
// =======================
func (ctrl *ReportController) GetDailyReport(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	date := time.Now()
	if dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date harus YYYY-MM-DD")
		}
		date = parsed
	}
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)

	records, err := ctrl.consolidateDay(c, date, c.Query("zone_id"), c.Query("user_id"))
	if err != nil {
		var invalid *consolidation.InvalidInputError
		if errors.As(err, &invalid) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, invalid.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build daily report")
	}

	consolidation.SortByCheckInDesc(records)

	// CSV selalu full, tanpa pagination.
	if c.Query("format") == "csv" {
		return writeCSV(c, date, records)
	}

	summary := dto.BuildSummary(records)
	total := int64(len(records))

	paging := helper.ResolvePaging(c, 50, 200)
	start := paging.Offset
	if start > len(records) {
		start = len(records)
	}
	end := start + paging.Limit
	if end > len(records) {
		end = len(records)
	}

	return helper.JsonList(c, "ok", dto.DailyReportResponse{
		Date:    date.Format("2006-01-02"),
		Summary: summary,
		Records: records[start:end],
	}, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func writeCSV(c *fiber.Ctx, date time.Time, records []consolidation.DayRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"date", "user_id", "user_name", "status", "check_in", "check_out", "total_hours", "flags", "notes"})
	for _, r := range records {
		checkIn, checkOut := "", ""
		if r.EarliestCheckIn != nil {
			checkIn = r.EarliestCheckIn.In(time.Local).Format("15:04")
		}
		if r.LatestCheckOut != nil {
			checkOut = r.LatestCheckOut.In(time.Local).Format("15:04")
		}
		flagTypes := make([]string, 0, len(r.Flags))
		for _, f := range r.Flags {
			flagTypes = append(flagTypes, f.Type)
		}
		_ = w.Write([]string{
			r.Date,
			r.UserID,
			r.UserName,
			r.Status,
			checkIn,
			checkOut,
			fmt.Sprintf("%.2f", r.TotalHours),
			strings.Join(flagTypes, "|"),
			r.Notes,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to write CSV")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="attendance-%s.csv"`, date.Format("2006-01-02")))
	return c.Send(buf.Bytes())
}

// =======================
// 📊 Range Report per user (?user_id=&from=&to=)
// =======================
func (ctrl *ReportController) GetUserRangeReport(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id is required")
	}

	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "from harus YYYY-MM-DD")
	}
	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), time.Local)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "to harus YYYY-MM-DD")
	}
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "to sebelum from")
	}
	if to.Sub(from) > 92*24*time.Hour {
		return helper.JsonError(c, fiber.StatusBadRequest, "rentang maksimal 92 hari")
	}

	all := make([]consolidation.DayRecord, 0)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		records, err := ctrl.consolidateDay(c, day, "", userID)
		if err != nil {
			var invalid *consolidation.InvalidInputError
			if errors.As(err, &invalid) {
				return helper.JsonError(c, fiber.StatusUnprocessableEntity, invalid.Error())
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build range report")
		}
		all = append(all, records...)
	}

	consolidation.SortByCheckInDesc(all)

	return helper.JsonOK(c, "ok", dto.RangeReportResponse{
		UserID:  userID,
		From:    from.Format("2006-01-02"),
		To:      to.Format("2006-01-02"),
		Records: all,
	})
}

// =======================
// 🔍 Day Detail by consolidated record ID
// =======================
// ID "absent-<uid>-<date>" tidak pernah menyentuh storage sesi; record absen
// direkonstruksi langsung dari komponen ID.
func (ctrl *ReportController) GetReportDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	if consolidation.IsAbsentRecordID(id) {
		// tanggal selalu 10 char terakhir "YYYY-MM-DD", sisanya user id
		rest := strings.TrimPrefix(id, "absent-")
		if len(rest) < 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}
		dateStr := rest[len(rest)-10:]
		userID := strings.TrimSuffix(rest[:len(rest)-10], "-")
		date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil || userID == "" {
			return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
		}

		var user userModel.UserModel
		userName := ""
		if err := ctrl.DB.Select("user_id, user_name").Where("user_id = ?", userID).First(&user).Error; err == nil {
			userName = user.UserName
		}

		return helper.JsonOK(c, "ok", dto.DayDetailResponse{
			Record: consolidation.DayRecord{
				ID:       id,
				UserID:   userID,
				UserName: userName,
				Date:     date.Format("2006-01-02"),
				Status:   consolidation.StatusAbsent,
				Notes:    "No attendance record for this date",
				Sessions: []consolidation.Session{},
				Flags: []consolidation.Flag{{
					Type:     consolidation.FlagAbsent,
					Message:  "No attendance record for this date",
					Severity: consolidation.SeverityError,
				}},
			},
			Activities: []consolidation.Activity{},
			Gaps:       []consolidation.Gap{},
		})
	}

	// ID biasa = uuid sesi; cari sesinya, konsolidasikan ulang harinya.
	var session attModel.AttendanceSessionModel
	if err := ctrl.DB.Where("attendance_id = ?", id).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Record tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if session.AttendanceCheckInAt == nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Session tanpa check-in")
	}

	ci := session.AttendanceCheckInAt.In(time.Local)
	day := time.Date(ci.Year(), ci.Month(), ci.Day(), 0, 0, 0, 0, time.Local)
	userID := session.AttendanceUserID.String()

	records, err := ctrl.consolidateDay(c, day, "", userID)
	if err != nil {
		var invalid *consolidation.InvalidInputError
		if errors.As(err, &invalid) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, invalid.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report detail")
	}

	var record *consolidation.DayRecord
	for i := range records {
		if records[i].UserID == userID && records[i].Status != consolidation.StatusAbsent {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Record tidak ditemukan")
	}

	var activityRows []activityModel.ActivityLogModel
	if err := ctrl.DB.
		Where("activity_user_id = ? AND activity_start_time >= ? AND activity_start_time < ?",
			userID, day, day.AddDate(0, 0, 1)).
		Order("activity_start_time ASC").
		Find(&activityRows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve activities")
	}

	activities := make([]consolidation.Activity, 0, len(activityRows))
	for _, a := range activityRows {
		activities = append(activities, consolidation.Activity{
			ID:        a.ActivityID.String(),
			Title:     a.ActivityTitle,
			StartTime: a.ActivityStartTime,
			EndTime:   a.ActivityEndTime,
		})
	}

	return helper.JsonOK(c, "ok", dto.DayDetailResponse{
		Record:     *record,
		Activities: activities,
		Gaps:       consolidation.ComputeGaps(activities),
	})
}
