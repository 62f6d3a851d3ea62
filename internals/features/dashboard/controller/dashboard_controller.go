package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	activityModel "fieldku_backend/internals/features/activities/model"
	attModel "fieldku_backend/internals/features/attendance/attendance/model"
	ticketModel "fieldku_backend/internals/features/tickets/model"
	userModel "fieldku_backend/internals/features/users/user/model"
	helper "fieldku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type ticketStatusRow struct {
	Status string `gorm:"column:ticket_status"`
	Count  int64  `gorm:"column:count"`
}

// =======================
// 📈 Dashboard Summary (agregasi paralel)
// =======================
func (ctrl *DashboardController) GetSummary(c *fiber.Ctx) error {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		rosterCount   int64
		checkedInNow  int64
		todaySessions int64
		todayActivity int64
		ticketRows    []ticketStatusRow
	)

	g, gctx := errgroup.WithContext(c.UserContext())

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&userModel.UserModel{}).
			Where("user_role = ? AND user_is_active = ?", constants.RoleServicePerson, true).
			Count(&rosterCount).Error
	})

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&attModel.AttendanceSessionModel{}).
			Where("attendance_status = ?", constants.AttendanceCheckedIn).
			Count(&checkedInNow).Error
	})

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&attModel.AttendanceSessionModel{}).
			Distinct("attendance_user_id").
			Where("attendance_check_in_at >= ?", todayStart).
			Count(&todaySessions).Error
	})

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&activityModel.ActivityLogModel{}).
			Where("activity_start_time >= ?", todayStart).
			Count(&todayActivity).Error
	})

	g.Go(func() error {
		return ctrl.DB.WithContext(gctx).
			Model(&ticketModel.TicketModel{}).
			Select("ticket_status, COUNT(*) AS count").
			Group("ticket_status").
			Scan(&ticketRows).Error
	})

	if err := g.Wait(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard summary")
	}

	ticketCounts := fiber.Map{
		constants.TicketOpen:       int64(0),
		constants.TicketInProgress: int64(0),
		constants.TicketResolved:   int64(0),
		constants.TicketClosed:     int64(0),
	}
	for _, row := range ticketRows {
		ticketCounts[row.Status] = row.Count
	}

	absentToday := rosterCount - todaySessions
	if absentToday < 0 {
		absentToday = 0
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"roster_total":     rosterCount,
		"checked_in_now":   checkedInNow,
		"present_today":    todaySessions,
		"absent_today":     absentToday,
		"activities_today": todayActivity,
		"tickets":          ticketCounts,
	})
}
