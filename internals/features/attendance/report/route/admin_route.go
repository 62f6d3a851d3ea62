package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/attendance/report/controller"
)

func ReportAdminRoutes(api fiber.Router, db *gorm.DB) {
	reportCtrl := controller.NewReportController(db)

	reports := api.Group("/reports")
	reports.Get("/daily", reportCtrl.GetDailyReport)
	reports.Get("/range", reportCtrl.GetUserRangeReport)
	reports.Get("/detail/:id", reportCtrl.GetReportDetail)
}
