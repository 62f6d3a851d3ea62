package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/dashboard/controller"
)

func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	dashboardCtrl := controller.NewDashboardController(db)

	api.Get("/dashboard/summary", dashboardCtrl.GetSummary)
}
