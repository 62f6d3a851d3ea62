package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/attendance/attendance/controller"
)

func AttendanceAdminRoutes(api fiber.Router, db *gorm.DB) {
	attCtrl := controller.NewAttendanceController(db)

	admin := api.Group("/attendance")
	admin.Patch("/sessions/:id", attCtrl.AdminUpdateSession)
}
