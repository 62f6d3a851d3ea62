package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/attendance/attendance/controller"
)

func AttendanceUserRoutes(api fiber.Router, db *gorm.DB) {
	attCtrl := controller.NewAttendanceController(db)

	user := api.Group("/attendance")
	user.Post("/check-in", attCtrl.CheckIn)
	user.Post("/check-out", attCtrl.CheckOut)
	user.Post("/re-check-in", attCtrl.ReCheckIn)
	user.Get("/today", attCtrl.Today)
	user.Get("/history", attCtrl.MyHistory)
}
