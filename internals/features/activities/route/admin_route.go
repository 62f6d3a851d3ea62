package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/activities/controller"
)

func ActivityAdminRoutes(api fiber.Router, db *gorm.DB) {
	activityCtrl := controller.NewActivityController(db)

	admin := api.Group("/activities")
	admin.Get("/", activityCtrl.GetActivities)
	admin.Get("/day-detail", activityCtrl.GetDayDetail)
}
