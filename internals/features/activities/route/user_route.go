package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/activities/controller"
)

func ActivityUserRoutes(api fiber.Router, db *gorm.DB) {
	activityCtrl := controller.NewActivityController(db)

	user := api.Group("/activities")
	user.Post("/", activityCtrl.CreateActivity)
	user.Get("/", activityCtrl.MyActivities)
	user.Patch("/:id", activityCtrl.UpdateActivity)
}
