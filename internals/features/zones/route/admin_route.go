package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/zones/controller"
)

func ZoneAdminRoutes(api fiber.Router, db *gorm.DB) {
	zoneCtrl := controller.NewZoneController(db)

	admin := api.Group("/zones")
	admin.Post("/", zoneCtrl.CreateZone)
	admin.Get("/", zoneCtrl.GetAllZones)
	admin.Get("/:id", zoneCtrl.GetZoneByID)
	admin.Put("/:id", zoneCtrl.UpdateZone)
	admin.Delete("/:id", zoneCtrl.DeleteZone)
}
