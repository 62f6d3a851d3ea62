package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/users/user/controller"
)

// 👤 User (profil sendiri)
func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	api.Get("/me", userCtrl.Me)
}
