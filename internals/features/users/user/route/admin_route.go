package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/users/user/controller"
)

func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	admin := api.Group("/users")
	admin.Post("/", userCtrl.CreateUser)
	admin.Get("/", userCtrl.GetAllUsers)
	admin.Get("/roster", userCtrl.GetRoster)
	admin.Get("/:id", userCtrl.GetUserByID)
	admin.Put("/:id", userCtrl.UpdateUser)
	admin.Delete("/:id", userCtrl.DeleteUser)
}
