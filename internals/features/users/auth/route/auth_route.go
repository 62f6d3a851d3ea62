package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/users/auth/controller"
	"fieldku_backend/internals/middlewares"
	authMW "fieldku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.LoginRateLimiter(), authCtrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	api.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	api.Post("/refresh", authCtrl.Refresh)
	api.Post("/logout", authMW.AuthMiddleware(db), authCtrl.Logout)
}
