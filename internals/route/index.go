package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	activityRoute "fieldku_backend/internals/features/activities/route"
	attendanceRoute "fieldku_backend/internals/features/attendance/attendance/route"
	reportRoute "fieldku_backend/internals/features/attendance/report/route"
	contactRoute "fieldku_backend/internals/features/contacts/route"
	dashboardRoute "fieldku_backend/internals/features/dashboard/route"
	ticketRoute "fieldku_backend/internals/features/tickets/route"
	userRoute "fieldku_backend/internals/features/users/user/route"
	zoneRoute "fieldku_backend/internals/features/zones/route"
	authRoutes "fieldku_backend/internals/features/users/auth/route"
	authMW "fieldku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route:
//   - /api/auth : publik (login, refresh, dll)
//   - /api/u    : user login (service person ke atas)
//   - /api/a    : admin & supervisor
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoutes.AuthRoutes(app, db)

	// ===== User area =====
	user := app.Group("/api/u", authMW.AuthMiddleware(db))
	attendanceRoute.AttendanceUserRoutes(user, db)
	activityRoute.ActivityUserRoutes(user, db)
	ticketRoute.TicketUserRoutes(user, db)
	userRoute.UserRoutes(user, db)

	// ===== Admin area =====
	admin := app.Group("/api/a",
		authMW.AuthMiddleware(db),
		authMW.OnlyRoles(
			constants.RoleErrorAdmin("fitur admin"),
			constants.RoleAdmin,
			constants.RoleSupervisor,
		),
	)
	userRoute.UserAdminRoutes(admin, db)
	zoneRoute.ZoneAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)
	ticketRoute.TicketAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	activityRoute.ActivityAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
}
