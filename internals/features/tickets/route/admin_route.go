package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/tickets/controller"
)

func TicketAdminRoutes(api fiber.Router, db *gorm.DB) {
	ticketCtrl := controller.NewTicketController(db)

	admin := api.Group("/tickets")
	admin.Post("/", ticketCtrl.CreateTicket)
	admin.Get("/", ticketCtrl.GetAllTickets)
	admin.Get("/:id", ticketCtrl.GetTicketByID)
	admin.Put("/:id", ticketCtrl.UpdateTicket)
	admin.Patch("/:id/status", ticketCtrl.UpdateTicketStatus)
	admin.Patch("/:id/assign", ticketCtrl.AssignTicket)
	admin.Delete("/:id", ticketCtrl.DeleteTicket)
}
