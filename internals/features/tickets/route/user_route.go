package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/tickets/controller"
)

// Service person: lihat tiket yang di-assign & update statusnya
func TicketUserRoutes(api fiber.Router, db *gorm.DB) {
	ticketCtrl := controller.NewTicketController(db)

	user := api.Group("/tickets")
	user.Get("/", ticketCtrl.GetAllTickets)
	user.Get("/:id", ticketCtrl.GetTicketByID)
	user.Patch("/:id/status", ticketCtrl.UpdateTicketStatus)
}
