package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactController "fieldku_backend/internals/features/contacts/contact/controller"
	customerController "fieldku_backend/internals/features/contacts/customer/controller"
)

func ContactAdminRoutes(api fiber.Router, db *gorm.DB) {
	contactCtrl := contactController.NewContactController(db)
	customerCtrl := customerController.NewCustomerController(db)

	contacts := api.Group("/contacts")
	contacts.Post("/", contactCtrl.CreateContact)
	contacts.Get("/", contactCtrl.GetAllContacts)
	contacts.Get("/:id", contactCtrl.GetContactByID)
	contacts.Put("/:id", contactCtrl.UpdateContact)
	contacts.Delete("/:id", contactCtrl.DeleteContact)

	customers := api.Group("/customers")
	customers.Post("/", customerCtrl.CreateCustomer)
	customers.Get("/", customerCtrl.GetAllCustomers)
	customers.Get("/:id", customerCtrl.GetCustomerByID)
	customers.Put("/:id", customerCtrl.UpdateCustomer)
	customers.Delete("/:id", customerCtrl.DeleteCustomer)
}
