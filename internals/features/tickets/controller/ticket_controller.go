package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
	customerModel "fieldku_backend/internals/features/contacts/customer/model"
	"fieldku_backend/internals/features/tickets/dto"
	"fieldku_backend/internals/features/tickets/model"
	helper "fieldku_backend/internals/helpers"
)

var validateTicket = validator.New()

type TicketController struct {
	DB *gorm.DB
}

func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{DB: db}
}

// Kode tiket: TKT-YYYYMMDD-XXXX (XXXX dari uuid, cukup unik untuk display;
// kolom unique yang jadi penentu akhir)
func generateTicketCode() string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("TKT-%s-%s", time.Now().Format("20060102"), suffix)
}

// =======================
// ➕ Create Ticket
// =======================
func (ctrl *TicketController) CreateTicket(c *fiber.Ctx) error {
	var body dto.CreateTicketRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTicket.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id tidak valid")
	}
	var customer customerModel.CustomerModel
	if err := ctrl.DB.Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	priority := body.TicketPriority
	if priority == "" {
		priority = "MEDIUM"
	}

	ticket := model.TicketModel{
		TicketCode:        generateTicketCode(),
		TicketSubject:     body.TicketSubject,
		TicketDescription: body.TicketDescription,
		TicketStatus:      constants.TicketOpen,
		TicketPriority:    priority,
		TicketTags:        body.TicketTags,
		TicketCustomerID:  customerID,
	}
	if err := ctrl.DB.Create(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create ticket")
	}
	return helper.JsonCreated(c, "Ticket created", dto.ToTicketDTO(ticket))
}

// =======================
// 📄 Get All Tickets (filter status/priority/assignee/customer + search)
// =======================
func (ctrl *TicketController) GetAllTickets(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TicketModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("ticket_status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		q = q.Where("ticket_priority = ?", priority)
	}
	if assignee := c.Query("assigned_to"); assignee != "" {
		q = q.Where("ticket_assigned_to = ?", assignee)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		q = q.Where("ticket_customer_id = ?", customerID)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("ticket_code ILIKE ? OR ticket_subject ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count tickets")
	}

	var tickets []model.TicketModel
	if err := q.Order("ticket_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&tickets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve tickets")
	}

	resp := make([]dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketDTO(t))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get Ticket by ID
// =======================
func (ctrl *TicketController) GetTicketByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var ticket model.TicketModel
	if err := ctrl.DB.Where("ticket_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ticket")
	}
	return helper.JsonOK(c, "ok", dto.ToTicketDTO(ticket))
}

// =======================
// ✏️ Update Ticket (subject/priority/tags)
// =======================
func (ctrl *TicketController) UpdateTicket(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTicketRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTicket.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ticket model.TicketModel
	if err := ctrl.DB.Where("ticket_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ticket")
	}

	if body.TicketSubject != nil {
		ticket.TicketSubject = *body.TicketSubject
	}
	if body.TicketDescription != nil {
		ticket.TicketDescription = body.TicketDescription
	}
	if body.TicketPriority != nil {
		ticket.TicketPriority = *body.TicketPriority
	}
	if body.TicketTags != nil {
		ticket.TicketTags = body.TicketTags
	}

	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ticket")
	}
	return helper.JsonUpdated(c, "Ticket updated", dto.ToTicketDTO(ticket))
}

// =======================
// 🔁 Update Status (transisi divalidasi)
// =======================
func (ctrl *TicketController) UpdateTicketStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTicket.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ticket model.TicketModel
	if err := ctrl.DB.Where("ticket_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ticket")
	}

	if !model.CanTransition(ticket.TicketStatus, body.Status) {
		return helper.JsonError(c, fiber.StatusConflict,
			fmt.Sprintf("Transisi status %s → %s tidak diizinkan", ticket.TicketStatus, body.Status))
	}

	ticket.TicketStatus = body.Status
	if body.Status == constants.TicketResolved {
		now := time.Now()
		ticket.TicketResolvedAt = &now
	}

	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update ticket status")
	}
	return helper.JsonUpdated(c, "Ticket status updated", dto.ToTicketDTO(ticket))
}

// =======================
// 👷 Assign Ticket ke service person
// =======================
func (ctrl *TicketController) AssignTicket(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.AssignTicketRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateTicket.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := uuid.Parse(body.UserID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
	}

	var ticket model.TicketModel
	if err := ctrl.DB.Where("ticket_id = ?", id).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ticket tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve ticket")
	}

	ticket.TicketAssignedTo = &userID
	if ticket.TicketStatus == constants.TicketOpen {
		ticket.TicketStatus = constants.TicketInProgress
	}

	if err := ctrl.DB.Save(&ticket).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign ticket")
	}
	return helper.JsonUpdated(c, "Ticket assigned", dto.ToTicketDTO(ticket))
}

// =======================
// 🗑️ Delete Ticket (soft delete)
// =======================
func (ctrl *TicketController) DeleteTicket(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Where("ticket_id = ?", id).Delete(&model.TicketModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete ticket")
	}
	return helper.JsonDeleted(c, "Ticket deleted", fiber.Map{"ticket_id": id})
}
