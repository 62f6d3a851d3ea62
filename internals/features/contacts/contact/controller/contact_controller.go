package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"fieldku_backend/internals/features/contacts/contact/dto"
	"fieldku_backend/internals/features/contacts/contact/model"
	helper "fieldku_backend/internals/helpers"
)

var validateContact = validator.New()

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db}
}

// =======================
// ➕ Create Contact
// =======================
func (ctrl *ContactController) CreateContact(c *fiber.Ctx) error {
	var body dto.CreateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	contact := model.ContactModel{
		ContactName:    body.ContactName,
		ContactPhone:   body.ContactPhone,
		ContactEmail:   body.ContactEmail,
		ContactAddress: body.ContactAddress,
		ContactLat:     body.ContactLat,
		ContactLng:     body.ContactLng,
	}
	if err := ctrl.DB.Create(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create contact")
	}
	return helper.JsonCreated(c, "Contact created", dto.ToContactDTO(contact))
}

// =======================
// 📄 Get All Contacts (paginated + search)
// =======================
func (ctrl *ContactController) GetAllContacts(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ContactModel{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("contact_name ILIKE ? OR contact_phone ILIKE ? OR contact_email ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count contacts")
	}

	var contacts []model.ContactModel
	if err := q.Order("contact_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&contacts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contacts")
	}

	resp := make([]dto.ContactDTO, 0, len(contacts))
	for _, ct := range contacts {
		resp = append(resp, dto.ToContactDTO(ct))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get Contact by ID
// =======================
func (ctrl *ContactController) GetContactByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contact tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contact")
	}
	return helper.JsonOK(c, "ok", dto.ToContactDTO(contact))
}

// =======================
// ✏️ Update Contact
// =======================
func (ctrl *ContactController) UpdateContact(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateContactRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateContact.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var contact model.ContactModel
	if err := ctrl.DB.Where("contact_id = ?", id).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Contact tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve contact")
	}

	if body.ContactName != nil {
		contact.ContactName = *body.ContactName
	}
	if body.ContactPhone != nil {
		contact.ContactPhone = *body.ContactPhone
	}
	if body.ContactEmail != nil {
		contact.ContactEmail = body.ContactEmail
	}
	if body.ContactAddress != nil {
		contact.ContactAddress = body.ContactAddress
	}
	if body.ContactLat != nil {
		contact.ContactLat = body.ContactLat
	}
	if body.ContactLng != nil {
		contact.ContactLng = body.ContactLng
	}

	if err := ctrl.DB.Save(&contact).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update contact")
	}
	return helper.JsonUpdated(c, "Contact updated", dto.ToContactDTO(contact))
}

// =======================
// 🗑️ Delete Contact (soft delete)
// =======================
func (ctrl *ContactController) DeleteContact(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Where("contact_id = ?", id).Delete(&model.ContactModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete contact")
	}
	return helper.JsonDeleted(c, "Contact deleted", fiber.Map{"contact_id": id})
}
