package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contactModel "fieldku_backend/internals/features/contacts/contact/model"
	"fieldku_backend/internals/features/contacts/customer/dto"
	"fieldku_backend/internals/features/contacts/customer/model"
	helper "fieldku_backend/internals/helpers"
)

var validateCustomer = validator.New()

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// =======================
// ➕ Create Customer (contact + customer dalam satu transaksi)
// =======================
func (ctrl *CustomerController) CreateCustomer(c *fiber.Ctx) error {
	var body dto.CreateCustomerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var customer model.CustomerModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		contact := contactModel.ContactModel{
			ContactName:    body.Contact.ContactName,
			ContactPhone:   body.Contact.ContactPhone,
			ContactEmail:   body.Contact.ContactEmail,
			ContactAddress: body.Contact.ContactAddress,
			ContactLat:     body.Contact.ContactLat,
			ContactLng:     body.Contact.ContactLng,
		}
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}

		customer = model.CustomerModel{
			CustomerCode:        strings.ToUpper(body.CustomerCode),
			CustomerContactID:   contact.ContactID,
			CustomerCompanyName: body.CustomerCompanyName,
			CustomerNotes:       body.CustomerNotes,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		customer.Contact = &contact
		return nil
	})
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Customer code sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create customer")
	}

	return helper.JsonCreated(c, "Customer created", dto.ToCustomerDTO(customer))
}

// =======================
// 📄 Get All Customers (paginated + search)
// =======================
func (ctrl *CustomerController) GetAllCustomers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CustomerModel{}).Preload("Contact")
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Joins("JOIN contacts ON contacts.contact_id = customers.customer_contact_id").
			Where("customers.customer_code ILIKE ? OR customers.customer_company_name ILIKE ? OR contacts.contact_name ILIKE ?",
				like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count customers")
	}

	var customers []model.CustomerModel
	if err := q.Order("customer_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&customers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customers")
	}

	resp := make([]dto.CustomerDTO, 0, len(customers))
	for _, cu := range customers {
		resp = append(resp, dto.ToCustomerDTO(cu))
	}
	return helper.JsonList(c, "ok", resp, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =======================
// 🔍 Get Customer by ID
// =======================
func (ctrl *CustomerController) GetCustomerByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var customer model.CustomerModel
	if err := ctrl.DB.Preload("Contact").Where("customer_id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customer")
	}
	return helper.JsonOK(c, "ok", dto.ToCustomerDTO(customer))
}

// =======================
// ✏️ Update Customer
// =======================
func (ctrl *CustomerController) UpdateCustomer(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateCustomerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCustomer.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var customer model.CustomerModel
	if err := ctrl.DB.Preload("Contact").Where("customer_id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Customer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve customer")
	}

	if body.CustomerCompanyName != nil {
		customer.CustomerCompanyName = body.CustomerCompanyName
	}
	if body.CustomerNotes != nil {
		customer.CustomerNotes = body.CustomerNotes
	}

	if err := ctrl.DB.Save(&customer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update customer")
	}
	return helper.JsonUpdated(c, "Customer updated", dto.ToCustomerDTO(customer))
}

// =======================
// 🗑️ Delete Customer (soft delete, contact dibiarkan)
// =======================
func (ctrl *CustomerController) DeleteCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Where("customer_id = ?", id).Delete(&model.CustomerModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete customer")
	}
	return helper.JsonDeleted(c, "Customer deleted", fiber.Map{"customer_id": id})
}
