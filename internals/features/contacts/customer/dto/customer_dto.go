package dto

import (
	"time"

	"github.com/google/uuid"

	contactDTO "fieldku_backend/internals/features/contacts/contact/dto"
	"fieldku_backend/internals/features/contacts/customer/model"
)

type CustomerDTO struct {
	CustomerID          uuid.UUID               `json:"customer_id"`
	CustomerCode        string                  `json:"customer_code"`
	CustomerCompanyName *string                 `json:"customer_company_name"`
	CustomerNotes       *string                 `json:"customer_notes"`
	CustomerCreatedAt   time.Time               `json:"customer_created_at"`
	Contact             *contactDTO.ContactDTO  `json:"contact,omitempty"`
}

// Customer dibuat bersama contact-nya dalam satu transaksi.
type CreateCustomerRequest struct {
	CustomerCode        string  `json:"customer_code" validate:"required,min=2,max=30"`
	CustomerCompanyName *string `json:"customer_company_name" validate:"omitempty,max=120"`
	CustomerNotes       *string `json:"customer_notes"`

	Contact contactDTO.CreateContactRequest `json:"contact" validate:"required"`
}

type UpdateCustomerRequest struct {
	CustomerCompanyName *string `json:"customer_company_name" validate:"omitempty,max=120"`
	CustomerNotes       *string `json:"customer_notes"`
}

func ToCustomerDTO(m model.CustomerModel) CustomerDTO {
	out := CustomerDTO{
		CustomerID:          m.CustomerID,
		CustomerCode:        m.CustomerCode,
		CustomerCompanyName: m.CustomerCompanyName,
		CustomerNotes:       m.CustomerNotes,
		CustomerCreatedAt:   m.CustomerCreatedAt,
	}
	if m.Contact != nil {
		cd := contactDTO.ToContactDTO(*m.Contact)
		out.Contact = &cd
	}
	return out
}
