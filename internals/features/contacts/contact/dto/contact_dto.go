package dto

import (
	"time"

	"github.com/google/uuid"

	"fieldku_backend/internals/features/contacts/contact/model"
)

type ContactDTO struct {
	ContactID      uuid.UUID `json:"contact_id"`
	ContactName    string    `json:"contact_name"`
	ContactPhone   string    `json:"contact_phone"`
	ContactEmail   *string   `json:"contact_email"`
	ContactAddress *string   `json:"contact_address"`
	ContactLat     *float64  `json:"contact_lat"`
	ContactLng     *float64  `json:"contact_lng"`
	ContactCreatedAt time.Time `json:"contact_created_at"`
}

type CreateContactRequest struct {
	ContactName    string   `json:"contact_name" validate:"required,min=2,max=100"`
	ContactPhone   string   `json:"contact_phone" validate:"required,max=30"`
	ContactEmail   *string  `json:"contact_email" validate:"omitempty,email"`
	ContactAddress *string  `json:"contact_address"`
	ContactLat     *float64 `json:"contact_lat" validate:"omitempty,gte=-90,lte=90"`
	ContactLng     *float64 `json:"contact_lng" validate:"omitempty,gte=-180,lte=180"`
}

type UpdateContactRequest struct {
	ContactName    *string  `json:"contact_name" validate:"omitempty,min=2,max=100"`
	ContactPhone   *string  `json:"contact_phone" validate:"omitempty,max=30"`
	ContactEmail   *string  `json:"contact_email" validate:"omitempty,email"`
	ContactAddress *string  `json:"contact_address"`
	ContactLat     *float64 `json:"contact_lat" validate:"omitempty,gte=-90,lte=90"`
	ContactLng     *float64 `json:"contact_lng" validate:"omitempty,gte=-180,lte=180"`
}

func ToContactDTO(m model.ContactModel) ContactDTO {
	return ContactDTO{
		ContactID:        m.ContactID,
		ContactName:      m.ContactName,
		ContactPhone:     m.ContactPhone,
		ContactEmail:     m.ContactEmail,
		ContactAddress:   m.ContactAddress,
		ContactLat:       m.ContactLat,
		ContactLng:       m.ContactLng,
		ContactCreatedAt: m.ContactCreatedAt,
	}
}
