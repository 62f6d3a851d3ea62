package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	contactModel "fieldku_backend/internals/features/contacts/contact/model"
)

type CustomerModel struct {
	CustomerID          uuid.UUID `gorm:"column:customer_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"customer_id"`
	CustomerCode        string    `gorm:"column:customer_code;type:varchar(30);not null;unique" json:"customer_code"`
	CustomerContactID   uuid.UUID `gorm:"column:customer_contact_id;type:uuid;not null" json:"customer_contact_id"`
	CustomerCompanyName *string   `gorm:"column:customer_company_name;type:varchar(120)" json:"customer_company_name"`
	CustomerNotes       *string   `gorm:"column:customer_notes;type:text" json:"customer_notes"`

	CustomerCreatedAt time.Time      `gorm:"column:customer_created_at;autoCreateTime" json:"customer_created_at"`
	CustomerUpdatedAt time.Time      `gorm:"column:customer_updated_at;autoUpdateTime" json:"customer_updated_at"`
	CustomerDeletedAt gorm.DeletedAt `gorm:"column:customer_deleted_at;index" json:"-"`

	Contact *contactModel.ContactModel `gorm:"foreignKey:CustomerContactID;references:ContactID" json:"contact,omitempty"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
