package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactModel struct {
	ContactID      uuid.UUID `gorm:"column:contact_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"contact_id"`
	ContactName    string    `gorm:"column:contact_name;type:varchar(100);not null" json:"contact_name"`
	ContactPhone   string    `gorm:"column:contact_phone;type:varchar(30);not null;index" json:"contact_phone"`
	ContactEmail   *string   `gorm:"column:contact_email;type:varchar(120)" json:"contact_email"`
	ContactAddress *string   `gorm:"column:contact_address;type:text" json:"contact_address"`
	ContactLat     *float64  `gorm:"column:contact_lat" json:"contact_lat"`
	ContactLng     *float64  `gorm:"column:contact_lng" json:"contact_lng"`

	ContactCreatedAt time.Time      `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
	ContactUpdatedAt time.Time      `gorm:"column:contact_updated_at;autoUpdateTime" json:"contact_updated_at"`
	ContactDeletedAt gorm.DeletedAt `gorm:"column:contact_deleted_at;index" json:"-"`
}

func (ContactModel) TableName() string {
	return "contacts"
}
