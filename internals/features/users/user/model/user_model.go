package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"user_id"`
	UserName     string     `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string     `gorm:"column:user_email;type:varchar(120);unique;not null" json:"user_email"`
	UserPassword string     `gorm:"column:user_password;type:text" json:"-"`
	UserPhone    *string    `gorm:"column:user_phone;type:varchar(30)" json:"user_phone"`
	UserRole     string     `gorm:"column:user_role;type:varchar(20);not null;default:'SERVICE_PERSON'" json:"user_role"`
	UserZoneID   *uuid.UUID `gorm:"column:user_zone_id;type:uuid" json:"user_zone_id"`
	UserIsActive bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserGoogleID *string    `gorm:"column:user_google_id;type:varchar(64)" json:"-"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}
