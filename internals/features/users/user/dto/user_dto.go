package dto

import (
	"time"

	"github.com/google/uuid"

	"fieldku_backend/internals/features/users/user/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID       uuid.UUID  `json:"user_id"`
	UserName     string     `json:"user_name"`
	UserEmail    string     `json:"user_email"`
	UserPhone    *string    `json:"user_phone"`
	UserRole     string     `json:"user_role"`
	UserZoneID   *uuid.UUID `json:"user_zone_id"`
	UserIsActive bool       `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

// ============================
// Request DTO
// ============================

type CreateUserRequest struct {
	UserName  string  `json:"user_name" validate:"required,min=2,max=100"`
	UserEmail string  `json:"user_email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	UserPhone *string `json:"user_phone" validate:"omitempty,max=30"`
	UserRole  string  `json:"user_role" validate:"required,oneof=ADMIN SUPERVISOR SERVICE_PERSON"`
	ZoneID    *string `json:"zone_id" validate:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	UserName  *string `json:"user_name" validate:"omitempty,min=2,max=100"`
	UserPhone *string `json:"user_phone" validate:"omitempty,max=30"`
	UserRole  *string `json:"user_role" validate:"omitempty,oneof=ADMIN SUPERVISOR SERVICE_PERSON"`
	ZoneID    *string `json:"zone_id" validate:"omitempty,uuid"`
	IsActive  *bool   `json:"is_active"`
}

// ============================
// Converter
// ============================

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserPhone:     m.UserPhone,
		UserRole:      m.UserRole,
		UserZoneID:    m.UserZoneID,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
