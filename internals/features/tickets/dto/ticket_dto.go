package dto

import (
	"time"

	"github.com/google/uuid"

	"fieldku_backend/internals/features/tickets/model"
)

type TicketDTO struct {
	TicketID          uuid.UUID  `json:"ticket_id"`
	TicketCode        string     `json:"ticket_code"`
	TicketSubject     string     `json:"ticket_subject"`
	TicketDescription *string    `json:"ticket_description"`
	TicketStatus      string     `json:"ticket_status"`
	TicketPriority    string     `json:"ticket_priority"`
	TicketTags        []string   `json:"ticket_tags"`
	TicketCustomerID  uuid.UUID  `json:"ticket_customer_id"`
	TicketAssignedTo  *uuid.UUID `json:"ticket_assigned_to"`
	TicketResolvedAt  *time.Time `json:"ticket_resolved_at"`
	TicketCreatedAt   time.Time  `json:"ticket_created_at"`
}

type CreateTicketRequest struct {
	TicketSubject     string   `json:"ticket_subject" validate:"required,min=3,max=200"`
	TicketDescription *string  `json:"ticket_description"`
	TicketPriority    string   `json:"ticket_priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	TicketTags        []string `json:"ticket_tags"`
	CustomerID        string   `json:"customer_id" validate:"required,uuid"`
}

type UpdateTicketRequest struct {
	TicketSubject     *string  `json:"ticket_subject" validate:"omitempty,min=3,max=200"`
	TicketDescription *string  `json:"ticket_description"`
	TicketPriority    *string  `json:"ticket_priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	TicketTags        []string `json:"ticket_tags"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
}

type AssignTicketRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

func ToTicketDTO(m model.TicketModel) TicketDTO {
	return TicketDTO{
		TicketID:          m.TicketID,
		TicketCode:        m.TicketCode,
		TicketSubject:     m.TicketSubject,
		TicketDescription: m.TicketDescription,
		TicketStatus:      m.TicketStatus,
		TicketPriority:    m.TicketPriority,
		TicketTags:        m.TicketTags,
		TicketCustomerID:  m.TicketCustomerID,
		TicketAssignedTo:  m.TicketAssignedTo,
		TicketResolvedAt:  m.TicketResolvedAt,
		TicketCreatedAt:   m.TicketCreatedAt,
	}
}
