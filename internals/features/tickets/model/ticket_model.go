package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fieldku_backend/internals/constants"
)

type TicketModel struct {
	TicketID          uuid.UUID      `gorm:"column:ticket_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"ticket_id"`
	TicketCode        string         `gorm:"column:ticket_code;type:varchar(30);not null;unique" json:"ticket_code"`
	TicketSubject     string         `gorm:"column:ticket_subject;type:varchar(200);not null" json:"ticket_subject"`
	TicketDescription *string        `gorm:"column:ticket_description;type:text" json:"ticket_description"`
	TicketStatus      string         `gorm:"column:ticket_status;type:varchar(20);not null;default:'OPEN';index" json:"ticket_status"`
	TicketPriority    string         `gorm:"column:ticket_priority;type:varchar(10);not null;default:'MEDIUM'" json:"ticket_priority"`
	TicketTags        pq.StringArray `gorm:"column:ticket_tags;type:text[]" json:"ticket_tags"`
	TicketCustomerID  uuid.UUID      `gorm:"column:ticket_customer_id;type:uuid;not null;index" json:"ticket_customer_id"`
	TicketAssignedTo  *uuid.UUID     `gorm:"column:ticket_assigned_to;type:uuid;index" json:"ticket_assigned_to"`
	TicketResolvedAt  *time.Time     `gorm:"column:ticket_resolved_at" json:"ticket_resolved_at"`

	TicketCreatedAt time.Time      `gorm:"column:ticket_created_at;autoCreateTime" json:"ticket_created_at"`
	TicketUpdatedAt time.Time      `gorm:"column:ticket_updated_at;autoUpdateTime" json:"ticket_updated_at"`
	TicketDeletedAt gorm.DeletedAt `gorm:"column:ticket_deleted_at;index" json:"-"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

// Transisi status yang diizinkan
var allowedTransitions = map[string][]string{
	constants.TicketOpen:       {constants.TicketInProgress, constants.TicketClosed},
	constants.TicketInProgress: {constants.TicketResolved, constants.TicketOpen},
	constants.TicketResolved:   {constants.TicketClosed, constants.TicketInProgress},
	constants.TicketClosed:     {},
}

func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
