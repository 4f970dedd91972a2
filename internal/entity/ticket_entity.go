package entity

import (
	"time"

	"github.com/google/uuid"
)

// EscalationTicket is the persisted record of a turn that was handed off to
// a human agent. Persistence is best-effort; the chat response never depends
// on this row existing.
type EscalationTicket struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TicketCode string    `gorm:"size:16;index"`
	SessionKey string    `gorm:"size:128;index"`
	Message    string
	BestScore  float64
	CreatedAt  time.Time
}

func (EscalationTicket) TableName() string {
	return "escalation_tickets"
}
