package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendSupportChatRequest struct {
	SessionId string `json:"sessionId" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// SendSupportChatResponse is the wire contract of the support endpoint.
// TicketId is present exactly when Escalate is true.
type SendSupportChatResponse struct {
	Reply    string  `json:"reply"`
	Escalate bool    `json:"escalate"`
	TicketId *string `json:"ticketId,omitempty"`
}

// SupportErrorResponse is the fixed 400 body for invalid turn requests.
type SupportErrorResponse struct {
	Error string `json:"error"`
}

type SupportTurnResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// EscalationCreatedMessage is the payload published on the escalation topic.
type EscalationCreatedMessage struct {
	TicketId   uuid.UUID `json:"ticket_id"`
	TicketCode string    `json:"ticket_code"`
	SessionKey string    `json:"session_key"`
	Message    string    `json:"message"`
	BestScore  float64   `json:"best_score"`
	CreatedAt  time.Time `json:"created_at"`
}
