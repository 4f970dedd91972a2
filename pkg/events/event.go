package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "escalation_created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the event constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewEscalationCreated is emitted when a low-confidence chat turn mints a
// human-handoff ticket.
func NewEscalationCreated(ticketCode, sessionId, message string, bestScore float64) Event {
	return BaseEvent{
		Type: "escalation_created",
		Data: map[string]interface{}{
			"ticket_code": ticketCode,
			"session_id":  sessionId,
			"message":     message,
			"best_score":  bestScore,
		},
		OccurredAt: time.Now(),
	}
}
