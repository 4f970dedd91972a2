package constant

import "time"

// Session store key layout: one Redis list per session.
const (
	SessionKeyPrefix = "support:session:"
	SessionKeySuffix = ":messages"
)

const (
	// MaxHistoryTurns bounds the stored conversation after each turn.
	MaxHistoryTurns = 50

	// SessionTTL is refreshed on every write.
	SessionTTL = 12 * time.Hour

	// EscalationThreshold hands the conversation to a human when the top
	// candidate scores below it.
	EscalationThreshold = 0.15
)

// TicketCodePrefix prefixes minted escalation ticket codes.
const TicketCodePrefix = "HLP-"
