package kafka

import (
	"strings"
	"time"
)

// SessionEvent is a checkout session notification consumed from the
// payment provider's event stream.
type SessionEvent struct {
	SessionID string
	Type      string
	CreatedAt time.Time
}

// SessionEventDTO is a data transfer object for SessionEvent.
type SessionEventDTO struct {
	SessionID string    `json:"session_id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts SessionEventDTO to SessionEvent.
func ToDomain(dto SessionEventDTO) SessionEvent {
	return SessionEvent{
		SessionID: strings.TrimSpace(dto.SessionID),
		Type:      strings.TrimSpace(dto.Type),
		CreatedAt: dto.CreatedAt,
	}
}
