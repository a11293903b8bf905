package entity

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type ChatEventKind string

const (
	ChatEventStarted        ChatEventKind = "chat_started"
	ChatEventVisitorUpdated ChatEventKind = "visitor_updated"
	ChatEventEnded          ChatEventKind = "chat_ended"
)

// ChatEvent is a SalesIQ webhook delivery.
type ChatEvent struct {
	ID           uuid.UUID       `json:"id"`
	Kind         ChatEventKind   `json:"kind"`
	VisitorEmail string          `json:"visitorEmail,omitempty"`
	Payload      json.RawMessage `json:"payload"`
	ReceivedAt   time.Time       `json:"receivedAt"`
}

type ChatEventFilter struct {
	VisitorEmail string
	Limit        uint64
}
