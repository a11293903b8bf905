package widget

import (
	"context"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/crmwidget/pkg/broker"
)

// EventType marks every message the widget posts to its host.
const EventType = "hubspot_crm_event"

type EventName string

const (
	EventContactFound    EventName = "contact_found"
	EventContactNotFound EventName = "contact_not_found"
	EventContactCreated  EventName = "contact_created"
	EventContactUpdated  EventName = "contact_updated"
	EventDealCreated     EventName = "deal_created"
)

type Event struct {
	Type      string    `json:"type"`
	Event     EventName `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// LogEmitter writes events to the log. Used when no broker is configured.
type LogEmitter struct {
	l *slog.Logger
}

func NewLogEmitter(l *slog.Logger) *LogEmitter {
	return &LogEmitter{l: l}
}

func (e *LogEmitter) Emit(ctx context.Context, ev Event) error {
	e.l.InfoContext(ctx, "widget event", "event", ev.Event, "data", ev.Data)
	return nil
}

// KafkaEmitter publishes events through an async producer.
type KafkaEmitter struct {
	p *broker.Producer
}

func NewKafkaEmitter(p *broker.Producer) *KafkaEmitter {
	return &KafkaEmitter{p: p}
}

func (e *KafkaEmitter) Emit(ctx context.Context, ev Event) error {
	e.p.Publish(ctx, string(ev.Event), ev)
	return nil
}
