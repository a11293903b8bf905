package broker

import (
	"context"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

type ChatEventProducer struct {
	*Producer
}

func NewChatEventProducer(p *Producer) *ChatEventProducer {
	return &ChatEventProducer{Producer: p}
}

// SendChatEvent keys messages by visitor so one visitor's events stay ordered.
func (p *ChatEventProducer) SendChatEvent(ctx context.Context, e entity.ChatEvent) {
	key := e.VisitorEmail
	if key == "" {
		key = e.ID.String()
	}

	p.Publish(ctx, key, e)
}
