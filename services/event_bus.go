package services

import (
	"context"
	"sync"

	"github.com/yeremiapane/neo-dine/models"
)

// EventPublisher sends order lifecycle events to the outside world.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev models.OrderEvent) error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderEvent(context.Context, models.OrderEvent) error { return nil }

// RecordingPublisher keeps every event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []models.OrderEvent
}

func (p *RecordingPublisher) PublishOrderEvent(_ context.Context, ev models.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}

func (p *RecordingPublisher) Events() []models.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.OrderEvent(nil), p.events...)
}
