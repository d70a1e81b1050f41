package service

import (
	"context"
)

// BroadcastEvent is the payload published for asynchronous broadcast
// processing by the sweeper worker.
type BroadcastEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	BroadcastID string `json:"broadcast_id"`
	ActorUID    string `json:"actor_uid"`
	Title       string `json:"title,omitempty"`
	Body        string `json:"body,omitempty"`
	LinkURL     string `json:"url,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message
// queue.
type EventPublisher interface {
	// PublishBroadcastEvent publishes a broadcast request for async
	// processing.
	PublishBroadcastEvent(ctx context.Context, event *BroadcastEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
