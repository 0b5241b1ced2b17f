package service

import (
	"context"
	"time"
)

// BroadcastSentEvent is emitted once a broadcast and its delivery logs are committed.
type BroadcastSentEvent struct {
	EventID       string    `json:"event_id"`
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	BroadcastID   int64     `json:"broadcast_id"`
	EmergencyType string    `json:"emergency_type"`
	Priority      int       `json:"priority"`
	SentCount     int       `json:"sent_count"`
	CreatedBy     *int64    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBroadcastSent publishes a broadcast event for the audit worker
	PublishBroadcastSent(ctx context.Context, event *BroadcastSentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
