package service

import (
	"context"
)

// BadgeRecheckEvent represents a badge re-evaluation request processed by the badge worker
type BadgeRecheckEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Trigger   string `json:"trigger,omitempty"` // What caused the recheck, e.g. "review_created"
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBadgeRecheckEvent publishes a badge recheck event for async processing
	PublishBadgeRecheckEvent(ctx context.Context, event *BadgeRecheckEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
