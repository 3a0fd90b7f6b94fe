package service

import (
	"context"
)

// Account lifecycle event types.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventPasswordReset  = "password.reset"
)

// AccountEvent represents an account lifecycle event published for downstream
// consumers (analytics, audit, CRM sync).
type AccountEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
}

// EventPublisher defines the interface for publishing account events to a
// message queue. Publishing is best-effort: failures are logged by callers
// and never fail the originating request.
type EventPublisher interface {
	// PublishAccountEvent publishes an account lifecycle event.
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
