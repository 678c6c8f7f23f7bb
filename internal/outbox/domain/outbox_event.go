// Package domain defines the transactional outbox entities used to publish
// credential lifecycle events.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event types emitted by the credential store.
const (
	EventTypeUserCreated = "user.created"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent represents an event in the transactional outbox pattern
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MarkProcessed transitions the event to the processed state
func (e *OutboxEvent) MarkProcessed(now time.Time) {
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &now
	e.LastError = nil
}

// MarkFailed records a delivery failure and increments the retry counter
func (e *OutboxEvent) MarkFailed(reason string) {
	e.Status = OutboxEventStatusFailed
	e.Retries++
	e.LastError = &reason
}
