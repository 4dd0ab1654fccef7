package service

import (
	"context"
	"time"
)

// JobEvent is published when a job reaches a terminal state, so producers can
// subscribe instead of polling.
type JobEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	JobID     string    `json:"job_id"`
	State     string    `json:"state"`
	Target    string    `json:"target"`
	Delivered int       `json:"delivered"`
	Failed    int       `json:"failed"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	At        time.Time `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobEvent publishes a terminal job event
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
