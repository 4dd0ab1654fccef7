package entity

import (
	"time"

	"github.com/google/uuid"
)

// Priority orders jobs inside the delivery queue.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Rank returns a larger number for more urgent priorities.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityLow:
		return 0
	default:
		return 1
	}
}

// ParsePriority normalizes an input string, defaulting to normal.
func ParsePriority(s string) Priority {
	switch Priority(s) {
	case PriorityHigh, PriorityLow:
		return Priority(s)
	default:
		return PriorityNormal
	}
}

// TargetKind distinguishes device and topic targets.
type TargetKind string

const (
	TargetDevice TargetKind = "device"
	TargetTopic  TargetKind = "topic"
)

// Target addresses a notification job.
type Target struct {
	Kind  TargetKind `json:"kind"`
	Value string     `json:"value"`
}

// Payload is the notification content.
type Payload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// JobState is the aggregate state of a notification job.
type JobState string

const (
	JobPending    JobState = "pending"
	JobInFlight   JobState = "in_flight"
	JobRetrying   JobState = "retrying"
	JobDelivered  JobState = "delivered"
	JobFailed     JobState = "failed"
	JobDeadLetter JobState = "dead_letter"
	JobCancelled  JobState = "cancelled"
)

// IsTerminal reports whether no more dispatches happen in this state.
func (s JobState) IsTerminal() bool {
	switch s {
	case JobDelivered, JobFailed, JobDeadLetter, JobCancelled:
		return true
	default:
		return false
	}
}

// NotificationJob is a unit of work flowing through the delivery queue.
type NotificationJob struct {
	ID              uuid.UUID  `json:"id"`
	Payload         Payload    `json:"payload"`
	Target          Target     `json:"target"`
	Priority        Priority   `json:"priority"`
	State           JobState   `json:"state"`
	Attempts        int        `json:"attempts"`
	NextAttemptAt   *time.Time `json:"next_attempt_at,omitempty"`
	LastError       string     `json:"last_error,omitempty"`
	CancelRequested bool       `json:"cancel_requested"`
	RequestID       string     `json:"request_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
