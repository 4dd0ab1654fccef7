package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttemptState is the per-token delivery state machine:
// pending -> in_flight -> {delivered, transient_failure, permanent_failure}.
type AttemptState string

const (
	AttemptPending          AttemptState = "pending"
	AttemptInFlight         AttemptState = "in_flight"
	AttemptDelivered        AttemptState = "delivered"
	AttemptTransientFailure AttemptState = "transient_failure"
	AttemptPermanentFailure AttemptState = "permanent_failure"
)

// IsTerminal reports whether the token needs no further attempts for its job.
// A transient failure is not terminal; it may be retried.
func (s AttemptState) IsTerminal() bool {
	return s == AttemptDelivered || s == AttemptPermanentFailure
}

// CanTransition reports whether next is a legal successor of s.
func (s AttemptState) CanTransition(next AttemptState) bool {
	switch s {
	case AttemptPending:
		return next == AttemptInFlight
	case AttemptInFlight:
		return next == AttemptDelivered || next == AttemptTransientFailure || next == AttemptPermanentFailure
	default:
		return false
	}
}

// DeliveryAttempt records one upstream call for a (job, token) pair.
type DeliveryAttempt struct {
	ID        uuid.UUID    `json:"id"`
	JobID     uuid.UUID    `json:"job_id"`
	Token     string       `json:"token"`
	DeviceID  string       `json:"device_id"`
	State     AttemptState `json:"state"`
	Attempt   int          `json:"attempt"`
	Reason    string       `json:"reason,omitempty"`
	MessageID string       `json:"message_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`

	// RetryAfter is the wait the upstream asked for after a transient
	// failure. It only lives for the dispatch round and is not stored.
	RetryAfter time.Duration `json:"-"`
}

// NewDeliveryAttempt creates a pending attempt.
func NewDeliveryAttempt(jobID uuid.UUID, token *Token, attempt int) *DeliveryAttempt {
	return &DeliveryAttempt{
		ID:        uuid.New(),
		JobID:     jobID,
		Token:     token.Value,
		DeviceID:  token.DeviceID,
		State:     AttemptPending,
		Attempt:   attempt,
		CreatedAt: time.Now(),
	}
}

// Transition moves the attempt to next, returning false when the move is illegal.
func (a *DeliveryAttempt) Transition(next AttemptState) bool {
	if !a.State.CanTransition(next) {
		return false
	}
	a.State = next

	return true
}

// RecipientStatus is the latest outcome for one token of a job.
type RecipientStatus struct {
	DeviceID string       `json:"device_id"`
	Token    string       `json:"token"`
	State    AttemptState `json:"state"`
	Attempts int          `json:"attempts"`
	Reason   string       `json:"reason,omitempty"`
}

// JobStatus is the aggregate receipt view of a job.
type JobStatus struct {
	JobID      uuid.UUID          `json:"job_id"`
	State      JobState           `json:"state"`
	Target     Target             `json:"target"`
	Attempts   int                `json:"attempts"`
	LastError  string             `json:"last_error,omitempty"`
	Delivered  int                `json:"delivered"`
	Failed     int                `json:"failed"`
	Pending    int                `json:"pending"`
	Recipients []*RecipientStatus `json:"recipients"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
