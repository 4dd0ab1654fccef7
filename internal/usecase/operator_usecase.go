package usecase

import (
	"context"
	"time"

	"pushrelay/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginOutput carries an operator access token.
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// DeadLetterPage is one page of dead-lettered jobs.
type DeadLetterPage struct {
	Jobs   []*entity.NotificationJob `json:"jobs"`
	Total  int64                     `json:"total"`
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
}

// OperatorUsecase covers the operator interface.
type OperatorUsecase interface {
	// Login checks the operator password and issues an access token.
	Login(ctx context.Context, password string) (*LoginOutput, error)

	// LoginWithGoogle exchanges a Google ID token of an allowed account for an
	// access token.
	LoginWithGoogle(ctx context.Context, idToken string) (*LoginOutput, error)

	// ListDeadLetters pages through dead-lettered jobs, oldest first.
	ListDeadLetters(ctx context.Context, limit, offset int) (*DeadLetterPage, error)

	// Redrive resets a dead-lettered job and enqueues it again.
	Redrive(ctx context.Context, jobID uuid.UUID) (*entity.NotificationJob, error)
}
