// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// TokenStatus is the lifecycle state of a push token.
type TokenStatus string

const (
	// TokenActive is the current token of a device install.
	TokenActive TokenStatus = "active"
	// TokenStale is a token superseded by a newer registration. It stays
	// deliverable for the configured grace window.
	TokenStale TokenStatus = "stale"
	// TokenInvalid is a token the upstream gateway rejected permanently.
	TokenInvalid TokenStatus = "invalid"
)

// IsValid reports whether s is a known token status.
func (s TokenStatus) IsValid() bool {
	switch s {
	case TokenActive, TokenStale, TokenInvalid:
		return true
	default:
		return false
	}
}

// Device represents a client install that registers push tokens.
type Device struct {
	ID         string    `json:"id"`           // Stable client identity.
	Platform   string    `json:"platform"`     // Device platform (ios, android, web).
	LastSeenAt time.Time `json:"last_seen_at"` // Last registration call.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Token is an opaque push address issued by the upstream gateway for one device.
type Token struct {
	Value         string      `json:"token"`
	DeviceID      string      `json:"device_id"`
	Status        TokenStatus `json:"status"`
	IssuedAt      time.Time   `json:"issued_at"`
	StaleAt       *time.Time  `json:"stale_at,omitempty"`
	InvalidatedAt *time.Time  `json:"invalidated_at,omitempty"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Deliverable reports whether the token may still receive pushes at now.
// Stale tokens remain deliverable until their grace window ends.
func (t *Token) Deliverable(now time.Time, grace time.Duration) bool {
	switch t.Status {
	case TokenActive:
		return true
	case TokenStale:
		if t.StaleAt == nil {
			return false
		}

		return now.Before(t.StaleAt.Add(grace))
	default:
		return false
	}
}

// MarkStale transitions an active token to stale.
func (t *Token) MarkStale(at time.Time) {
	if t.Status != TokenActive {
		return
	}
	t.Status = TokenStale
	t.StaleAt = &at
	t.UpdatedAt = at
}

// MarkInvalid transitions the token to invalid. Invalid is terminal.
func (t *Token) MarkInvalid(at time.Time) {
	if t.Status == TokenInvalid {
		return
	}
	t.Status = TokenInvalid
	t.InvalidatedAt = &at
	t.UpdatedAt = at
}
