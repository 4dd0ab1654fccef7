package errors

import (
	"fmt"
	"net/http"
	"time"

	"pushrelay/internal/errors"
)

// TransientDeliveryError is an upstream failure that may succeed on retry
// (rate limit, unavailable, network error, call timeout). RetryAfter is the
// wait the upstream asked for, zero when it gave none.
type TransientDeliveryError struct {
	Reason     string
	RetryAfter time.Duration
	Err        error
}

// NewTransientDeliveryError wraps err as a retryable delivery failure.
func NewTransientDeliveryError(reason string, err error) *TransientDeliveryError {
	return &TransientDeliveryError{Reason: reason, Err: err}
}

func (e *TransientDeliveryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("transient delivery failure: %s", e.Reason)
	}

	return fmt.Sprintf("transient delivery failure: %s: %v", e.Reason, e.Err)
}

func (e *TransientDeliveryError) Unwrap() error {
	return e.Err
}

// PermanentDeliveryError is an upstream failure that retrying cannot fix.
// With MessageRejected unset the token itself is dead (unregistered, wrong
// sender) and must be invalidated. With MessageRejected set the upstream
// refused the message or the project setup, and the token stays valid.
type PermanentDeliveryError struct {
	Reason          string
	MessageRejected bool
	Err             error
}

// NewPermanentDeliveryError wraps err as a non-retryable failure of the token.
func NewPermanentDeliveryError(reason string, err error) *PermanentDeliveryError {
	return &PermanentDeliveryError{Reason: reason, Err: err}
}

// NewRejectedMessageError wraps err as a non-retryable failure of the message
// that says nothing about the token.
func NewRejectedMessageError(reason string, err error) *PermanentDeliveryError {
	return &PermanentDeliveryError{Reason: reason, MessageRejected: true, Err: err}
}

func (e *PermanentDeliveryError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("permanent delivery failure: %s", e.Reason)
	}

	return fmt.Sprintf("permanent delivery failure: %s: %v", e.Reason, e.Err)
}

func (e *PermanentDeliveryError) Unwrap() error {
	return e.Err
}

// StoreUnavailableError marks a failure of a durable store. It is fatal to the
// affected operation and surfaces to callers as 503.
type StoreUnavailableError struct {
	Store string
	Err   error
}

// NewStoreUnavailableError wraps err with the name of the failing store.
func NewStoreUnavailableError(store string, err error) *StoreUnavailableError {
	return &StoreUnavailableError{Store: store, Err: err}
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("%s store unavailable: %v", e.Store, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *StoreUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *StoreUnavailableError) ErrorCode() string {
	return "STORE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StoreUnavailableError) Message() string {
	return "Storage is temporarily unavailable"
}

// Details returns detailed error information
func (e *StoreUnavailableError) Details() string {
	return e.Store
}

// IsTransient reports whether err carries a TransientDeliveryError.
func IsTransient(err error) bool {
	var te *TransientDeliveryError

	return errors.As(err, &te)
}

// IsPermanent reports whether err carries a PermanentDeliveryError.
func IsPermanent(err error) bool {
	var pe *PermanentDeliveryError

	return errors.As(err, &pe)
}

// IsTokenInvalid reports whether err is a permanent failure of the token
// rather than of the message.
func IsTokenInvalid(err error) bool {
	var pe *PermanentDeliveryError

	return errors.As(err, &pe) && !pe.MessageRejected
}

// RetryAfter returns the wait requested by a transient failure, or zero.
func RetryAfter(err error) time.Duration {
	var te *TransientDeliveryError
	if errors.As(err, &te) {
		return te.RetryAfter
	}

	return 0
}

// IsStoreUnavailable reports whether err carries a StoreUnavailableError.
func IsStoreUnavailable(err error) bool {
	var se *StoreUnavailableError

	return errors.As(err, &se)
}

// IsQueueFull reports whether err is the queue backpressure signal.
func IsQueueFull(err error) bool {
	return errors.Is(err, ErrQueueFull)
}

// FailureReason extracts the classification reason of a delivery error.
func FailureReason(err error) string {
	var te *TransientDeliveryError
	if errors.As(err, &te) {
		return te.Reason
	}

	var pe *PermanentDeliveryError
	if errors.As(err, &pe) {
		return pe.Reason
	}

	if err == nil {
		return ""
	}

	return err.Error()
}
