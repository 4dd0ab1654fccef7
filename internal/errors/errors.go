// Package errors is the error toolkit of the infrastructure layer: stdlib
// matching plus pkg/errors wrapping, so store and queue failures carry a stack
// trace up to the point where they are logged.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Wrap annotates err with msg and a stack trace. Wrap(nil, msg) is nil.
func Wrap(err error, msg string) error { return pkgerrors.Wrap(err, msg) }

// Errorf is fmt.Errorf with a stack trace.
func Errorf(format string, args ...any) error { return pkgerrors.Errorf(format, args...) }

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error { return pkgerrors.WithStack(err) }
