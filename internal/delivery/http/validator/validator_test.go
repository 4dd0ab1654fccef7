package validator

import (
	"testing"

	domainerrors "pushrelay/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind   string `validate:"required,oneof=device topic"`
	Target string `validate:"required,max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Kind: "device", Target: "d1"}))

	err := v.Validate(&sample{Kind: "email", Target: "too-long-target"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.Contains(t, baseErr.Details(), "kind must be one of [device topic]")
	assert.Contains(t, baseErr.Details(), "target must be at most 5 characters")

	err = v.Validate(&sample{})
	require.Error(t, err)
	require.True(t, errors.As(err, &baseErr))
	assert.Contains(t, baseErr.Details(), "kind is required")
}
