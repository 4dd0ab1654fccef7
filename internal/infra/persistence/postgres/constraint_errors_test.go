package postgres

import (
	"testing"

	domainerrors "pushrelay/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "wrapped duplicated key", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: true},
		{name: "driver message", err: errors.New(`ERROR: duplicate key value violates unique constraint "push_tokens_pkey" (SQLSTATE 23505)`), want: true},
		{name: "other error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := storeError(cause, "failed to find job")

	assert.True(t, domainerrors.IsStoreUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "postgres store unavailable")
}
