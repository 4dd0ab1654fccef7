package postgres

import (
	"strings"

	domainerrors "pushrelay/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const storeName = "postgres"

// isUniqueConstraintViolation reports a duplicate key error.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Without TranslateError the driver message is the only signal (SQLSTATE 23505).
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "23505")
}

// storeError reports a driver failure as an unavailable store.
func storeError(err error, details string) error {
	return domainerrors.NewStoreUnavailableError(storeName, errors.Wrap(err, details))
}
