package impl

import (
	"fmt"
	"strings"

	"pushrelay/internal/domain/entity"
	domainerrors "pushrelay/internal/domain/errors"
)

// maxPayloadBytes is the FCM message size limit, counted over title, body
// and data keys and values.
const maxPayloadBytes = 4096

//nolint:gochecknoglobals
var (
	reservedDataKeys = map[string]struct{}{
		"from":         {},
		"notification": {},
		"message_type": {},
		"collapse_key": {},
	}
	reservedDataPrefixes = []string{"google", "gcm"}
)

// validatePayload rejects payloads the push provider refuses as a whole.
// Such a job could never be delivered to any token.
func validatePayload(payload entity.Payload) error {
	size := len(payload.Title) + len(payload.Body)

	for key, value := range payload.Data {
		if key == "" {
			return domainerrors.ErrInvalidPayload.WithDetails("data keys must not be empty")
		}
		if _, ok := reservedDataKeys[key]; ok {
			return domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("data key %q is reserved", key))
		}
		lower := strings.ToLower(key)
		for _, prefix := range reservedDataPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("data key %q uses the reserved prefix %q", key, prefix))
			}
		}

		size += len(key) + len(value)
	}

	if size > maxPayloadBytes {
		return domainerrors.ErrInvalidPayload.WithDetails(fmt.Sprintf("payload is %d bytes, the limit is %d", size, maxPayloadBytes))
	}

	return nil
}
