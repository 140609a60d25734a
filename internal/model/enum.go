package model

import (
	"strings"

	apperrors "eventhub/pkg/app_errors"
)

// parseEnum matches raw against the allowed values case-insensitively.
// Unknown values are an illegal action, not a validation failure.
func parseEnum[T ~string](kind, raw string, allowed ...T) (T, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, v := range allowed {
		if string(v) == normalized {
			return v, nil
		}
	}
	var zero T
	return zero, apperrors.IllegalAction("Unknown %s: %s", kind, raw)
}
