package service

import (
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
)

// validateRange rejects a range whose start is after its end. Open ends are fine.
func validateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return apperrors.InvalidRange("Start time %s is after end time %s",
			model.FormatDateTime(*start), model.FormatDateTime(*end))
	}
	return nil
}
