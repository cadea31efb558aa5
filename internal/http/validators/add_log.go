package validators

import (
	dto "eon-tracker.com/eon-tracker/internal/data_models"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
)

func ValidateAddLogRequest(r *dto.AddLogRequest) error {
	if r.Text == "" {
		return apperrors.ErrLogTextRequired
	}
	return nil
}
