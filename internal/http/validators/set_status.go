package validators

import (
	dto "eon-tracker.com/eon-tracker/internal/data_models"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
)

func ValidateSetStatusRequest(r *dto.SetStatusRequest) error {
	if r.Status == "" {
		return apperrors.ErrStatusRequired
	}
	return nil
}
