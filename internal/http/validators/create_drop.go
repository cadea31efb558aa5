package validators

import (
	dto "eon-tracker.com/eon-tracker/internal/data_models"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
)

func ValidateCreateDropRequest(r *dto.CreateDropRequest) error {
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if r.Content == "" {
		return apperrors.ErrContentRequired
	}
	return nil
}
