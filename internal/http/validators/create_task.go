package validators

import (
	dto "eon-tracker.com/eon-tracker/internal/data_models"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	return nil
}
