package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eon-tracker.com/eon-tracker/internal/constants"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
	model "eon-tracker.com/eon-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title, submitAt, createdAt string) (*model.Task, error) {
	task := &model.Task{
		Title:     title,
		CreatedAt: createdAt,
		SubmitAt:  submitAt,
		Status:    constants.StatusNotStarted,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, pendingOnly bool) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Order("id asc")
	if pendingOnly {
		query = query.Where("status <> ?", constants.StatusCompleted)
	}

	var tasks []model.Task
	err := query.Find(&tasks).Error
	return tasks, err
}

// UpdateStatus overwrites unconditionally; updating an absent id affects no
// rows and is not an error.
func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status constants.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *TaskRepository) UpdateSubmitAt(ctx context.Context, id int64, submitAt string) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("submit_at", submitAt).Error
}

// DeleteTask removes the task and every log referencing it in one
// transaction, so a crash mid-delete cannot leave orphaned logs.
func (r *TaskRepository) DeleteTask(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
}

// CreateLog inserts a log entry and, when status is non-empty, applies the
// status change in the same transaction.
func (r *TaskRepository) CreateLog(ctx context.Context, taskID int64, text, timestamp string, status constants.TaskStatus) (*model.TaskLog, error) {
	entry := &model.TaskLog{
		TaskID:    taskID,
		Log:       text,
		Timestamp: timestamp,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		if err := tx.First(&task, "id = ?", taskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		if status != "" {
			return tx.Model(&model.Task{}).
				Where("id = ?", taskID).
				Update("status", status).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *TaskRepository) ListLogs(ctx context.Context, taskID int64) ([]model.TaskLog, error) {
	var logs []model.TaskLog
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("id asc").
		Find(&logs).Error
	return logs, err
}

// LastLog returns the most recent log for a task, or nil when it has none.
func (r *TaskRepository) LastLog(ctx context.Context, taskID int64) (*model.TaskLog, error) {
	var entry model.TaskLog
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("id desc").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *TaskRepository) DeleteLog(ctx context.Context, logID int64) error {
	return r.db.WithContext(ctx).Delete(&model.TaskLog{}, logID).Error
}
