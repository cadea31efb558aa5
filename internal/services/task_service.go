package services

import (
	"context"

	"eon-tracker.com/eon-tracker/internal/clock"
	"eon-tracker.com/eon-tracker/internal/constants"
	model "eon-tracker.com/eon-tracker/internal/models"
	repository "eon-tracker.com/eon-tracker/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	clock clock.Clock
}

func NewTaskService(repo *repository.TaskRepository, clk clock.Clock) *TaskService {
	return &TaskService{
		repo:  repo,
		clock: clk,
	}
}

// CreateTask stores a new task with status "not started". submitAt is kept
// verbatim; it is freeform due-date text, not a validated date. An empty
// title is an ignored submission: no row is created and no error returned.
func (s *TaskService) CreateTask(ctx context.Context, title, submitAt string) (*model.Task, error) {
	if title == "" {
		return nil, nil
	}
	return s.repo.CreateTask(ctx, title, submitAt, s.now())
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) GetTaskWithLogs(ctx context.Context, id int64) (*model.Task, []model.TaskLog, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.repo.ListLogs(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return task, logs, nil
}

// ListTasks returns tasks ordered by id ascending. With pendingOnly, tasks
// whose status is exactly "completed" are excluded.
func (s *TaskService) ListTasks(ctx context.Context, pendingOnly bool) ([]model.Task, error) {
	return s.repo.List(ctx, pendingOnly)
}

// AddLog appends a timestamped log entry. An empty text is an ignored
// submission. A non-empty status is applied atomically with the log insert.
func (s *TaskService) AddLog(ctx context.Context, taskID int64, text string, status constants.TaskStatus) (*model.TaskLog, error) {
	if text == "" {
		return nil, nil
	}
	return s.repo.CreateLog(ctx, taskID, text, s.now(), status)
}

// SetStatus overwrites the status with any non-empty text. The vocabulary
// is open on purpose; an empty status is an ignored submission.
func (s *TaskService) SetStatus(ctx context.Context, taskID int64, status constants.TaskStatus) error {
	if status == "" {
		return nil
	}
	return s.repo.UpdateStatus(ctx, taskID, status)
}

func (s *TaskService) UpdateSubmitAt(ctx context.Context, taskID int64, submitAt string) error {
	return s.repo.UpdateSubmitAt(ctx, taskID, submitAt)
}

// DeleteTask removes the task and its logs. Deleting an absent id is a
// silent no-op.
func (s *TaskService) DeleteTask(ctx context.Context, taskID int64) error {
	return s.repo.DeleteTask(ctx, taskID)
}

func (s *TaskService) DeleteLog(ctx context.Context, logID int64) error {
	return s.repo.DeleteLog(ctx, logID)
}

func (s *TaskService) LastLog(ctx context.Context, taskID int64) (*model.TaskLog, error) {
	return s.repo.LastLog(ctx, taskID)
}

func (s *TaskService) now() string {
	return clock.Timestamp(s.clock.Now())
}
