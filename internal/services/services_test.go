package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"eon-tracker.com/eon-tracker/internal/clock"
	"eon-tracker.com/eon-tracker/internal/constants"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
	model "eon-tracker.com/eon-tracker/internal/models"
	repository "eon-tracker.com/eon-tracker/internal/repositories"
)

// fakeClock is advanced manually so stored timestamps are deterministic.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	loc := time.FixedZone("IST", 5*3600+30*60)
	return &fakeClock{now: time.Date(2026, 8, 29, 10, 0, 0, 0, loc)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

var _ clock.Clock = (*fakeClock)(nil)

func setupTestDB(t *testing.T) *gorm.DB {
	// a named in-memory database per test keeps tests isolated while the
	// connection pool can still see the same store
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.Task{}, &model.TaskLog{}, &model.Drop{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTaskService(t *testing.T) (*TaskService, *fakeClock) {
	db := setupTestDB(t)
	clk := newFakeClock()
	return NewTaskService(repository.NewTaskRepository(db), clk), clk
}

func TestTaskService_CreateAndGet(t *testing.T) {
	service, clk := newTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "Write report", "2024-01-10")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.ID == 0 {
		t.Error("expected task ID to be assigned")
	}

	fetched, err := service.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}

	if fetched.Status != constants.StatusNotStarted {
		t.Errorf("expected status %q, got %q", constants.StatusNotStarted, fetched.Status)
	}
	if fetched.SubmitAt != "2024-01-10" {
		t.Errorf("expected submit_at to be stored verbatim, got %q", fetched.SubmitAt)
	}
	if want := clock.Timestamp(clk.Now()); fetched.CreatedAt != want {
		t.Errorf("expected created_at %q, got %q", want, fetched.CreatedAt)
	}
}

func TestTaskService_CreateEmptyTitleIgnored(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, "", "2024-01-10")
	if err != nil {
		t.Fatalf("empty title should be ignored, got error: %v", err)
	}
	if task != nil {
		t.Errorf("expected no task for empty title, got %+v", task)
	}

	tasks, _ := service.ListTasks(ctx, false)
	if len(tasks) != 0 {
		t.Errorf("expected empty task list, got %d tasks", len(tasks))
	}
}

func TestTaskService_GetMissingTask(t *testing.T) {
	service, _ := newTaskService(t)

	_, err := service.GetTask(context.Background(), 42)
	if err != apperrors.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_ListPendingExcludesCompleted(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	a, _ := service.CreateTask(ctx, "a", "")
	b, _ := service.CreateTask(ctx, "b", "")
	c, _ := service.CreateTask(ctx, "c", "")

	if err := service.SetStatus(ctx, b.ID, constants.StatusCompleted); err != nil {
		t.Fatalf("failed to set status: %v", err)
	}
	// exact-match sentinel: a capitalized variant stays pending
	if err := service.SetStatus(ctx, c.ID, "Completed"); err != nil {
		t.Fatalf("failed to set status: %v", err)
	}

	pending, err := service.ListTasks(ctx, true)
	if err != nil {
		t.Fatalf("failed to list pending tasks: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending tasks, got %d", len(pending))
	}
	if pending[0].ID != a.ID || pending[1].ID != c.ID {
		t.Errorf("expected tasks %d and %d in id order, got %d and %d",
			a.ID, c.ID, pending[0].ID, pending[1].ID)
	}

	all, _ := service.ListTasks(ctx, false)
	if len(all) != 3 {
		t.Errorf("expected 3 tasks in full list, got %d", len(all))
	}
}

func TestTaskService_SetStatusOpenVocabulary(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")

	if err := service.SetStatus(ctx, task.ID, "waiting on client feedback"); err != nil {
		t.Fatalf("arbitrary status text should be accepted: %v", err)
	}

	fetched, _ := service.GetTask(ctx, task.ID)
	if fetched.Status != "waiting on client feedback" {
		t.Errorf("expected free-text status to persist, got %q", fetched.Status)
	}
}

func TestTaskService_AddLogEmptyTextIgnored(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")

	entry, err := service.AddLog(ctx, task.ID, "", "")
	if err != nil {
		t.Fatalf("empty log text should be ignored, got error: %v", err)
	}
	if entry != nil {
		t.Errorf("expected no log entry, got %+v", entry)
	}

	_, logs, _ := service.GetTaskWithLogs(ctx, task.ID)
	if len(logs) != 0 {
		t.Errorf("expected log count unchanged, got %d", len(logs))
	}
}

func TestTaskService_AddLogWithStatus(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")

	entry, err := service.AddLog(ctx, task.ID, "started drafting", constants.StatusInProgress)
	if err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected log ID to be assigned")
	}

	fetched, _ := service.GetTask(ctx, task.ID)
	if fetched.Status != constants.StatusInProgress {
		t.Errorf("expected status applied with log, got %q", fetched.Status)
	}
}

func TestTaskService_AddLogMissingTask(t *testing.T) {
	service, _ := newTaskService(t)

	_, err := service.AddLog(context.Background(), 42, "text", "")
	if err != apperrors.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_LastLogReturnsMostRecent(t *testing.T) {
	service, clk := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")

	for _, text := range []string{"A", "B", "C"} {
		if _, err := service.AddLog(ctx, task.ID, text, ""); err != nil {
			t.Fatalf("failed to add log %q: %v", text, err)
		}
		clk.advance(time.Minute)
	}

	last, err := service.LastLog(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to get last log: %v", err)
	}
	if last == nil || last.Log != "C" {
		t.Errorf("expected last log C, got %+v", last)
	}
}

func TestTaskService_LastLogWithoutLogs(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")

	last, err := service.LastLog(ctx, task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != nil {
		t.Errorf("expected nil last log, got %+v", last)
	}
}

func TestTaskService_DeleteTaskCascadesLogs(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewTaskRepository(db)
	service := NewTaskService(repo, newFakeClock())
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")
	other, _ := service.CreateTask(ctx, "b", "")
	service.AddLog(ctx, task.ID, "one", "")
	service.AddLog(ctx, task.ID, "two", "")
	service.AddLog(ctx, other.ID, "keep", "")

	if err := service.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	if _, err := service.GetTask(ctx, task.ID); err != apperrors.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound after delete, got %v", err)
	}

	tasks, _ := service.ListTasks(ctx, false)
	for _, tk := range tasks {
		if tk.ID == task.ID {
			t.Error("deleted task still present in list")
		}
	}

	var orphaned int64
	db.Model(&model.TaskLog{}).Where("task_id = ?", task.ID).Count(&orphaned)
	if orphaned != 0 {
		t.Errorf("expected 0 logs for deleted task, got %d", orphaned)
	}

	kept, _ := service.LastLog(ctx, other.ID)
	if kept == nil || kept.Log != "keep" {
		t.Error("logs of other tasks must survive the cascade")
	}
}

func TestTaskService_DeleteAbsentIsNoop(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	if err := service.DeleteTask(ctx, 99); err != nil {
		t.Errorf("delete of absent task should be a no-op, got %v", err)
	}
	if err := service.DeleteLog(ctx, 99); err != nil {
		t.Errorf("delete of absent log should be a no-op, got %v", err)
	}
}

func TestTaskService_DeleteLogKeepsTask(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "")
	entry, _ := service.AddLog(ctx, task.ID, "one", "")

	if err := service.DeleteLog(ctx, entry.ID); err != nil {
		t.Fatalf("failed to delete log: %v", err)
	}

	if _, err := service.GetTask(ctx, task.ID); err != nil {
		t.Errorf("owning task must survive log deletion, got %v", err)
	}
	_, logs, _ := service.GetTaskWithLogs(ctx, task.ID)
	if len(logs) != 0 {
		t.Errorf("expected 0 logs, got %d", len(logs))
	}
}

func TestTaskService_UpdateSubmitAt(t *testing.T) {
	service, _ := newTaskService(t)
	ctx := context.Background()

	task, _ := service.CreateTask(ctx, "a", "friday")

	if err := service.UpdateSubmitAt(ctx, task.ID, "before the demo"); err != nil {
		t.Fatalf("failed to update submit_at: %v", err)
	}

	fetched, _ := service.GetTask(ctx, task.ID)
	if fetched.SubmitAt != "before the demo" {
		t.Errorf("expected freeform submit_at overwrite, got %q", fetched.SubmitAt)
	}
}

func TestDropService_CreateListDelete(t *testing.T) {
	db := setupTestDB(t)
	service := NewDropService(repository.NewDropRepository(db), newFakeClock())
	ctx := context.Background()

	first, err := service.CreateDrop(ctx, "first", "alpha")
	if err != nil {
		t.Fatalf("failed to create drop: %v", err)
	}
	second, _ := service.CreateDrop(ctx, "second", "beta")

	if d, err := service.CreateDrop(ctx, "", "content"); err != nil || d != nil {
		t.Errorf("drop without title should be ignored, got %+v, %v", d, err)
	}
	if d, err := service.CreateDrop(ctx, "title", ""); err != nil || d != nil {
		t.Errorf("drop without content should be ignored, got %+v, %v", d, err)
	}

	drops, err := service.ListDrops(ctx)
	if err != nil {
		t.Fatalf("failed to list drops: %v", err)
	}
	if len(drops) != 2 {
		t.Fatalf("expected 2 drops, got %d", len(drops))
	}
	if drops[0].ID != second.ID {
		t.Error("expected newest drop first")
	}

	if err := service.DeleteDrop(ctx, first.ID); err != nil {
		t.Fatalf("failed to delete drop: %v", err)
	}
	if _, err := service.GetDrop(ctx, first.ID); err != apperrors.ErrDropNotFound {
		t.Errorf("expected ErrDropNotFound, got %v", err)
	}
}
