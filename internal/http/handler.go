package http

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"eon-tracker.com/eon-tracker/internal/constants"
	dto "eon-tracker.com/eon-tracker/internal/data_models"
	apperrors "eon-tracker.com/eon-tracker/internal/errors"
	"eon-tracker.com/eon-tracker/internal/http/validators"
	"eon-tracker.com/eon-tracker/internal/services"
)

type Handler struct {
	taskService *services.TaskService
	dropService *services.DropService
	dbPath      string
}

func NewHandler(taskService *services.TaskService, dropService *services.DropService, dbPath string) *Handler {
	return &Handler{
		taskService: taskService,
		dropService: dropService,
		dbPath:      dbPath,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.SubmitAt)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	pendingOnly := c.QueryParam("pending") == "true"

	tasks, err := h.taskService.ListTasks(c.Request().Context(), pendingOnly)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	task, logs, err := h.taskService.GetTaskWithLogs(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"task": task,
		"logs": logs,
	})
}

func (h *Handler) AddLog(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.AddLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAddLogRequest(&req); err != nil {
		return httpError(err)
	}

	entry, err := h.taskService.AddLog(c.Request().Context(), id, req.Text, toStatus(req.Status))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

func (h *Handler) SetStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateSetStatusRequest(&req); err != nil {
		return httpError(err)
	}

	if err := h.taskService.SetStatus(c.Request().Context(), id, toStatus(req.Status)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":     id,
		"status": req.Status,
	})
}

func (h *Handler) UpdateSubmitAt(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	var req dto.UpdateSubmitAtRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	if err := h.taskService.UpdateSubmitAt(c.Request().Context(), id, req.SubmitAt); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        id,
		"submit_at": req.SubmitAt,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteLog(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.taskService.DeleteLog(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DownloadDB streams the sqlite backing file verbatim.
func (h *Handler) DownloadDB(c echo.Context) error {
	return c.Attachment(h.dbPath, filepath.Base(h.dbPath))
}

func toStatus(s string) constants.TaskStatus {
	return constants.TaskStatus(s)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

func httpError(err error) error {
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(ex.StatusCode, ex.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
