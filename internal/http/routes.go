package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "eon-tracker.com/eon-tracker/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks/:id/logs", h.AddLog)
	e.PUT("/tasks/:id/status", h.SetStatus)
	e.PUT("/tasks/:id/submit_at", h.UpdateSubmitAt)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.DELETE("/logs/:id", h.DeleteLog)

	e.GET("/drops", h.ListDrops)
	e.POST("/drops", h.CreateDrop)
	e.GET("/drops/:id", h.GetDrop)
	e.DELETE("/drops/:id", h.DeleteDrop)

	e.GET("/db/download", h.DownloadDB)
}
