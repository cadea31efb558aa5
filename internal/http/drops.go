package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "eon-tracker.com/eon-tracker/internal/data_models"
	"eon-tracker.com/eon-tracker/internal/http/validators"
)

func (h *Handler) CreateDrop(c echo.Context) error {
	var req dto.CreateDropRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateDropRequest(&req); err != nil {
		return httpError(err)
	}

	drop, err := h.dropService.CreateDrop(c.Request().Context(), req.Title, req.Content)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, drop)
}

func (h *Handler) ListDrops(c echo.Context) error {
	drops, err := h.dropService.ListDrops(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(drops),
		"drops": drops,
	})
}

func (h *Handler) GetDrop(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	drop, err := h.dropService.GetDrop(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, drop)
}

func (h *Handler) DeleteDrop(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.dropService.DeleteDrop(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
