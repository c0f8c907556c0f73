package worldclock

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careward/careward/internal/platform/auth"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "user"))
	read.GET("/time", h.GetTime)
}

// GetTime always answers 200; adapter failures surface as the fallback record.
func (h *Handler) GetTime(c echo.Context) error {
	info := h.client.GetCurrentTime(c.Request().Context(), c.QueryParam("timezone"))
	return c.JSON(http.StatusOK, info)
}
