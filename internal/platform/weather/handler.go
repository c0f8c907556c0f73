package weather

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
	read.GET("/weather", h.GetWeather)
}

// GetWeather always answers 200; adapter failures surface as the default record.
func (h *Handler) GetWeather(c echo.Context) error {
	info := h.client.GetWeatherByCity(c.Request().Context(), c.QueryParam("city"))
	return c.JSON(http.StatusOK, info)
}
