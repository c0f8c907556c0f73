// Package httpx holds small HTTP response helpers shared by the handlers.
package httpx

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// List writes a bare JSON array, or 204 No Content when the slice is empty.
func List[T any](c echo.Context, items []T) error {
	if len(items) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, items)
}
