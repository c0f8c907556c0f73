package clinical

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careward/careward/internal/platform/auth"
	"github.com/careward/careward/pkg/apperr"
	"github.com/careward/careward/pkg/httpx"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "user"))
	read.GET("/diagnoses/all", h.ListDiagnoses)
	read.GET("/diagnoses/:id", h.GetDiagnosis)
	read.GET("/diagnoses/by-doctor/:doctorId", h.ListDiagnosesByDoctor)
	read.POST("/diagnoses/create", h.CreateDiagnosis)
	read.PUT("/diagnoses/update/:id", h.UpdateDiagnosis)
	read.DELETE("/diagnoses/delete/:id", h.DeleteDiagnosis)
}

func (h *Handler) CreateDiagnosis(c echo.Context) error {
	var d Diagnosis
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDiagnosis(c.Request().Context(), &d); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetDiagnosis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.GetDiagnosis(c.Request().Context(), id)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDiagnoses(c echo.Context) error {
	items, err := h.svc.ListDiagnoses(c.Request().Context())
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListDiagnosesByDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	items, err := h.svc.ListDiagnosesByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) UpdateDiagnosis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var d Diagnosis
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.UpdateDiagnosis(c.Request().Context(), &d); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDiagnosis(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteDiagnosis(c.Request().Context(), id); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
