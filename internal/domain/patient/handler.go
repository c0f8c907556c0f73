package patient

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

// RegisterRoutes keeps patient creation available to regular users; only
// update and delete are admin operations.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "user"))
	read.GET("/patients/all", h.ListPatients)
	read.GET("/patients/:id", h.GetPatient)
	read.GET("/patients/by-ward/:wardId", h.ListPatientsByWard)
	read.GET("/patients/by-hospital/:hospitalId", h.ListPatientsByHospital)
	read.POST("/patients/create", h.CreatePatient)

	admin := api.Group("", auth.RequireRole("admin"))
	admin.PUT("/patients/update/:id", h.UpdatePatient)
	admin.DELETE("/patients/delete/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePatient(c.Request().Context(), &p); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p, err := h.svc.GetPatient(c.Request().Context(), id)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	items, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListPatientsByWard(c echo.Context) error {
	wardID, err := uuid.Parse(c.Param("wardId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ward id")
	}
	items, err := h.svc.ListPatientsByWard(c.Request().Context(), wardID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListPatientsByHospital(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("hospitalId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hospital id")
	}
	items, err := h.svc.ListPatientsByHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p.ID = id
	if err := h.svc.UpdatePatient(c.Request().Context(), &p); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
