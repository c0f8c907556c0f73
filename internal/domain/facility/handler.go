package facility

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
	read.GET("/hospitals/all", h.ListHospitals)
	read.GET("/hospitals/:id", h.GetHospital)
	read.GET("/hospitals/by-city/:city", h.ListHospitalsByCity)
	read.GET("/wards/all", h.ListWards)
	read.GET("/wards/:id", h.GetWard)
	read.GET("/wards/by-type/:type", h.ListWardsByType)
	read.GET("/wards/by-hospital/:hospitalId", h.ListWardsByHospital)

	admin := api.Group("", auth.RequireRole("admin"))
	admin.POST("/hospitals/create", h.CreateHospital)
	admin.PUT("/hospitals/update/:id", h.UpdateHospital)
	admin.DELETE("/hospitals/delete/:id", h.DeleteHospital)
	admin.POST("/wards/create", h.CreateWard)
	admin.PUT("/wards/update/:id", h.UpdateWard)
	admin.DELETE("/wards/delete/:id", h.DeleteWard)
}

// -- Hospital Handlers --

func (h *Handler) CreateHospital(c echo.Context) error {
	var hospital Hospital
	if err := c.Bind(&hospital); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateHospital(c.Request().Context(), &hospital); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, hospital)
}

func (h *Handler) GetHospital(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	hospital, err := h.svc.GetHospital(c.Request().Context(), id)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	items, err := h.svc.ListHospitals(c.Request().Context())
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListHospitalsByCity(c echo.Context) error {
	items, err := h.svc.ListHospitalsByCity(c.Request().Context(), c.Param("city"))
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) UpdateHospital(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var hospital Hospital
	if err := c.Bind(&hospital); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	hospital.ID = id
	if err := h.svc.UpdateHospital(c.Request().Context(), &hospital); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *Handler) DeleteHospital(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteHospital(c.Request().Context(), id); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Ward Handlers --

func (h *Handler) CreateWard(c echo.Context) error {
	var ward Ward
	if err := c.Bind(&ward); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateWard(c.Request().Context(), &ward); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, ward)
}

func (h *Handler) GetWard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	ward, err := h.svc.GetWard(c.Request().Context(), id)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, ward)
}

func (h *Handler) ListWards(c echo.Context) error {
	items, err := h.svc.ListWards(c.Request().Context())
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListWardsByType(c echo.Context) error {
	items, err := h.svc.ListWardsByType(c.Request().Context(), WardType(c.Param("type")))
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListWardsByHospital(c echo.Context) error {
	hospitalID, err := uuid.Parse(c.Param("hospitalId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hospital id")
	}
	items, err := h.svc.ListWardsByHospital(c.Request().Context(), hospitalID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) UpdateWard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var ward Ward
	if err := c.Bind(&ward); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ward.ID = id
	if err := h.svc.UpdateWard(c.Request().Context(), &ward); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, ward)
}

func (h *Handler) DeleteWard(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteWard(c.Request().Context(), id); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
