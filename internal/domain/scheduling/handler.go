package scheduling

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careward/careward/internal/platform/auth"
	"github.com/careward/careward/pkg/apperr"
	"github.com/careward/careward/pkg/httpx"
)

const dayFormat = "2006-01-02"

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "user"))
	read.GET("/appointments/all", h.ListAppointments)
	read.GET("/appointments/:id", h.GetAppointment)
	read.GET("/appointments/by-patient/:patientId", h.ListAppointmentsByPatient)
	read.GET("/appointments/by-doctor/:doctorId", h.ListAppointmentsByDoctor)
	read.GET("/appointments/by-nurse/:nurseId", h.ListAppointmentsByNurse)
	read.GET("/appointments/by-status/:status", h.ListAppointmentsByStatus)
	read.GET("/appointments/by-date/:date", h.ListAppointmentsByDate)
	read.GET("/appointments/by-date-range", h.ListAppointmentsByDateRange)
	read.POST("/appointments/create", h.CreateAppointment)

	admin := api.Group("", auth.RequireRole("admin"))
	admin.PUT("/appointments/update/:id", h.UpdateAppointment)
	admin.DELETE("/appointments/delete/:id", h.DeleteAppointment)
}

func (h *Handler) CreateAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateAppointment(c.Request().Context(), &a); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetAppointment(c.Request().Context(), id)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	items, err := h.svc.ListAppointments(c.Request().Context())
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("patientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	items, err := h.svc.ListAppointmentsByPatient(c.Request().Context(), patientID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByDoctor(c echo.Context) error {
	doctorID, err := uuid.Parse(c.Param("doctorId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor id")
	}
	items, err := h.svc.ListAppointmentsByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByNurse(c echo.Context) error {
	nurseID, err := uuid.Parse(c.Param("nurseId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid nurse id")
	}
	items, err := h.svc.ListAppointmentsByNurse(c.Request().Context(), nurseID)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByStatus(c echo.Context) error {
	items, err := h.svc.ListAppointmentsByStatus(c.Request().Context(), AppointmentStatus(c.Param("status")))
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByDate(c echo.Context) error {
	day, err := time.Parse(dayFormat, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	items, err := h.svc.ListAppointmentsByDate(c.Request().Context(), day)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) ListAppointmentsByDateRange(c echo.Context) error {
	start, err := time.Parse(dayFormat, c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
	}
	end, err := time.Parse(dayFormat, c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
	}
	items, err := h.svc.ListAppointmentsByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return apperr.ToHTTPError(err)
	}
	return httpx.List(c, items)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.ID = id
	if err := h.svc.UpdateAppointment(c.Request().Context(), &a); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteAppointment(c.Request().Context(), id); err != nil {
		return apperr.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
