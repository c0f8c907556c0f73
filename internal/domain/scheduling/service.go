package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	appointments AppointmentRepository
	patients     PatientChecker
	doctors      DoctorChecker
	nurses       NurseChecker
}

func NewService(appointments AppointmentRepository, patients PatientChecker, doctors DoctorChecker, nurses NurseChecker) *Service {
	return &Service{appointments: appointments, patients: patients, doctors: doctors, nurses: nurses}
}

// CreateAppointment defaults a blank status to SCHEDULED.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Appointment ID cannot be null")
	}
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListAppointmentsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	if patientID == uuid.Nil {
		return nil, apperr.Required("Patient ID cannot be null")
	}
	return s.appointments.ListByPatient(ctx, patientID)
}

func (s *Service) ListAppointmentsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	if doctorID == uuid.Nil {
		return nil, apperr.Required("Doctor ID cannot be null")
	}
	return s.appointments.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListAppointmentsByNurse(ctx context.Context, nurseID uuid.UUID) ([]*Appointment, error) {
	if nurseID == uuid.Nil {
		return nil, apperr.Required("Nurse ID cannot be null")
	}
	return s.appointments.ListByNurse(ctx, nurseID)
}

func (s *Service) ListAppointmentsByStatus(ctx context.Context, status AppointmentStatus) ([]*Appointment, error) {
	if !ValidStatuses[status] {
		return nil, apperr.Validation("invalid appointment status: %s", status)
	}
	return s.appointments.ListByStatus(ctx, status)
}

func (s *Service) ListAppointmentsByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	return s.appointments.ListByDate(ctx, day)
}

func (s *Service) ListAppointmentsByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error) {
	if end.Before(start) {
		return nil, apperr.Validation("end date must not precede start date")
	}
	return s.appointments.ListByDateRange(ctx, start, end)
}

func (s *Service) UpdateAppointment(ctx context.Context, a *Appointment) error {
	if a.ID == uuid.Nil {
		return apperr.Required("Appointment ID cannot be null")
	}
	exists, err := s.appointments.Exists(ctx, a.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Appointment not found")
	}
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	return s.appointments.Update(ctx, a)
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Appointment ID cannot be null")
	}
	exists, err := s.appointments.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Appointment not found")
	}
	return s.appointments.Delete(ctx, id)
}

// validate checks status membership and every supplied participant reference
// before any write happens.
func (s *Service) validate(ctx context.Context, a *Appointment) error {
	if !ValidStatuses[a.Status] {
		return apperr.Validation("invalid appointment status: %s", a.Status)
	}
	if a.PatientID != nil {
		exists, err := s.patients.Exists(ctx, *a.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Patient not found")
		}
	}
	if a.DoctorID != nil {
		exists, err := s.doctors.Exists(ctx, *a.DoctorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Doctor not found")
		}
	}
	if a.NurseID != nil {
		exists, err := s.nurses.Exists(ctx, *a.NurseID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Nurse not found")
		}
	}
	return nil
}
