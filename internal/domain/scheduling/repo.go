package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	ListByNurse(ctx context.Context, nurseID uuid.UUID) ([]*Appointment, error)
	ListByStatus(ctx context.Context, status AppointmentStatus) ([]*Appointment, error)
	ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error)
}

// Existence checkers for participant references. The patient and staff
// repositories satisfy them.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type DoctorChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type NurseChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
