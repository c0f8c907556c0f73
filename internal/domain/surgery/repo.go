package surgery

import (
	"context"

	"github.com/google/uuid"
)

type SurgeryRepository interface {
	Create(ctx context.Context, s *Surgery) error
	GetByID(ctx context.Context, id uuid.UUID) (*Surgery, error)
	Update(ctx context.Context, s *Surgery) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Surgery, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Surgery, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Surgery, error)
}

// Existence checkers for surgery references. The patient and staff
// repositories satisfy them.
type PatientChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type DoctorChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
