package clinical

import (
	"context"

	"github.com/google/uuid"
)

type DiagnosisRepository interface {
	Create(ctx context.Context, d *Diagnosis) error
	GetByID(ctx context.Context, id uuid.UUID) (*Diagnosis, error)
	Update(ctx context.Context, d *Diagnosis) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Diagnosis, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Diagnosis, error)
}

// DoctorChecker verifies that a referenced doctor exists. The staff
// repository satisfies it.
type DoctorChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
