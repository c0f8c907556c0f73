package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/clinical"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Patient, error)
	ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Patient, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Patient, error)
	// ReplaceDiagnoses swaps the patient's entire diagnosis set in the join
	// table. Callers run it inside a transaction together with the row write.
	ReplaceDiagnoses(ctx context.Context, patientID uuid.UUID, diagnosisIDs []uuid.UUID) error
}

// DiagnosisResolver resolves diagnosis references during patient writes.
// The clinical repository satisfies it.
type DiagnosisResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*clinical.Diagnosis, error)
}
