package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/clinical"
)

// Patient maps to the patients table and owns the patient_diagnosis join.
// DiagnosisIDs is the write-side payload; Diagnoses is the resolved read
// side, never persisted directly.
type Patient struct {
	ID           uuid.UUID             `db:"id" json:"id"`
	Name         string                `db:"name" json:"name"`
	DateOfBirth  time.Time             `db:"date_of_birth" json:"date_of_birth"`
	Gender       string                `db:"gender" json:"gender"`
	WardID       *uuid.UUID            `db:"ward_id" json:"ward_id,omitempty"`
	HospitalID   *uuid.UUID            `db:"hospital_id" json:"hospital_id,omitempty"`
	DiagnosisIDs []uuid.UUID           `db:"-" json:"diagnosis_ids,omitempty"`
	Diagnoses    []*clinical.Diagnosis `db:"-" json:"diagnoses,omitempty"`
	CreatedAt    time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time             `db:"updated_at" json:"updated_at"`
}
