package clinical

import (
	"time"

	"github.com/google/uuid"
)

// Diagnosis maps to the diagnoses table. The doctor reference is a nullable
// foreign key; the patient side lives in the patient_diagnosis join table
// owned by the patient aggregate.
type Diagnosis struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Description   string     `db:"description" json:"description"`
	DiagnosisDate time.Time  `db:"diagnosis_date" json:"diagnosis_date"`
	DoctorID      *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
