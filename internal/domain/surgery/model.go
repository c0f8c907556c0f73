package surgery

import (
	"time"

	"github.com/google/uuid"
)

// Surgery maps to the surgeries table.
type Surgery struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Description string     `db:"description" json:"description"`
	SurgeryDate time.Time  `db:"surgery_date" json:"surgery_date"`
	PatientID   *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	DoctorID    *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
