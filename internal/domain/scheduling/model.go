package scheduling

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "SCHEDULED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
)

var ValidStatuses = map[AppointmentStatus]bool{
	StatusScheduled: true, StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true,
}

// Appointment maps to the appointments table. Participant references are
// nullable foreign keys checked for existence at the service boundary.
type Appointment struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	Date      time.Time         `db:"appointment_date" json:"appointment_date"`
	Reason    string            `db:"reason" json:"reason"`
	Status    AppointmentStatus `db:"status" json:"status"`
	PatientID *uuid.UUID        `db:"patient_id" json:"patient_id,omitempty"`
	DoctorID  *uuid.UUID        `db:"doctor_id" json:"doctor_id,omitempty"`
	NurseID   *uuid.UUID        `db:"nurse_id" json:"nurse_id,omitempty"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}
