package staff

import (
	"time"

	"github.com/google/uuid"
)

type DoctorSpeciality string

const (
	DoctorCardiology      DoctorSpeciality = "CARDIOLOGY"
	DoctorNeurology       DoctorSpeciality = "NEUROLOGY"
	DoctorGeneralMedicine DoctorSpeciality = "GENERAL_MEDICINE"
	DoctorSurgery         DoctorSpeciality = "SURGERY"
	DoctorOncology        DoctorSpeciality = "ONCOLOGY"
	DoctorPediatrics      DoctorSpeciality = "PEDIATRICS"
)

var ValidDoctorSpecialities = map[DoctorSpeciality]bool{
	DoctorCardiology: true, DoctorNeurology: true, DoctorGeneralMedicine: true,
	DoctorSurgery: true, DoctorOncology: true, DoctorPediatrics: true,
}

type NurseSpeciality string

const (
	NurseGeneralCare   NurseSpeciality = "GENERAL_CARE"
	NurseIntensiveCare NurseSpeciality = "INTENSIVE_CARE"
	NurseSurgical      NurseSpeciality = "SURGICAL"
	NursePediatric     NurseSpeciality = "PEDIATRIC"
	NurseOncology      NurseSpeciality = "ONCOLOGY"
	NurseEmergency     NurseSpeciality = "EMERGENCY"
)

var ValidNurseSpecialities = map[NurseSpeciality]bool{
	NurseGeneralCare: true, NurseIntensiveCare: true, NurseSurgical: true,
	NursePediatric: true, NurseOncology: true, NurseEmergency: true,
}

// Doctor maps to the doctors table. Ward and hospital references are
// single-valued nullable foreign keys, never sets.
type Doctor struct {
	ID         uuid.UUID        `db:"id" json:"id"`
	Name       string           `db:"name" json:"name"`
	Speciality DoctorSpeciality `db:"speciality" json:"speciality"`
	WardID     *uuid.UUID       `db:"ward_id" json:"ward_id,omitempty"`
	HospitalID *uuid.UUID       `db:"hospital_id" json:"hospital_id,omitempty"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}

// Nurse maps to the nurses table.
type Nurse struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Speciality NurseSpeciality `db:"speciality" json:"speciality"`
	WardID     *uuid.UUID      `db:"ward_id" json:"ward_id,omitempty"`
	HospitalID *uuid.UUID      `db:"hospital_id" json:"hospital_id,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}
