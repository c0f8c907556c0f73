package staff

import (
	"context"

	"github.com/google/uuid"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Doctor, error)
	ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Doctor, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Doctor, error)
	ListBySpeciality(ctx context.Context, speciality DoctorSpeciality) ([]*Doctor, error)
}

type NurseRepository interface {
	Create(ctx context.Context, n *Nurse) error
	GetByID(ctx context.Context, id uuid.UUID) (*Nurse, error)
	Update(ctx context.Context, n *Nurse) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Nurse, error)
	ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Nurse, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Nurse, error)
	ListBySpeciality(ctx context.Context, speciality NurseSpeciality) ([]*Nurse, error)
}
