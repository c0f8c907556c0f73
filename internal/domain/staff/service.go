package staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/facility"
	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	doctors     DoctorRepository
	nurses      NurseRepository
	affiliation *facility.Affiliation
}

func NewService(doctors DoctorRepository, nurses NurseRepository, affiliation *facility.Affiliation) *Service {
	return &Service{doctors: doctors, nurses: nurses, affiliation: affiliation}
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, d.WardID, d.HospitalID); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Doctor ID cannot be null")
	}
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) ListDoctorsByWard(ctx context.Context, wardID uuid.UUID) ([]*Doctor, error) {
	if wardID == uuid.Nil {
		return nil, apperr.Required("Ward ID cannot be null")
	}
	return s.doctors.ListByWard(ctx, wardID)
}

func (s *Service) ListDoctorsByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Doctor, error) {
	if hospitalID == uuid.Nil {
		return nil, apperr.Required("Hospital ID cannot be null")
	}
	return s.doctors.ListByHospital(ctx, hospitalID)
}

func (s *Service) ListDoctorsBySpeciality(ctx context.Context, speciality DoctorSpeciality) ([]*Doctor, error) {
	if !ValidDoctorSpecialities[speciality] {
		return nil, apperr.Validation("invalid doctor speciality: %s", speciality)
	}
	return s.doctors.ListBySpeciality(ctx, speciality)
}

// UpdateDoctor is a full replace: ward and hospital references are overwritten
// with the incoming values, nil included.
func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if d.ID == uuid.Nil {
		return apperr.Required("Doctor ID cannot be null")
	}
	exists, err := s.doctors.Exists(ctx, d.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Doctor not found")
	}
	if err := validateDoctor(d); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, d.WardID, d.HospitalID); err != nil {
		return err
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Doctor ID cannot be null")
	}
	exists, err := s.doctors.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Doctor not found")
	}
	return s.doctors.Delete(ctx, id)
}

func validateDoctor(d *Doctor) error {
	if d.Name == "" {
		return apperr.Validation("Doctor name is required")
	}
	if d.Speciality == "" {
		return apperr.Validation("Speciality is required")
	}
	if !ValidDoctorSpecialities[d.Speciality] {
		return apperr.Validation("invalid doctor speciality: %s", d.Speciality)
	}
	return nil
}

// -- Nurse --

func (s *Service) CreateNurse(ctx context.Context, n *Nurse) error {
	if err := validateNurse(n); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, n.WardID, n.HospitalID); err != nil {
		return err
	}
	return s.nurses.Create(ctx, n)
}

func (s *Service) GetNurse(ctx context.Context, id uuid.UUID) (*Nurse, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Nurse ID cannot be null")
	}
	return s.nurses.GetByID(ctx, id)
}

func (s *Service) ListNurses(ctx context.Context) ([]*Nurse, error) {
	return s.nurses.List(ctx)
}

func (s *Service) ListNursesByWard(ctx context.Context, wardID uuid.UUID) ([]*Nurse, error) {
	if wardID == uuid.Nil {
		return nil, apperr.Required("Ward ID cannot be null")
	}
	return s.nurses.ListByWard(ctx, wardID)
}

func (s *Service) ListNursesByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Nurse, error) {
	if hospitalID == uuid.Nil {
		return nil, apperr.Required("Hospital ID cannot be null")
	}
	return s.nurses.ListByHospital(ctx, hospitalID)
}

func (s *Service) ListNursesBySpeciality(ctx context.Context, speciality NurseSpeciality) ([]*Nurse, error) {
	if !ValidNurseSpecialities[speciality] {
		return nil, apperr.Validation("invalid nurse speciality: %s", speciality)
	}
	return s.nurses.ListBySpeciality(ctx, speciality)
}

func (s *Service) UpdateNurse(ctx context.Context, n *Nurse) error {
	if n.ID == uuid.Nil {
		return apperr.Required("Nurse ID cannot be null")
	}
	exists, err := s.nurses.Exists(ctx, n.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Nurse not found")
	}
	if err := validateNurse(n); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, n.WardID, n.HospitalID); err != nil {
		return err
	}
	return s.nurses.Update(ctx, n)
}

func (s *Service) DeleteNurse(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Nurse ID cannot be null")
	}
	exists, err := s.nurses.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Nurse not found")
	}
	return s.nurses.Delete(ctx, id)
}

func validateNurse(n *Nurse) error {
	if n.Name == "" {
		return apperr.Validation("Nurse name is required")
	}
	if n.Speciality == "" {
		return apperr.Validation("Speciality is required")
	}
	if !ValidNurseSpecialities[n.Speciality] {
		return apperr.Validation("invalid nurse speciality: %s", n.Speciality)
	}
	return nil
}
