package clinical

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	diagnoses DiagnosisRepository
	doctors   DoctorChecker
}

func NewService(diagnoses DiagnosisRepository, doctors DoctorChecker) *Service {
	return &Service{diagnoses: diagnoses, doctors: doctors}
}

func (s *Service) CreateDiagnosis(ctx context.Context, d *Diagnosis) error {
	if err := s.validate(ctx, d); err != nil {
		return err
	}
	return s.diagnoses.Create(ctx, d)
}

func (s *Service) GetDiagnosis(ctx context.Context, id uuid.UUID) (*Diagnosis, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Diagnosis ID cannot be null")
	}
	return s.diagnoses.GetByID(ctx, id)
}

func (s *Service) ListDiagnoses(ctx context.Context) ([]*Diagnosis, error) {
	return s.diagnoses.List(ctx)
}

func (s *Service) ListDiagnosesByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Diagnosis, error) {
	if doctorID == uuid.Nil {
		return nil, apperr.Required("Doctor ID cannot be null")
	}
	return s.diagnoses.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdateDiagnosis(ctx context.Context, d *Diagnosis) error {
	if d.ID == uuid.Nil {
		return apperr.Required("Diagnosis ID cannot be null")
	}
	exists, err := s.diagnoses.Exists(ctx, d.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Diagnosis not found")
	}
	if err := s.validate(ctx, d); err != nil {
		return err
	}
	return s.diagnoses.Update(ctx, d)
}

func (s *Service) DeleteDiagnosis(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Diagnosis ID cannot be null")
	}
	exists, err := s.diagnoses.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Diagnosis not found")
	}
	return s.diagnoses.Delete(ctx, id)
}

func (s *Service) validate(ctx context.Context, d *Diagnosis) error {
	if d.Description == "" {
		return apperr.Validation("Diagnosis description is required")
	}
	if d.DoctorID != nil {
		exists, err := s.doctors.Exists(ctx, *d.DoctorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Doctor not found")
		}
	}
	return nil
}
