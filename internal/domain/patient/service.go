package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/clinical"
	"github.com/careward/careward/internal/domain/facility"
	"github.com/careward/careward/internal/platform/db"
	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	patients    PatientRepository
	diagnoses   DiagnosisResolver
	affiliation *facility.Affiliation
	runTx       db.TxRunner
}

func NewService(patients PatientRepository, diagnoses DiagnosisResolver, affiliation *facility.Affiliation, runTx db.TxRunner) *Service {
	return &Service{patients: patients, diagnoses: diagnoses, affiliation: affiliation, runTx: runTx}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, p.WardID, p.HospitalID); err != nil {
		return err
	}
	resolved, err := s.resolveDiagnoses(ctx, p.DiagnosisIDs)
	if err != nil {
		return err
	}
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.patients.Create(ctx, p); err != nil {
			return err
		}
		if len(p.DiagnosisIDs) > 0 {
			return s.patients.ReplaceDiagnoses(ctx, p.ID, p.DiagnosisIDs)
		}
		return nil
	})
	if err != nil {
		return err
	}
	p.Diagnoses = resolved
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Patient ID cannot be null")
	}
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) ListPatientsByWard(ctx context.Context, wardID uuid.UUID) ([]*Patient, error) {
	if wardID == uuid.Nil {
		return nil, apperr.Required("Ward ID cannot be null")
	}
	return s.patients.ListByWard(ctx, wardID)
}

func (s *Service) ListPatientsByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Patient, error) {
	if hospitalID == uuid.Nil {
		return nil, apperr.Required("Hospital ID cannot be null")
	}
	return s.patients.ListByHospital(ctx, hospitalID)
}

// UpdatePatient is a full replace for scalar fields and ward/hospital
// references. An empty or absent diagnosis_ids leaves the stored diagnosis
// set untouched; a non-empty one replaces it atomically.
func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if p.ID == uuid.Nil {
		return apperr.Required("Patient ID cannot be null")
	}
	existing, err := s.patients.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := validatePatient(p); err != nil {
		return err
	}
	if _, _, err := s.affiliation.ValidateAssignment(ctx, p.WardID, p.HospitalID); err != nil {
		return err
	}
	resolved, err := s.resolveDiagnoses(ctx, p.DiagnosisIDs)
	if err != nil {
		return err
	}
	err = s.runTx(ctx, func(ctx context.Context) error {
		if err := s.patients.Update(ctx, p); err != nil {
			return err
		}
		if len(p.DiagnosisIDs) > 0 {
			return s.patients.ReplaceDiagnoses(ctx, p.ID, p.DiagnosisIDs)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(p.DiagnosisIDs) > 0 {
		p.Diagnoses = resolved
	} else {
		p.Diagnoses = existing.Diagnoses
		p.DiagnosisIDs = existing.DiagnosisIDs
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Patient ID cannot be null")
	}
	exists, err := s.patients.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Patient not found")
	}
	return s.patients.Delete(ctx, id)
}

// resolveDiagnoses is all-or-nothing: the first missing id aborts the write
// before anything is saved.
func (s *Service) resolveDiagnoses(ctx context.Context, ids []uuid.UUID) ([]*clinical.Diagnosis, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	resolved := make([]*clinical.Diagnosis, 0, len(ids))
	for _, id := range ids {
		d, err := s.diagnoses.GetByID(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.NotFound("Diagnosis not found: %s", id)
			}
			return nil, err
		}
		resolved = append(resolved, d)
	}
	return resolved, nil
}

func validatePatient(p *Patient) error {
	if p.Name == "" {
		return apperr.Validation("Patient name is required")
	}
	return nil
}
