package medication

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	medications   MedicationRepository
	prescriptions PrescriptionRepository
	patients      PatientChecker
	doctors       DoctorChecker
}

func NewService(medications MedicationRepository, prescriptions PrescriptionRepository, patients PatientChecker, doctors DoctorChecker) *Service {
	return &Service{medications: medications, prescriptions: prescriptions, patients: patients, doctors: doctors}
}

// -- Medication --

func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if m.Name == "" {
		return apperr.Validation("Medication name is required")
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) GetMedication(ctx context.Context, id uuid.UUID) (*Medication, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Medication ID cannot be null")
	}
	return s.medications.GetByID(ctx, id)
}

func (s *Service) ListMedications(ctx context.Context) ([]*Medication, error) {
	return s.medications.List(ctx)
}

func (s *Service) UpdateMedication(ctx context.Context, m *Medication) error {
	if m.ID == uuid.Nil {
		return apperr.Required("Medication ID cannot be null")
	}
	exists, err := s.medications.Exists(ctx, m.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Medication not found")
	}
	if m.Name == "" {
		return apperr.Validation("Medication name is required")
	}
	return s.medications.Update(ctx, m)
}

func (s *Service) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Medication ID cannot be null")
	}
	exists, err := s.medications.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Medication not found")
	}
	return s.medications.Delete(ctx, id)
}

// -- Prescription --

func (s *Service) CreatePrescription(ctx context.Context, p *Prescription) error {
	if err := s.validatePrescription(ctx, p); err != nil {
		return err
	}
	return s.prescriptions.Create(ctx, p)
}

func (s *Service) GetPrescription(ctx context.Context, id uuid.UUID) (*Prescription, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Prescription ID cannot be null")
	}
	return s.prescriptions.GetByID(ctx, id)
}

func (s *Service) ListPrescriptions(ctx context.Context) ([]*Prescription, error) {
	return s.prescriptions.List(ctx)
}

func (s *Service) ListPrescriptionsByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	if patientID == uuid.Nil {
		return nil, apperr.Required("Patient ID cannot be null")
	}
	return s.prescriptions.ListByPatient(ctx, patientID)
}

func (s *Service) ListPrescriptionsByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Prescription, error) {
	if doctorID == uuid.Nil {
		return nil, apperr.Required("Doctor ID cannot be null")
	}
	return s.prescriptions.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListPrescriptionsByMedication(ctx context.Context, medicationID uuid.UUID) ([]*Prescription, error) {
	if medicationID == uuid.Nil {
		return nil, apperr.Required("Medication ID cannot be null")
	}
	return s.prescriptions.ListByMedication(ctx, medicationID)
}

func (s *Service) UpdatePrescription(ctx context.Context, p *Prescription) error {
	if p.ID == uuid.Nil {
		return apperr.Required("Prescription ID cannot be null")
	}
	exists, err := s.prescriptions.Exists(ctx, p.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Prescription not found")
	}
	if err := s.validatePrescription(ctx, p); err != nil {
		return err
	}
	return s.prescriptions.Update(ctx, p)
}

func (s *Service) DeletePrescription(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Prescription ID cannot be null")
	}
	exists, err := s.prescriptions.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Prescription not found")
	}
	return s.prescriptions.Delete(ctx, id)
}

func (s *Service) validatePrescription(ctx context.Context, p *Prescription) error {
	if !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return apperr.Validation("end date must not precede start date")
	}
	if p.PatientID != nil {
		exists, err := s.patients.Exists(ctx, *p.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Patient not found")
		}
	}
	if p.DoctorID != nil {
		exists, err := s.doctors.Exists(ctx, *p.DoctorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Doctor not found")
		}
	}
	if p.MedicationID != nil {
		exists, err := s.medications.Exists(ctx, *p.MedicationID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Medication not found")
		}
	}
	return nil
}
