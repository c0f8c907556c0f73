package surgery

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	surgeries SurgeryRepository
	patients  PatientChecker
	doctors   DoctorChecker
}

func NewService(surgeries SurgeryRepository, patients PatientChecker, doctors DoctorChecker) *Service {
	return &Service{surgeries: surgeries, patients: patients, doctors: doctors}
}

func (s *Service) CreateSurgery(ctx context.Context, sg *Surgery) error {
	if err := s.validate(ctx, sg); err != nil {
		return err
	}
	return s.surgeries.Create(ctx, sg)
}

func (s *Service) GetSurgery(ctx context.Context, id uuid.UUID) (*Surgery, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Surgery ID cannot be null")
	}
	return s.surgeries.GetByID(ctx, id)
}

func (s *Service) ListSurgeries(ctx context.Context) ([]*Surgery, error) {
	return s.surgeries.List(ctx)
}

func (s *Service) ListSurgeriesByPatient(ctx context.Context, patientID uuid.UUID) ([]*Surgery, error) {
	if patientID == uuid.Nil {
		return nil, apperr.Required("Patient ID cannot be null")
	}
	return s.surgeries.ListByPatient(ctx, patientID)
}

func (s *Service) ListSurgeriesByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Surgery, error) {
	if doctorID == uuid.Nil {
		return nil, apperr.Required("Doctor ID cannot be null")
	}
	return s.surgeries.ListByDoctor(ctx, doctorID)
}

func (s *Service) UpdateSurgery(ctx context.Context, sg *Surgery) error {
	if sg.ID == uuid.Nil {
		return apperr.Required("Surgery ID cannot be null")
	}
	exists, err := s.surgeries.Exists(ctx, sg.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Surgery not found")
	}
	if err := s.validate(ctx, sg); err != nil {
		return err
	}
	return s.surgeries.Update(ctx, sg)
}

func (s *Service) DeleteSurgery(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Surgery ID cannot be null")
	}
	exists, err := s.surgeries.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Surgery not found")
	}
	return s.surgeries.Delete(ctx, id)
}

func (s *Service) validate(ctx context.Context, sg *Surgery) error {
	if sg.Description == "" {
		return apperr.Validation("Surgery description is required")
	}
	if sg.PatientID != nil {
		exists, err := s.patients.Exists(ctx, *sg.PatientID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Patient not found")
		}
	}
	if sg.DoctorID != nil {
		exists, err := s.doctors.Exists(ctx, *sg.DoctorID)
		if err != nil {
			return err
		}
		if !exists {
			return apperr.NotFound("Doctor not found")
		}
	}
	return nil
}
