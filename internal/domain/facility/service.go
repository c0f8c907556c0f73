package facility

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/platform/db"
	"github.com/careward/careward/pkg/apperr"
)

type Service struct {
	hospitals HospitalRepository
	wards     WardRepository
	runTx     db.TxRunner
}

func NewService(hospitals HospitalRepository, wards WardRepository, runTx db.TxRunner) *Service {
	return &Service{hospitals: hospitals, wards: wards, runTx: runTx}
}

// -- Hospital --

func (s *Service) CreateHospital(ctx context.Context, h *Hospital) error {
	if h.Name == "" {
		return apperr.Validation("Hospital name is required")
	}
	resolved, err := s.resolveWards(ctx, h.WardIDs)
	if err != nil {
		return err
	}
	if err := s.runTx(ctx, func(ctx context.Context) error {
		if err := s.hospitals.Create(ctx, h); err != nil {
			return err
		}
		if len(h.WardIDs) > 0 {
			return s.hospitals.ReplaceWards(ctx, h.ID, h.WardIDs)
		}
		return nil
	}); err != nil {
		return err
	}
	h.Wards = resolved
	return nil
}

func (s *Service) GetHospital(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Hospital ID cannot be null")
	}
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context) ([]*Hospital, error) {
	return s.hospitals.List(ctx)
}

func (s *Service) ListHospitalsByCity(ctx context.Context, city string) ([]*Hospital, error) {
	return s.hospitals.ListByCity(ctx, city)
}

// UpdateHospital is a full replace of the hospital's own fields. A non-empty
// ward_ids set additionally replaces the whole ward association; an empty or
// absent set leaves the existing association untouched.
func (s *Service) UpdateHospital(ctx context.Context, h *Hospital) error {
	if h.ID == uuid.Nil {
		return apperr.Required("Hospital ID cannot be null")
	}
	if h.Name == "" {
		return apperr.Validation("Hospital name is required")
	}
	existing, err := s.hospitals.GetByID(ctx, h.ID)
	if err != nil {
		return err
	}
	resolved, err := s.resolveWards(ctx, h.WardIDs)
	if err != nil {
		return err
	}
	if err := s.runTx(ctx, func(ctx context.Context) error {
		if err := s.hospitals.Update(ctx, h); err != nil {
			return err
		}
		if len(h.WardIDs) > 0 {
			return s.hospitals.ReplaceWards(ctx, h.ID, h.WardIDs)
		}
		return nil
	}); err != nil {
		return err
	}
	if len(h.WardIDs) > 0 {
		h.Wards = resolved
	} else {
		h.Wards = existing.Wards
	}
	return nil
}

func (s *Service) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Hospital ID cannot be null")
	}
	exists, err := s.hospitals.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Hospital not found")
	}
	return s.hospitals.Delete(ctx, id)
}

// resolveWards looks up every id before anything is written. The first miss
// aborts the whole operation with the offending id in the message.
func (s *Service) resolveWards(ctx context.Context, wardIDs []uuid.UUID) ([]*Ward, error) {
	if len(wardIDs) == 0 {
		return nil, nil
	}
	resolved := make([]*Ward, 0, len(wardIDs))
	for _, id := range wardIDs {
		w, err := s.wards.GetByID(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				return nil, apperr.NotFound("Ward not found: %s", id)
			}
			return nil, err
		}
		resolved = append(resolved, w)
	}
	return resolved, nil
}

// -- Ward --

func (s *Service) CreateWard(ctx context.Context, w *Ward) error {
	if err := validateWard(w); err != nil {
		return err
	}
	return s.wards.Create(ctx, w)
}

func (s *Service) GetWard(ctx context.Context, id uuid.UUID) (*Ward, error) {
	if id == uuid.Nil {
		return nil, apperr.Required("Ward ID cannot be null")
	}
	return s.wards.GetByID(ctx, id)
}

func (s *Service) ListWards(ctx context.Context) ([]*Ward, error) {
	return s.wards.List(ctx)
}

func (s *Service) ListWardsByType(ctx context.Context, wardType WardType) ([]*Ward, error) {
	if !ValidWardTypes[wardType] {
		return nil, apperr.Validation("invalid ward type: %s", wardType)
	}
	return s.wards.ListByType(ctx, wardType)
}

func (s *Service) ListWardsByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Ward, error) {
	if hospitalID == uuid.Nil {
		return nil, apperr.Required("Hospital ID cannot be null")
	}
	return s.wards.ListByHospital(ctx, hospitalID)
}

func (s *Service) UpdateWard(ctx context.Context, w *Ward) error {
	if w.ID == uuid.Nil {
		return apperr.Required("Ward ID cannot be null")
	}
	exists, err := s.wards.Exists(ctx, w.ID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Ward not found")
	}
	if err := validateWard(w); err != nil {
		return err
	}
	return s.wards.Update(ctx, w)
}

func (s *Service) DeleteWard(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return apperr.Required("Ward ID cannot be null")
	}
	exists, err := s.wards.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Ward not found")
	}
	return s.wards.Delete(ctx, id)
}

func validateWard(w *Ward) error {
	if w.Type == "" {
		return apperr.Validation("Ward type is required")
	}
	if !ValidWardTypes[w.Type] {
		return apperr.Validation("invalid ward type: %s", w.Type)
	}
	if w.MaxCapacity < 0 {
		return apperr.Validation("Max capacity cannot be negative")
	}
	return nil
}
