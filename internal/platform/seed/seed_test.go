package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/facility"
	"github.com/careward/careward/pkg/apperr"
)

type memHospitalRepo struct {
	hospitals map[uuid.UUID]*facility.Hospital
	assoc     map[uuid.UUID][]uuid.UUID
	creates   int
}

func (m *memHospitalRepo) Create(_ context.Context, h *facility.Hospital) error {
	h.ID = uuid.New()
	m.hospitals[h.ID] = h
	m.creates++
	return nil
}

func (m *memHospitalRepo) GetByID(_ context.Context, id uuid.UUID) (*facility.Hospital, error) {
	h, ok := m.hospitals[id]
	if !ok {
		return nil, apperr.NotFound("Hospital not found")
	}
	return h, nil
}

func (m *memHospitalRepo) Update(_ context.Context, h *facility.Hospital) error {
	m.hospitals[h.ID] = h
	return nil
}

func (m *memHospitalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.hospitals, id)
	return nil
}

func (m *memHospitalRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.hospitals[id]
	return ok, nil
}

func (m *memHospitalRepo) List(_ context.Context) ([]*facility.Hospital, error) {
	var result []*facility.Hospital
	for _, h := range m.hospitals {
		result = append(result, h)
	}
	return result, nil
}

func (m *memHospitalRepo) ListByCity(_ context.Context, city string) ([]*facility.Hospital, error) {
	var result []*facility.Hospital
	for _, h := range m.hospitals {
		if h.City == city {
			result = append(result, h)
		}
	}
	return result, nil
}

func (m *memHospitalRepo) ReplaceWards(_ context.Context, hospitalID uuid.UUID, wardIDs []uuid.UUID) error {
	m.assoc[hospitalID] = append([]uuid.UUID(nil), wardIDs...)
	return nil
}

type memWardRepo struct {
	wards map[uuid.UUID]*facility.Ward
}

func (m *memWardRepo) Create(_ context.Context, w *facility.Ward) error {
	w.ID = uuid.New()
	m.wards[w.ID] = w
	return nil
}

func (m *memWardRepo) GetByID(_ context.Context, id uuid.UUID) (*facility.Ward, error) {
	w, ok := m.wards[id]
	if !ok {
		return nil, apperr.NotFound("Ward not found")
	}
	return w, nil
}

func (m *memWardRepo) Update(_ context.Context, w *facility.Ward) error {
	m.wards[w.ID] = w
	return nil
}

func (m *memWardRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.wards, id)
	return nil
}

func (m *memWardRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.wards[id]
	return ok, nil
}

func (m *memWardRepo) List(_ context.Context) ([]*facility.Ward, error) {
	var result []*facility.Ward
	for _, w := range m.wards {
		result = append(result, w)
	}
	return result, nil
}

func (m *memWardRepo) ListByType(_ context.Context, wardType facility.WardType) ([]*facility.Ward, error) {
	var result []*facility.Ward
	for _, w := range m.wards {
		if w.Type == wardType {
			result = append(result, w)
		}
	}
	return result, nil
}

func (m *memWardRepo) ListByHospital(_ context.Context, _ uuid.UUID) ([]*facility.Ward, error) {
	return nil, nil
}

func passRunner(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newSeedFixture() (*facility.Service, *memHospitalRepo, *memWardRepo) {
	hospitals := &memHospitalRepo{
		hospitals: make(map[uuid.UUID]*facility.Hospital),
		assoc:     make(map[uuid.UUID][]uuid.UUID),
	}
	wards := &memWardRepo{wards: make(map[uuid.UUID]*facility.Ward)}
	return facility.NewService(hospitals, wards, passRunner), hospitals, wards
}

func TestRun_SeedsHospitalsAndWards(t *testing.T) {
	svc, hospitals, wards := newSeedFixture()
	if err := Run(context.Background(), svc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hospitals.hospitals) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(hospitals.hospitals))
	}
	if len(wards.wards) != 3 {
		t.Fatalf("expected 3 wards, got %d", len(wards.wards))
	}

	var rigs *facility.Hospital
	for _, h := range hospitals.hospitals {
		if h.Name == "Rigshospitalet" {
			rigs = h
		}
	}
	if rigs == nil {
		t.Fatal("expected Rigshospitalet seeded")
	}
	if rigs.City != "København" || rigs.Address != "Blegdamsvej 9" {
		t.Errorf("unexpected hospital fields: %s / %s", rigs.Address, rigs.City)
	}
	if len(hospitals.assoc[rigs.ID]) != 2 {
		t.Errorf("expected 2 wards linked to Rigshospitalet, got %d", len(hospitals.assoc[rigs.ID]))
	}
}

func TestRun_Idempotent(t *testing.T) {
	svc, hospitals, _ := newSeedFixture()
	if err := Run(context.Background(), svc); err != nil {
		t.Fatalf("first run: %v", err)
	}
	before := hospitals.creates
	if err := Run(context.Background(), svc); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if hospitals.creates != before {
		t.Error("expected second run to be a no-op")
	}
}
