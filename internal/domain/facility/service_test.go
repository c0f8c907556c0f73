package facility

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

// -- Mock Repositories --

// mockStore backs both repositories so the association stays consistent from
// either direction, mirroring the hospital_ward table.
type mockStore struct {
	hospitals map[uuid.UUID]*Hospital
	wards     map[uuid.UUID]*Ward
	assoc     map[uuid.UUID]map[uuid.UUID]bool // hospital id -> ward id set
	deletes   int
}

func newMockStore() *mockStore {
	return &mockStore{
		hospitals: make(map[uuid.UUID]*Hospital),
		wards:     make(map[uuid.UUID]*Ward),
		assoc:     make(map[uuid.UUID]map[uuid.UUID]bool),
	}
}

func (s *mockStore) addWard(wardType WardType, capacity int) *Ward {
	w := &Ward{ID: uuid.New(), Type: wardType, MaxCapacity: capacity}
	s.wards[w.ID] = w
	return w
}

type mockHospitalRepo struct{ s *mockStore }

func (m *mockHospitalRepo) Create(_ context.Context, h *Hospital) error {
	h.ID = uuid.New()
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	m.s.hospitals[h.ID] = h
	return nil
}

func (m *mockHospitalRepo) GetByID(_ context.Context, id uuid.UUID) (*Hospital, error) {
	h, ok := m.s.hospitals[id]
	if !ok {
		return nil, apperr.NotFound("Hospital not found")
	}
	out := *h
	out.Wards = nil
	for wid := range m.s.assoc[id] {
		w := *m.s.wards[wid]
		w.Hospitals = nil
		out.Wards = append(out.Wards, &w)
	}
	return &out, nil
}

func (m *mockHospitalRepo) Update(_ context.Context, h *Hospital) error {
	stored, ok := m.s.hospitals[h.ID]
	if !ok {
		return apperr.NotFound("Hospital not found")
	}
	h.CreatedAt = stored.CreatedAt
	h.UpdatedAt = time.Now()
	m.s.hospitals[h.ID] = h
	return nil
}

func (m *mockHospitalRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.s.deletes++
	delete(m.s.hospitals, id)
	delete(m.s.assoc, id)
	return nil
}

func (m *mockHospitalRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.s.hospitals[id]
	return ok, nil
}

func (m *mockHospitalRepo) List(ctx context.Context) ([]*Hospital, error) {
	var result []*Hospital
	for id := range m.s.hospitals {
		h, _ := m.GetByID(ctx, id)
		result = append(result, h)
	}
	return result, nil
}

func (m *mockHospitalRepo) ListByCity(ctx context.Context, city string) ([]*Hospital, error) {
	var result []*Hospital
	for id, h := range m.s.hospitals {
		if strings.EqualFold(h.City, city) {
			loaded, _ := m.GetByID(ctx, id)
			result = append(result, loaded)
		}
	}
	return result, nil
}

func (m *mockHospitalRepo) ReplaceWards(_ context.Context, hospitalID uuid.UUID, wardIDs []uuid.UUID) error {
	set := make(map[uuid.UUID]bool, len(wardIDs))
	for _, wid := range wardIDs {
		set[wid] = true
	}
	m.s.assoc[hospitalID] = set
	return nil
}

type mockWardRepo struct{ s *mockStore }

func (m *mockWardRepo) Create(_ context.Context, w *Ward) error {
	w.ID = uuid.New()
	w.CreatedAt = time.Now()
	w.UpdatedAt = w.CreatedAt
	m.s.wards[w.ID] = w
	return nil
}

func (m *mockWardRepo) GetByID(_ context.Context, id uuid.UUID) (*Ward, error) {
	w, ok := m.s.wards[id]
	if !ok {
		return nil, apperr.NotFound("Ward not found")
	}
	out := *w
	out.Hospitals = nil
	for hid, set := range m.s.assoc {
		if set[id] {
			h := *m.s.hospitals[hid]
			h.Wards = nil
			out.Hospitals = append(out.Hospitals, &h)
		}
	}
	return &out, nil
}

func (m *mockWardRepo) Update(_ context.Context, w *Ward) error {
	stored, ok := m.s.wards[w.ID]
	if !ok {
		return apperr.NotFound("Ward not found")
	}
	w.CreatedAt = stored.CreatedAt
	w.UpdatedAt = time.Now()
	m.s.wards[w.ID] = w
	return nil
}

func (m *mockWardRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.s.deletes++
	delete(m.s.wards, id)
	return nil
}

func (m *mockWardRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.s.wards[id]
	return ok, nil
}

func (m *mockWardRepo) List(ctx context.Context) ([]*Ward, error) {
	var result []*Ward
	for id := range m.s.wards {
		w, _ := m.GetByID(ctx, id)
		result = append(result, w)
	}
	return result, nil
}

func (m *mockWardRepo) ListByType(ctx context.Context, wardType WardType) ([]*Ward, error) {
	var result []*Ward
	for id, w := range m.s.wards {
		if w.Type == wardType {
			loaded, _ := m.GetByID(ctx, id)
			result = append(result, loaded)
		}
	}
	return result, nil
}

func (m *mockWardRepo) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Ward, error) {
	var result []*Ward
	for wid := range m.s.assoc[hospitalID] {
		w, _ := m.GetByID(ctx, wid)
		result = append(result, w)
	}
	return result, nil
}

func passRunner(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *mockStore) {
	s := newMockStore()
	return NewService(&mockHospitalRepo{s: s}, &mockWardRepo{s: s}, passRunner), s
}

// -- Hospital Tests --

func TestCreateHospitalWithWards(t *testing.T) {
	svc, s := newTestService()
	w1 := s.addWard(WardCardiology, 30)
	w2 := s.addWard(WardNeurology, 25)

	h := &Hospital{Name: "Rigshospitalet", Address: "Blegdamsvej 9", City: "København",
		WardIDs: []uuid.UUID{w1.ID, w2.ID}}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
	if len(h.Wards) != 2 {
		t.Errorf("expected 2 wards attached, got %d", len(h.Wards))
	}
	if len(s.assoc[h.ID]) != 2 {
		t.Errorf("expected 2 association rows, got %d", len(s.assoc[h.ID]))
	}
}

func TestCreateHospitalUnknownWard_NothingSaved(t *testing.T) {
	svc, s := newTestService()
	w1 := s.addWard(WardCardiology, 30)
	missing := uuid.New()

	h := &Hospital{Name: "Rigshospitalet", WardIDs: []uuid.UUID{w1.ID, missing}}
	err := svc.CreateHospital(context.Background(), h)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Ward not found: "+missing.String()) {
		t.Errorf("expected offending id in message, got %q", err.Error())
	}
	if len(s.hospitals) != 0 {
		t.Error("expected no hospital persisted on resolution failure")
	}
}

func TestCreateHospitalRequiresName(t *testing.T) {
	svc, _ := newTestService()
	err := svc.CreateHospital(context.Background(), &Hospital{})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateHospitalReplacesWardSet(t *testing.T) {
	svc, s := newTestService()
	w1 := s.addWard(WardCardiology, 30)
	w2 := s.addWard(WardNeurology, 25)
	w3 := s.addWard(WardOncology, 10)

	h := &Hospital{Name: "Rigshospitalet", WardIDs: []uuid.UUID{w1.ID, w2.ID}}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("create: %v", err)
	}

	upd := &Hospital{ID: h.ID, Name: "Rigshospitalet", WardIDs: []uuid.UUID{w3.ID}}
	if err := svc.UpdateHospital(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(s.assoc[h.ID]) != 1 || !s.assoc[h.ID][w3.ID] {
		t.Errorf("expected ward set replaced with only %s, got %v", w3.ID, s.assoc[h.ID])
	}

	// Same id set again yields the same final set.
	if err := svc.UpdateHospital(context.Background(), upd); err != nil {
		t.Fatalf("second update: %v", err)
	}
	if len(s.assoc[h.ID]) != 1 || !s.assoc[h.ID][w3.ID] {
		t.Errorf("expected idempotent replacement, got %v", s.assoc[h.ID])
	}
}

func TestUpdateHospitalEmptyWardIDsLeavesAssociation(t *testing.T) {
	svc, s := newTestService()
	w1 := s.addWard(WardCardiology, 30)

	h := &Hospital{Name: "Rigshospitalet", WardIDs: []uuid.UUID{w1.ID}}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("create: %v", err)
	}

	upd := &Hospital{ID: h.ID, Name: "Renamed"}
	if err := svc.UpdateHospital(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(s.assoc[h.ID]) != 1 || !s.assoc[h.ID][w1.ID] {
		t.Errorf("expected association untouched, got %v", s.assoc[h.ID])
	}
	if len(upd.Wards) != 1 {
		t.Errorf("expected existing wards echoed back, got %d", len(upd.Wards))
	}
}

func TestUpdateHospitalUnknownWard_NoPartialReplace(t *testing.T) {
	svc, s := newTestService()
	w1 := s.addWard(WardCardiology, 30)
	w2 := s.addWard(WardNeurology, 25)

	h := &Hospital{Name: "Rigshospitalet", WardIDs: []uuid.UUID{w1.ID}}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("create: %v", err)
	}

	upd := &Hospital{ID: h.ID, Name: "Rigshospitalet", WardIDs: []uuid.UUID{w2.ID, uuid.New()}}
	if err := svc.UpdateHospital(context.Background(), upd); !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if len(s.assoc[h.ID]) != 1 || !s.assoc[h.ID][w1.ID] {
		t.Errorf("expected ward set unchanged after failed resolution, got %v", s.assoc[h.ID])
	}
}

func TestUpdateHospitalNotFound(t *testing.T) {
	svc, _ := newTestService()
	err := svc.UpdateHospital(context.Background(), &Hospital{ID: uuid.New(), Name: "X"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeleteHospitalNotFound_DeleteNeverInvoked(t *testing.T) {
	svc, s := newTestService()
	err := svc.DeleteHospital(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if s.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}

func TestGetHospitalNilID(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.GetHospital(context.Background(), uuid.Nil)
	if err == nil || err.Error() != "Hospital ID cannot be null" {
		t.Fatalf("expected required-argument error, got %v", err)
	}
	if apperr.HTTPStatus(err) != 400 {
		t.Errorf("expected 400, got %d", apperr.HTTPStatus(err))
	}
}

// -- Ward Tests --

func TestCreateWardInvalidType(t *testing.T) {
	svc, _ := newTestService()
	err := svc.CreateWard(context.Background(), &Ward{Type: "DERMATOLOGY", MaxCapacity: 5})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCreateWardNegativeCapacity(t *testing.T) {
	svc, _ := newTestService()
	err := svc.CreateWard(context.Background(), &Ward{Type: WardCardiology, MaxCapacity: -1})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteWardNotFound_DeleteNeverInvoked(t *testing.T) {
	svc, s := newTestService()
	err := svc.DeleteWard(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if s.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}

func TestListWardsByTypeInvalid(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.ListWardsByType(context.Background(), "PARKING")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestWardMirrorReflectsOwningSide(t *testing.T) {
	svc, s := newTestService()
	w := s.addWard(WardCardiology, 30)

	h := &Hospital{Name: "Rigshospitalet", WardIDs: []uuid.UUID{w.ID}}
	if err := svc.CreateHospital(context.Background(), h); err != nil {
		t.Fatalf("create: %v", err)
	}

	loaded, err := svc.GetWard(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("get ward: %v", err)
	}
	if !loaded.BelongsTo(h.ID) {
		t.Error("expected ward mirror to reflect hospital membership")
	}
}
