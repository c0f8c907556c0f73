package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/internal/domain/clinical"
	"github.com/careward/careward/internal/domain/facility"
	"github.com/careward/careward/pkg/apperr"
)

type mockPatientRepo struct {
	patients map[uuid.UUID]*Patient
	assoc    map[uuid.UUID][]uuid.UUID
	deletes  int
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{
		patients: make(map[uuid.UUID]*Patient),
		assoc:    make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *mockPatientRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, apperr.NotFound("Patient not found")
	}
	cp := *p
	cp.DiagnosisIDs = append([]uuid.UUID(nil), m.assoc[id]...)
	return &cp, nil
}

func (m *mockPatientRepo) Update(_ context.Context, p *Patient) error {
	m.patients[p.ID] = p
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deletes++
	delete(m.patients, id)
	delete(m.assoc, id)
	return nil
}

func (m *mockPatientRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.patients[id]
	return ok, nil
}

func (m *mockPatientRepo) List(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPatientRepo) ListByWard(_ context.Context, wardID uuid.UUID) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if p.WardID != nil && *p.WardID == wardID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPatientRepo) ListByHospital(_ context.Context, hospitalID uuid.UUID) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.patients {
		if p.HospitalID != nil && *p.HospitalID == hospitalID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPatientRepo) ReplaceDiagnoses(_ context.Context, patientID uuid.UUID, diagnosisIDs []uuid.UUID) error {
	m.assoc[patientID] = append([]uuid.UUID(nil), diagnosisIDs...)
	return nil
}

type fakeDiagnosisResolver struct{ diagnoses map[uuid.UUID]*clinical.Diagnosis }

func (f *fakeDiagnosisResolver) GetByID(_ context.Context, id uuid.UUID) (*clinical.Diagnosis, error) {
	d, ok := f.diagnoses[id]
	if !ok {
		return nil, apperr.NotFound("Diagnosis not found")
	}
	return d, nil
}

type fakeWardResolver struct{ wards map[uuid.UUID]*facility.Ward }

func (f *fakeWardResolver) GetByID(_ context.Context, id uuid.UUID) (*facility.Ward, error) {
	w, ok := f.wards[id]
	if !ok {
		return nil, apperr.NotFound("Ward not found")
	}
	return w, nil
}

type fakeHospitalResolver struct{ hospitals map[uuid.UUID]*facility.Hospital }

func (f *fakeHospitalResolver) GetByID(_ context.Context, id uuid.UUID) (*facility.Hospital, error) {
	h, ok := f.hospitals[id]
	if !ok {
		return nil, apperr.NotFound("Hospital not found")
	}
	return h, nil
}

func passRunner(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type patientFixture struct {
	svc       *Service
	repo      *mockPatientRepo
	diagnosis *clinical.Diagnosis
	hospital  *facility.Hospital
	ward      *facility.Ward
	outside   *facility.Hospital
}

func newFixture() *patientFixture {
	hospital := &facility.Hospital{ID: uuid.New(), Name: "Rigshospitalet"}
	outside := &facility.Hospital{ID: uuid.New(), Name: "Aarhus Universitetshospital"}
	ward := &facility.Ward{ID: uuid.New(), Type: facility.WardCardiology,
		Hospitals: []*facility.Hospital{hospital}}
	diagnosis := &clinical.Diagnosis{ID: uuid.New(), Description: "Hypertension", DiagnosisDate: time.Now()}

	aff := facility.NewAffiliation(
		&fakeWardResolver{wards: map[uuid.UUID]*facility.Ward{ward.ID: ward}},
		&fakeHospitalResolver{hospitals: map[uuid.UUID]*facility.Hospital{
			hospital.ID: hospital, outside.ID: outside,
		}},
	)
	repo := newMockPatientRepo()
	resolver := &fakeDiagnosisResolver{diagnoses: map[uuid.UUID]*clinical.Diagnosis{diagnosis.ID: diagnosis}}
	return &patientFixture{
		svc:       NewService(repo, resolver, aff, passRunner),
		repo:      repo,
		diagnosis: diagnosis,
		hospital:  hospital,
		ward:      ward,
		outside:   outside,
	}
}

func TestCreatePatientWithDiagnoses(t *testing.T) {
	f := newFixture()
	p := &Patient{Name: "Anna Larsen", Gender: "FEMALE",
		DateOfBirth:  time.Date(1984, 3, 12, 0, 0, 0, 0, time.UTC),
		WardID:       &f.ward.ID,
		HospitalID:   &f.hospital.ID,
		DiagnosisIDs: []uuid.UUID{f.diagnosis.ID}}
	if err := f.svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.repo.assoc[p.ID]) != 1 || f.repo.assoc[p.ID][0] != f.diagnosis.ID {
		t.Error("expected diagnosis association written")
	}
	if len(p.Diagnoses) != 1 || p.Diagnoses[0].ID != f.diagnosis.ID {
		t.Error("expected resolved diagnoses attached")
	}
}

func TestCreatePatientUnknownDiagnosis_NothingSaved(t *testing.T) {
	f := newFixture()
	missing := uuid.New()
	p := &Patient{Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{f.diagnosis.ID, missing}}
	err := f.svc.CreatePatient(context.Background(), p)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	want := "Diagnosis not found: " + missing.String()
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if len(f.repo.patients) != 0 {
		t.Error("expected nothing persisted on resolution failure")
	}
}

func TestCreatePatient_NotAffiliated(t *testing.T) {
	f := newFixture()
	p := &Patient{Name: "Anna Larsen", WardID: &f.ward.ID, HospitalID: &f.outside.ID}
	err := f.svc.CreatePatient(context.Background(), p)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(f.repo.patients) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCreatePatientRequiresName(t *testing.T) {
	f := newFixture()
	err := f.svc.CreatePatient(context.Background(), &Patient{Gender: "MALE"})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdatePatientReplacesDiagnosisSet(t *testing.T) {
	f := newFixture()
	p := &Patient{Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{f.diagnosis.ID}}
	if err := f.svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := &clinical.Diagnosis{ID: uuid.New(), Description: "Diabetes", DiagnosisDate: time.Now()}
	f.svc.diagnoses.(*fakeDiagnosisResolver).diagnoses[second.ID] = second

	upd := &Patient{ID: p.ID, Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{second.ID}}
	if err := f.svc.UpdatePatient(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := f.repo.assoc[p.ID]
	if len(got) != 1 || got[0] != second.ID {
		t.Errorf("expected diagnosis set fully replaced, got %v", got)
	}
}

func TestUpdatePatientEmptyDiagnosisIDsLeavesSet(t *testing.T) {
	f := newFixture()
	p := &Patient{Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{f.diagnosis.ID}}
	if err := f.svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}

	upd := &Patient{ID: p.ID, Name: "Anna K. Larsen"}
	if err := f.svc.UpdatePatient(context.Background(), upd); err != nil {
		t.Fatalf("update: %v", err)
	}
	got := f.repo.assoc[p.ID]
	if len(got) != 1 || got[0] != f.diagnosis.ID {
		t.Errorf("expected association untouched, got %v", got)
	}
	if len(upd.DiagnosisIDs) != 1 {
		t.Error("expected existing diagnosis ids echoed back")
	}
}

func TestUpdatePatientUnknownDiagnosis_NoPartialReplace(t *testing.T) {
	f := newFixture()
	p := &Patient{Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{f.diagnosis.ID}}
	if err := f.svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}

	upd := &Patient{ID: p.ID, Name: "Anna Larsen", DiagnosisIDs: []uuid.UUID{uuid.New()}}
	err := f.svc.UpdatePatient(context.Background(), upd)
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	got := f.repo.assoc[p.ID]
	if len(got) != 1 || got[0] != f.diagnosis.ID {
		t.Errorf("expected original association intact, got %v", got)
	}
}

func TestUpdatePatientNotFound(t *testing.T) {
	f := newFixture()
	err := f.svc.UpdatePatient(context.Background(), &Patient{ID: uuid.New(), Name: "X"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeletePatientNotFound_DeleteNeverInvoked(t *testing.T) {
	f := newFixture()
	err := f.svc.DeletePatient(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if f.repo.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}

func TestGetPatientNilID(t *testing.T) {
	f := newFixture()
	_, err := f.svc.GetPatient(context.Background(), uuid.Nil)
	if err == nil || err.Error() != "Patient ID cannot be null" {
		t.Fatalf("expected required-argument error, got %v", err)
	}
	if apperr.HTTPStatus(err) != 400 {
		t.Errorf("expected 400, got %d", apperr.HTTPStatus(err))
	}
}
