package clinical

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type mockDiagnosisRepo struct {
	diagnoses map[uuid.UUID]*Diagnosis
	deletes   int
}

func newMockDiagnosisRepo() *mockDiagnosisRepo {
	return &mockDiagnosisRepo{diagnoses: make(map[uuid.UUID]*Diagnosis)}
}

func (m *mockDiagnosisRepo) Create(_ context.Context, d *Diagnosis) error {
	d.ID = uuid.New()
	m.diagnoses[d.ID] = d
	return nil
}

func (m *mockDiagnosisRepo) GetByID(_ context.Context, id uuid.UUID) (*Diagnosis, error) {
	d, ok := m.diagnoses[id]
	if !ok {
		return nil, apperr.NotFound("Diagnosis not found")
	}
	return d, nil
}

func (m *mockDiagnosisRepo) Update(_ context.Context, d *Diagnosis) error {
	m.diagnoses[d.ID] = d
	return nil
}

func (m *mockDiagnosisRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deletes++
	delete(m.diagnoses, id)
	return nil
}

func (m *mockDiagnosisRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.diagnoses[id]
	return ok, nil
}

func (m *mockDiagnosisRepo) List(_ context.Context) ([]*Diagnosis, error) {
	var result []*Diagnosis
	for _, d := range m.diagnoses {
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDiagnosisRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Diagnosis, error) {
	var result []*Diagnosis
	for _, d := range m.diagnoses {
		if d.DoctorID != nil && *d.DoctorID == doctorID {
			result = append(result, d)
		}
	}
	return result, nil
}

type fakeDoctorChecker struct{ ids map[uuid.UUID]bool }

func (f *fakeDoctorChecker) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

func newTestService() (*Service, *mockDiagnosisRepo, uuid.UUID) {
	repo := newMockDiagnosisRepo()
	doctorID := uuid.New()
	svc := NewService(repo, &fakeDoctorChecker{ids: map[uuid.UUID]bool{doctorID: true}})
	return svc, repo, doctorID
}

func TestCreateDiagnosis(t *testing.T) {
	svc, repo, doctorID := newTestService()
	d := &Diagnosis{Description: "Acute myocardial infarction",
		DiagnosisDate: time.Now(), DoctorID: &doctorID}
	if err := svc.CreateDiagnosis(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.diagnoses[d.ID]; !ok {
		t.Error("expected diagnosis persisted")
	}
}

func TestCreateDiagnosis_UnknownDoctor(t *testing.T) {
	svc, repo, _ := newTestService()
	missing := uuid.New()
	d := &Diagnosis{Description: "Migraine", DiagnosisDate: time.Now(), DoctorID: &missing}
	err := svc.CreateDiagnosis(context.Background(), d)
	if !apperr.IsNotFound(err) || err.Error() != "Doctor not found" {
		t.Fatalf("expected doctor NotFound, got %v", err)
	}
	if len(repo.diagnoses) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCreateDiagnosis_NoDoctor(t *testing.T) {
	svc, _, _ := newTestService()
	d := &Diagnosis{Description: "Migraine", DiagnosisDate: time.Now()}
	if err := svc.CreateDiagnosis(context.Background(), d); err != nil {
		t.Fatalf("doctor reference is optional, got %v", err)
	}
}

func TestCreateDiagnosis_MissingDescription(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.CreateDiagnosis(context.Background(), &Diagnosis{DiagnosisDate: time.Now()})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGetDiagnosis_NilID(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.GetDiagnosis(context.Background(), uuid.Nil)
	if err == nil || err.Error() != "Diagnosis ID cannot be null" {
		t.Fatalf("expected required-argument error, got %v", err)
	}
	if apperr.HTTPStatus(err) != 400 {
		t.Errorf("expected 400, got %d", apperr.HTTPStatus(err))
	}
}

func TestDeleteDiagnosis_NotFound_DeleteNeverInvoked(t *testing.T) {
	svc, repo, _ := newTestService()
	err := svc.DeleteDiagnosis(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if repo.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}

func TestUpdateDiagnosis_NotFound(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.UpdateDiagnosis(context.Background(), &Diagnosis{ID: uuid.New(), Description: "X"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestListDiagnosesByDoctor(t *testing.T) {
	svc, _, doctorID := newTestService()
	d := &Diagnosis{Description: "Pneumonia", DiagnosisDate: time.Now(), DoctorID: &doctorID}
	if err := svc.CreateDiagnosis(context.Background(), d); err != nil {
		t.Fatalf("create: %v", err)
	}
	items, err := svc.ListDiagnosesByDoctor(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnosis, got %d", len(items))
	}
}
