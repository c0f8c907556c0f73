package medication

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

type mockMedicationRepo struct {
	medications map[uuid.UUID]*Medication
	deletes     int
}

func newMockMedicationRepo() *mockMedicationRepo {
	return &mockMedicationRepo{medications: make(map[uuid.UUID]*Medication)}
}

func (m *mockMedicationRepo) Create(_ context.Context, med *Medication) error {
	med.ID = uuid.New()
	m.medications[med.ID] = med
	return nil
}

func (m *mockMedicationRepo) GetByID(_ context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.medications[id]
	if !ok {
		return nil, apperr.NotFound("Medication not found")
	}
	return med, nil
}

func (m *mockMedicationRepo) Update(_ context.Context, med *Medication) error {
	m.medications[med.ID] = med
	return nil
}

func (m *mockMedicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deletes++
	delete(m.medications, id)
	return nil
}

func (m *mockMedicationRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.medications[id]
	return ok, nil
}

func (m *mockMedicationRepo) List(_ context.Context) ([]*Medication, error) {
	var result []*Medication
	for _, med := range m.medications {
		result = append(result, med)
	}
	return result, nil
}

type mockPrescriptionRepo struct {
	prescriptions map[uuid.UUID]*Prescription
	deletes       int
}

func newMockPrescriptionRepo() *mockPrescriptionRepo {
	return &mockPrescriptionRepo{prescriptions: make(map[uuid.UUID]*Prescription)}
}

func (m *mockPrescriptionRepo) Create(_ context.Context, p *Prescription) error {
	p.ID = uuid.New()
	m.prescriptions[p.ID] = p
	return nil
}

func (m *mockPrescriptionRepo) GetByID(_ context.Context, id uuid.UUID) (*Prescription, error) {
	p, ok := m.prescriptions[id]
	if !ok {
		return nil, apperr.NotFound("Prescription not found")
	}
	return p, nil
}

func (m *mockPrescriptionRepo) Update(_ context.Context, p *Prescription) error {
	m.prescriptions[p.ID] = p
	return nil
}

func (m *mockPrescriptionRepo) Delete(_ context.Context, id uuid.UUID) error {
	m.deletes++
	delete(m.prescriptions, id)
	return nil
}

func (m *mockPrescriptionRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.prescriptions[id]
	return ok, nil
}

func (m *mockPrescriptionRepo) List(_ context.Context) ([]*Prescription, error) {
	var result []*Prescription
	for _, p := range m.prescriptions {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPrescriptionRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	var result []*Prescription
	for _, p := range m.prescriptions {
		if p.PatientID != nil && *p.PatientID == patientID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPrescriptionRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]*Prescription, error) {
	var result []*Prescription
	for _, p := range m.prescriptions {
		if p.DoctorID != nil && *p.DoctorID == doctorID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPrescriptionRepo) ListByMedication(_ context.Context, medicationID uuid.UUID) ([]*Prescription, error) {
	var result []*Prescription
	for _, p := range m.prescriptions {
		if p.MedicationID != nil && *p.MedicationID == medicationID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeChecker struct{ ids map[uuid.UUID]bool }

func (f *fakeChecker) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.ids[id], nil
}

type medicationFixture struct {
	svc           *Service
	medications   *mockMedicationRepo
	prescriptions *mockPrescriptionRepo
	patientID     uuid.UUID
	doctorID      uuid.UUID
}

func newFixture() *medicationFixture {
	medications := newMockMedicationRepo()
	prescriptions := newMockPrescriptionRepo()
	patientID, doctorID := uuid.New(), uuid.New()
	svc := NewService(medications, prescriptions,
		&fakeChecker{ids: map[uuid.UUID]bool{patientID: true}},
		&fakeChecker{ids: map[uuid.UUID]bool{doctorID: true}},
	)
	return &medicationFixture{svc: svc, medications: medications, prescriptions: prescriptions,
		patientID: patientID, doctorID: doctorID}
}

func TestCreateMedication(t *testing.T) {
	f := newFixture()
	m := &Medication{Name: "Metoprolol", Dosage: "50mg"}
	if err := f.svc.CreateMedication(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected id assigned")
	}
}

func TestCreateMedication_RequiresName(t *testing.T) {
	f := newFixture()
	err := f.svc.CreateMedication(context.Background(), &Medication{Dosage: "50mg"})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestDeleteMedication_NotFound_DeleteNeverInvoked(t *testing.T) {
	f := newFixture()
	err := f.svc.DeleteMedication(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if f.medications.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}

func TestCreatePrescription(t *testing.T) {
	f := newFixture()
	m := &Medication{Name: "Metoprolol", Dosage: "50mg"}
	if err := f.svc.CreateMedication(context.Background(), m); err != nil {
		t.Fatalf("create medication: %v", err)
	}
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p := &Prescription{StartDate: start, EndDate: start.AddDate(0, 1, 0),
		PatientID: &f.patientID, DoctorID: &f.doctorID, MedicationID: &m.ID}
	if err := f.svc.CreatePrescription(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreatePrescription_UnknownMedication(t *testing.T) {
	f := newFixture()
	missing := uuid.New()
	p := &Prescription{StartDate: time.Now(), MedicationID: &missing}
	err := f.svc.CreatePrescription(context.Background(), p)
	if !apperr.IsNotFound(err) || err.Error() != "Medication not found" {
		t.Fatalf("expected medication NotFound, got %v", err)
	}
	if len(f.prescriptions.prescriptions) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestCreatePrescription_UnknownPatient(t *testing.T) {
	f := newFixture()
	missing := uuid.New()
	p := &Prescription{StartDate: time.Now(), PatientID: &missing}
	err := f.svc.CreatePrescription(context.Background(), p)
	if !apperr.IsNotFound(err) || err.Error() != "Patient not found" {
		t.Fatalf("expected patient NotFound, got %v", err)
	}
}

func TestCreatePrescription_EndBeforeStart(t *testing.T) {
	f := newFixture()
	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	p := &Prescription{StartDate: start, EndDate: start.AddDate(0, 0, -7)}
	err := f.svc.CreatePrescription(context.Background(), p)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListPrescriptionsByPatient(t *testing.T) {
	f := newFixture()
	p := &Prescription{StartDate: time.Now(), PatientID: &f.patientID}
	if err := f.svc.CreatePrescription(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	items, err := f.svc.ListPrescriptionsByPatient(context.Background(), f.patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 prescription, got %d", len(items))
	}
}

func TestDeletePrescription_NotFound(t *testing.T) {
	f := newFixture()
	err := f.svc.DeletePrescription(context.Background(), uuid.New())
	if !apperr.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if f.prescriptions.deletes != 0 {
		t.Error("delete primitive must not run for a nonexistent entity")
	}
}
