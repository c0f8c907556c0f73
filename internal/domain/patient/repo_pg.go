package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careward/careward/internal/domain/clinical"
	"github.com/careward/careward/internal/platform/db"
	"github.com/careward/careward/pkg/apperr"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{pool: pool} }

func (r *patientRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, name, date_of_birth, gender, ward_id, hospital_id, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.DateOfBirth, &p.Gender, &p.WardID, &p.HospitalID, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO patients (id, name, date_of_birth, gender, ward_id, hospital_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.DateOfBirth, p.Gender, p.WardID, p.HospitalID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Patient not found")
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadDiagnoses(ctx, []*Patient{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE patients SET name=$2, date_of_birth=$3, gender=$4, ward_id=$5, hospital_id=$6, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		p.ID, p.Name, p.DateOfBirth, p.Gender, p.WardID, p.HospitalID).Scan(&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Patient not found")
	}
	return err
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	return err
}

func (r *patientRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM patients WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients ORDER BY name`)
}

func (r *patientRepoPG) ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients WHERE ward_id = $1 ORDER BY name`, wardID)
}

func (r *patientRepoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Patient, error) {
	return r.list(ctx, `SELECT `+patientCols+` FROM patients WHERE hospital_id = $1 ORDER BY name`, hospitalID)
}

func (r *patientRepoPG) ReplaceDiagnoses(ctx context.Context, patientID uuid.UUID, diagnosisIDs []uuid.UUID) error {
	c := r.conn(ctx)
	if _, err := c.Exec(ctx, `DELETE FROM patient_diagnosis WHERE patient_id = $1`, patientID); err != nil {
		return err
	}
	for _, id := range diagnosisIDs {
		_, err := c.Exec(ctx, `
			INSERT INTO patient_diagnosis (patient_id, diagnosis_id)
			VALUES ($1,$2) ON CONFLICT DO NOTHING`, patientID, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *patientRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Patient, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadDiagnoses(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// loadDiagnoses attaches diagnosis rows for a batch of patients with one query.
func (r *patientRepoPG) loadDiagnoses(ctx context.Context, patients []*Patient) error {
	if len(patients) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*Patient, len(patients))
	ids := make([]uuid.UUID, 0, len(patients))
	for _, p := range patients {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT pd.patient_id, d.id, d.description, d.diagnosis_date, d.doctor_id, d.created_at, d.updated_at
		FROM patient_diagnosis pd
		JOIN diagnoses d ON d.id = pd.diagnosis_id
		WHERE pd.patient_id = ANY($1)`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var patientID uuid.UUID
		var d clinical.Diagnosis
		if err := rows.Scan(&patientID, &d.ID, &d.Description, &d.DiagnosisDate, &d.DoctorID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return err
		}
		p := byID[patientID]
		p.Diagnoses = append(p.Diagnoses, &d)
		p.DiagnosisIDs = append(p.DiagnosisIDs, d.ID)
	}
	return rows.Err()
}
