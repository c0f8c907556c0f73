package surgery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careward/careward/internal/platform/db"
	"github.com/careward/careward/pkg/apperr"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type surgeryRepoPG struct{ pool *pgxpool.Pool }

func NewSurgeryRepoPG(pool *pgxpool.Pool) SurgeryRepository { return &surgeryRepoPG{pool: pool} }

func (r *surgeryRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const surgeryCols = `id, description, surgery_date, patient_id, doctor_id, created_at, updated_at`

func scanSurgery(row pgx.Row) (*Surgery, error) {
	var s Surgery
	err := row.Scan(&s.ID, &s.Description, &s.SurgeryDate, &s.PatientID, &s.DoctorID, &s.CreatedAt, &s.UpdatedAt)
	return &s, err
}

func (r *surgeryRepoPG) Create(ctx context.Context, s *Surgery) error {
	s.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO surgeries (id, description, surgery_date, patient_id, doctor_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		s.ID, s.Description, s.SurgeryDate, s.PatientID, s.DoctorID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *surgeryRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Surgery, error) {
	s, err := scanSurgery(r.conn(ctx).QueryRow(ctx, `SELECT `+surgeryCols+` FROM surgeries WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Surgery not found")
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *surgeryRepoPG) Update(ctx context.Context, s *Surgery) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE surgeries SET description=$2, surgery_date=$3, patient_id=$4, doctor_id=$5, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		s.ID, s.Description, s.SurgeryDate, s.PatientID, s.DoctorID).Scan(&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Surgery not found")
	}
	return err
}

func (r *surgeryRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM surgeries WHERE id = $1`, id)
	return err
}

func (r *surgeryRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM surgeries WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *surgeryRepoPG) List(ctx context.Context) ([]*Surgery, error) {
	return r.list(ctx, `SELECT `+surgeryCols+` FROM surgeries ORDER BY surgery_date DESC`)
}

func (r *surgeryRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Surgery, error) {
	return r.list(ctx, `SELECT `+surgeryCols+` FROM surgeries WHERE patient_id = $1 ORDER BY surgery_date DESC`, patientID)
}

func (r *surgeryRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Surgery, error) {
	return r.list(ctx, `SELECT `+surgeryCols+` FROM surgeries WHERE doctor_id = $1 ORDER BY surgery_date DESC`, doctorID)
}

func (r *surgeryRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Surgery, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Surgery
	for rows.Next() {
		s, err := scanSurgery(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}
