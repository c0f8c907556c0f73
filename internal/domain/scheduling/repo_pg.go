package scheduling

import (
	"context"
	"errors"
	"time"

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

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

func (r *appointmentRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const appointmentCols = `id, appointment_date, reason, status, patient_id, doctor_id, nurse_id, created_at, updated_at`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.Date, &a.Reason, &a.Status, &a.PatientID, &a.DoctorID, &a.NurseID, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO appointments (id, appointment_date, reason, status, patient_id, doctor_id, nurse_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		a.ID, a.Date, a.Reason, a.Status, a.PatientID, a.DoctorID, a.NurseID).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := scanAppointment(r.conn(ctx).QueryRow(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Appointment not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *appointmentRepoPG) Update(ctx context.Context, a *Appointment) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE appointments SET appointment_date=$2, reason=$3, status=$4, patient_id=$5, doctor_id=$6, nurse_id=$7, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		a.ID, a.Date, a.Reason, a.Status, a.PatientID, a.DoctorID, a.NurseID).Scan(&a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Appointment not found")
	}
	return err
}

func (r *appointmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *appointmentRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *appointmentRepoPG) List(ctx context.Context) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments ORDER BY appointment_date`)
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE patient_id = $1 ORDER BY appointment_date`, patientID)
}

func (r *appointmentRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE doctor_id = $1 ORDER BY appointment_date`, doctorID)
}

func (r *appointmentRepoPG) ListByNurse(ctx context.Context, nurseID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE nurse_id = $1 ORDER BY appointment_date`, nurseID)
}

func (r *appointmentRepoPG) ListByStatus(ctx context.Context, status AppointmentStatus) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE status = $1 ORDER BY appointment_date`, status)
}

func (r *appointmentRepoPG) ListByDate(ctx context.Context, day time.Time) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE appointment_date::date = $1::date ORDER BY appointment_date`, day)
}

func (r *appointmentRepoPG) ListByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+appointmentCols+` FROM appointments WHERE appointment_date::date BETWEEN $1::date AND $2::date ORDER BY appointment_date`, start, end)
}

func (r *appointmentRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Appointment, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
