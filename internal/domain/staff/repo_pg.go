package staff

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

// =========== Doctor Repository ===========

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

func (r *doctorRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const doctorCols = `id, name, speciality, ward_id, hospital_id, created_at, updated_at`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Speciality, &d.WardID, &d.HospitalID, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO doctors (id, name, speciality, ward_id, hospital_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Speciality, d.WardID, d.HospitalID).Scan(&d.CreatedAt, &d.UpdatedAt)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	d, err := scanDoctor(r.conn(ctx).QueryRow(ctx, `SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Doctor not found")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE doctors SET name=$2, speciality=$3, ward_id=$4, hospital_id=$5, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Speciality, d.WardID, d.HospitalID).Scan(&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Doctor not found")
	}
	return err
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	return err
}

func (r *doctorRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM doctors WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *doctorRepoPG) List(ctx context.Context) ([]*Doctor, error) {
	return r.list(ctx, `SELECT `+doctorCols+` FROM doctors ORDER BY name`)
}

func (r *doctorRepoPG) ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Doctor, error) {
	return r.list(ctx, `SELECT `+doctorCols+` FROM doctors WHERE ward_id = $1 ORDER BY name`, wardID)
}

func (r *doctorRepoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Doctor, error) {
	return r.list(ctx, `SELECT `+doctorCols+` FROM doctors WHERE hospital_id = $1 ORDER BY name`, hospitalID)
}

func (r *doctorRepoPG) ListBySpeciality(ctx context.Context, speciality DoctorSpeciality) ([]*Doctor, error) {
	return r.list(ctx, `SELECT `+doctorCols+` FROM doctors WHERE speciality = $1 ORDER BY name`, speciality)
}

func (r *doctorRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Doctor, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// =========== Nurse Repository ===========

type nurseRepoPG struct{ pool *pgxpool.Pool }

func NewNurseRepoPG(pool *pgxpool.Pool) NurseRepository { return &nurseRepoPG{pool: pool} }

func (r *nurseRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const nurseCols = `id, name, speciality, ward_id, hospital_id, created_at, updated_at`

func scanNurse(row pgx.Row) (*Nurse, error) {
	var n Nurse
	err := row.Scan(&n.ID, &n.Name, &n.Speciality, &n.WardID, &n.HospitalID, &n.CreatedAt, &n.UpdatedAt)
	return &n, err
}

func (r *nurseRepoPG) Create(ctx context.Context, n *Nurse) error {
	n.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO nurses (id, name, speciality, ward_id, hospital_id)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at`,
		n.ID, n.Name, n.Speciality, n.WardID, n.HospitalID).Scan(&n.CreatedAt, &n.UpdatedAt)
}

func (r *nurseRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Nurse, error) {
	n, err := scanNurse(r.conn(ctx).QueryRow(ctx, `SELECT `+nurseCols+` FROM nurses WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Nurse not found")
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *nurseRepoPG) Update(ctx context.Context, n *Nurse) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE nurses SET name=$2, speciality=$3, ward_id=$4, hospital_id=$5, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		n.ID, n.Name, n.Speciality, n.WardID, n.HospitalID).Scan(&n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Nurse not found")
	}
	return err
}

func (r *nurseRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM nurses WHERE id = $1`, id)
	return err
}

func (r *nurseRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM nurses WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *nurseRepoPG) List(ctx context.Context) ([]*Nurse, error) {
	return r.list(ctx, `SELECT `+nurseCols+` FROM nurses ORDER BY name`)
}

func (r *nurseRepoPG) ListByWard(ctx context.Context, wardID uuid.UUID) ([]*Nurse, error) {
	return r.list(ctx, `SELECT `+nurseCols+` FROM nurses WHERE ward_id = $1 ORDER BY name`, wardID)
}

func (r *nurseRepoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Nurse, error) {
	return r.list(ctx, `SELECT `+nurseCols+` FROM nurses WHERE hospital_id = $1 ORDER BY name`, hospitalID)
}

func (r *nurseRepoPG) ListBySpeciality(ctx context.Context, speciality NurseSpeciality) ([]*Nurse, error) {
	return r.list(ctx, `SELECT `+nurseCols+` FROM nurses WHERE speciality = $1 ORDER BY name`, speciality)
}

func (r *nurseRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Nurse, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Nurse
	for rows.Next() {
		n, err := scanNurse(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}
