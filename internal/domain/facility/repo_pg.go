package facility

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

// =========== Hospital Repository ===========

type hospitalRepoPG struct{ pool *pgxpool.Pool }

func NewHospitalRepoPG(pool *pgxpool.Pool) HospitalRepository { return &hospitalRepoPG{pool: pool} }

func (r *hospitalRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const hospitalCols = `id, name, address, city, created_at, updated_at`

func scanHospital(row pgx.Row) (*Hospital, error) {
	var h Hospital
	err := row.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.CreatedAt, &h.UpdatedAt)
	return &h, err
}

func (r *hospitalRepoPG) Create(ctx context.Context, h *Hospital) error {
	h.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO hospitals (id, name, address, city)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		h.ID, h.Name, h.Address, h.City).Scan(&h.CreatedAt, &h.UpdatedAt)
}

func (r *hospitalRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	h, err := scanHospital(r.conn(ctx).QueryRow(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Hospital not found")
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadWards(ctx, []*Hospital{h}); err != nil {
		return nil, err
	}
	return h, nil
}

func (r *hospitalRepoPG) Update(ctx context.Context, h *Hospital) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE hospitals SET name=$2, address=$3, city=$4, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		h.ID, h.Name, h.Address, h.City).Scan(&h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Hospital not found")
	}
	return err
}

func (r *hospitalRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospitals WHERE id = $1`, id)
	return err
}

func (r *hospitalRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hospitals WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *hospitalRepoPG) List(ctx context.Context) ([]*Hospital, error) {
	return r.list(ctx, `SELECT `+hospitalCols+` FROM hospitals ORDER BY name`)
}

func (r *hospitalRepoPG) ListByCity(ctx context.Context, city string) ([]*Hospital, error) {
	return r.list(ctx, `SELECT `+hospitalCols+` FROM hospitals WHERE LOWER(city) = LOWER($1) ORDER BY name`, city)
}

func (r *hospitalRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Hospital, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Hospital
	for rows.Next() {
		h, err := scanHospital(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadWards(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// loadWards fills the owned ward set of each hospital from the association
// table in a single query. Ward rows come back shallow (no hospital mirror).
func (r *hospitalRepoPG) loadWards(ctx context.Context, hospitals []*Hospital) error {
	if len(hospitals) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(hospitals))
	byID := make(map[uuid.UUID]*Hospital, len(hospitals))
	for i, h := range hospitals {
		ids[i] = h.ID
		byID[h.ID] = h
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT hw.hospital_id, w.id, w.ward_type, w.max_capacity, w.created_at, w.updated_at
		FROM hospital_ward hw
		JOIN wards w ON w.id = hw.ward_id
		WHERE hw.hospital_id = ANY($1)
		ORDER BY w.ward_type`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var hid uuid.UUID
		var w Ward
		if err := rows.Scan(&hid, &w.ID, &w.Type, &w.MaxCapacity, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return err
		}
		if h, ok := byID[hid]; ok {
			h.Wards = append(h.Wards, &w)
		}
	}
	return rows.Err()
}

func (r *hospitalRepoPG) ReplaceWards(ctx context.Context, hospitalID uuid.UUID, wardIDs []uuid.UUID) error {
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM hospital_ward WHERE hospital_id = $1`, hospitalID); err != nil {
		return err
	}
	for _, wid := range wardIDs {
		if _, err := r.conn(ctx).Exec(ctx, `
			INSERT INTO hospital_ward (hospital_id, ward_id)
			VALUES ($1,$2) ON CONFLICT DO NOTHING`, hospitalID, wid); err != nil {
			return err
		}
	}
	return nil
}

// =========== Ward Repository ===========

type wardRepoPG struct{ pool *pgxpool.Pool }

func NewWardRepoPG(pool *pgxpool.Pool) WardRepository { return &wardRepoPG{pool: pool} }

func (r *wardRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const wardCols = `id, ward_type, max_capacity, created_at, updated_at`

func scanWard(row pgx.Row) (*Ward, error) {
	var w Ward
	err := row.Scan(&w.ID, &w.Type, &w.MaxCapacity, &w.CreatedAt, &w.UpdatedAt)
	return &w, err
}

func (r *wardRepoPG) Create(ctx context.Context, w *Ward) error {
	w.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO wards (id, ward_type, max_capacity)
		VALUES ($1,$2,$3)
		RETURNING created_at, updated_at`,
		w.ID, w.Type, w.MaxCapacity).Scan(&w.CreatedAt, &w.UpdatedAt)
}

func (r *wardRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Ward, error) {
	w, err := scanWard(r.conn(ctx).QueryRow(ctx, `SELECT `+wardCols+` FROM wards WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("Ward not found")
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadHospitals(ctx, []*Ward{w}); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *wardRepoPG) Update(ctx context.Context, w *Ward) error {
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE wards SET ward_type=$2, max_capacity=$3, updated_at=NOW()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		w.ID, w.Type, w.MaxCapacity).Scan(&w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Ward not found")
	}
	return err
}

func (r *wardRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx, `DELETE FROM wards WHERE id = $1`, id)
	return err
}

func (r *wardRepoPG) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM wards WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *wardRepoPG) List(ctx context.Context) ([]*Ward, error) {
	return r.list(ctx, `SELECT `+wardCols+` FROM wards ORDER BY ward_type`)
}

func (r *wardRepoPG) ListByType(ctx context.Context, wardType WardType) ([]*Ward, error) {
	return r.list(ctx, `SELECT `+wardCols+` FROM wards WHERE ward_type = $1 ORDER BY created_at`, wardType)
}

func (r *wardRepoPG) ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Ward, error) {
	return r.list(ctx, `
		SELECT w.id, w.ward_type, w.max_capacity, w.created_at, w.updated_at
		FROM wards w
		JOIN hospital_ward hw ON hw.ward_id = w.id
		WHERE hw.hospital_id = $1
		ORDER BY w.ward_type`, hospitalID)
}

func (r *wardRepoPG) list(ctx context.Context, sql string, args ...interface{}) ([]*Ward, error) {
	rows, err := r.conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Ward
	for rows.Next() {
		w, err := scanWard(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadHospitals(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// loadHospitals fills the derived hospital-membership view of each ward.
// Hospital rows come back shallow so serialization cannot recurse.
func (r *wardRepoPG) loadHospitals(ctx context.Context, wards []*Ward) error {
	if len(wards) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(wards))
	byID := make(map[uuid.UUID]*Ward, len(wards))
	for i, w := range wards {
		ids[i] = w.ID
		byID[w.ID] = w
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT hw.ward_id, h.id, h.name, h.address, h.city, h.created_at, h.updated_at
		FROM hospital_ward hw
		JOIN hospitals h ON h.id = hw.hospital_id
		WHERE hw.ward_id = ANY($1)
		ORDER BY h.name`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var wid uuid.UUID
		var h Hospital
		if err := rows.Scan(&wid, &h.ID, &h.Name, &h.Address, &h.City, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return err
		}
		if w, ok := byID[wid]; ok {
			w.Hospitals = append(w.Hospitals, &h)
		}
	}
	return rows.Err()
}
