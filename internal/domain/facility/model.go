package facility

import (
	"time"

	"github.com/google/uuid"
)

type WardType string

const (
	WardCardiology      WardType = "CARDIOLOGY"
	WardNeurology       WardType = "NEUROLOGY"
	WardGeneralMedicine WardType = "GENERAL_MEDICINE"
	WardSurgery         WardType = "SURGERY"
	WardOncology        WardType = "ONCOLOGY"
	WardPediatrics      WardType = "PEDIATRICS"
)

var ValidWardTypes = map[WardType]bool{
	WardCardiology: true, WardNeurology: true, WardGeneralMedicine: true,
	WardSurgery: true, WardOncology: true, WardPediatrics: true,
}

// Hospital maps to the hospitals table. It owns the hospital_ward association;
// Wards is loaded from that table, WardIDs is write-only request input.
type Hospital struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Address   string      `db:"address" json:"address"`
	City      string      `db:"city" json:"city"`
	Wards     []*Ward     `db:"-" json:"wards,omitempty"`
	WardIDs   []uuid.UUID `db:"-" json:"ward_ids,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// Ward maps to the wards table. Hospitals is the inverse view of the
// hospital_ward association: derived on load, never mutated directly.
type Ward struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Type        WardType    `db:"ward_type" json:"ward_type"`
	MaxCapacity int         `db:"max_capacity" json:"max_capacity"`
	Hospitals   []*Hospital `db:"-" json:"hospitals,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// BelongsTo reports whether the ward is a member of the given hospital's ward
// set. A nil or empty membership slice means "no memberships", not an error.
// Pure predicate, no I/O; callers resolve both sides before invoking it.
func (w *Ward) BelongsTo(hospitalID uuid.UUID) bool {
	for _, h := range w.Hospitals {
		if h.ID == hospitalID {
			return true
		}
	}
	return false
}
