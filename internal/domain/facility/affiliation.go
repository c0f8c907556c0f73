package facility

import (
	"context"

	"github.com/google/uuid"

	"github.com/careward/careward/pkg/apperr"
)

const affiliationMsg = "The selected ward does not belong to the selected hospital. Please select a ward that exists in %s."

// WardResolver and HospitalResolver are the narrow lookup surfaces the
// affiliation check needs; the PG repositories satisfy them.
type WardResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Ward, error)
}

type HospitalResolver interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
}

// Affiliation applies the ward-hospital membership rule shared by doctor,
// nurse and patient writes.
type Affiliation struct {
	wards     WardResolver
	hospitals HospitalResolver
}

func NewAffiliation(wards WardResolver, hospitals HospitalResolver) *Affiliation {
	return &Affiliation{wards: wards, hospitals: hospitals}
}

// ValidateAssignment resolves the optional ward and hospital references of a
// staff or patient record. The check only fires when both references are
// supplied and both resolve: the ward must then be a member of the hospital's
// ward set. Supplying only one side (or neither) is always permitted.
func (a *Affiliation) ValidateAssignment(ctx context.Context, wardID, hospitalID *uuid.UUID) (*Ward, *Hospital, error) {
	var ward *Ward
	var hospital *Hospital
	var err error

	if wardID != nil {
		ward, err = a.wards.GetByID(ctx, *wardID)
		if err != nil {
			return nil, nil, err
		}
	}
	if hospitalID != nil {
		hospital, err = a.hospitals.GetByID(ctx, *hospitalID)
		if err != nil {
			return nil, nil, err
		}
	}
	if ward != nil && hospital != nil && !ward.BelongsTo(hospital.ID) {
		return nil, nil, apperr.Validation(affiliationMsg, hospital.Name)
	}
	return ward, hospital, nil
}
