package facility

import (
	"context"

	"github.com/google/uuid"
)

type HospitalRepository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*Hospital, error)
	Update(ctx context.Context, h *Hospital) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Hospital, error)
	ListByCity(ctx context.Context, city string) ([]*Hospital, error)
	// ReplaceWards swaps the hospital's entire ward set for the given ids.
	// Callers run it inside a transaction together with the hospital write.
	ReplaceWards(ctx context.Context, hospitalID uuid.UUID, wardIDs []uuid.UUID) error
}

type WardRepository interface {
	Create(ctx context.Context, w *Ward) error
	GetByID(ctx context.Context, id uuid.UUID) (*Ward, error)
	Update(ctx context.Context, w *Ward) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Ward, error)
	ListByType(ctx context.Context, wardType WardType) ([]*Ward, error)
	ListByHospital(ctx context.Context, hospitalID uuid.UUID) ([]*Ward, error)
}
