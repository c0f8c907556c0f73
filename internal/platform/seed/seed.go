// Package seed loads the baseline Danish hospital data set. Running it
// against a non-empty database is a no-op.
package seed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/careward/careward/internal/domain/facility"
)

// Run creates the two reference hospitals with their wards. It skips
// everything when any hospital already exists.
func Run(ctx context.Context, svc *facility.Service) error {
	existing, err := svc.ListHospitals(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Info().Int("hospitals", len(existing)).Msg("database already seeded, skipping")
		return nil
	}

	cardiology := &facility.Ward{Type: facility.WardCardiology, MaxCapacity: 30}
	neurology := &facility.Ward{Type: facility.WardNeurology, MaxCapacity: 25}
	generalMedicine := &facility.Ward{Type: facility.WardGeneralMedicine, MaxCapacity: 20}
	for _, w := range []*facility.Ward{cardiology, neurology, generalMedicine} {
		if err := svc.CreateWard(ctx, w); err != nil {
			return err
		}
	}

	hospitals := []*facility.Hospital{
		{
			Name:    "Rigshospitalet",
			Address: "Blegdamsvej 9",
			City:    "København",
			WardIDs: []uuid.UUID{cardiology.ID, neurology.ID},
		},
		{
			Name:    "Aarhus Universitetshospital",
			Address: "Palle Juul-Jensens Boulevard 99",
			City:    "Aarhus",
			WardIDs: []uuid.UUID{generalMedicine.ID},
		},
	}
	for _, h := range hospitals {
		if err := svc.CreateHospital(ctx, h); err != nil {
			return err
		}
		log.Info().Str("hospital", h.Name).Int("wards", len(h.WardIDs)).Msg("seeded hospital")
	}
	return nil
}
