package commands

//go:generate mockgen -source=seed.go -destination=../../../tests/mock/commands/seed_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

type CatalogSeeder interface {
	// Seed inserts the initial catalog when the room_types table is empty and
	// reports how many rows were written.
	Seed(ctx context.Context) (int, error)
}

type catalogSeederImpl struct {
	uow     shared.UnitOfWork
	catalog []roomtype.Params
}

func NewCatalogSeeder(uow shared.UnitOfWork) CatalogSeeder {
	return &catalogSeederImpl{
		uow:     uow,
		catalog: roomtype.InitialCatalog(),
	}
}

// Seed is safe to run from several processes at once: the advisory lock
// serializes them and every one after the first sees a non-empty table.
func (s *catalogSeederImpl) Seed(ctx context.Context) (int, error) {
	inserted := 0
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted = 0
		if err := tx.RoomTypes().AcquireSeedLock(ctx, tx.DB()); err != nil {
			return err
		}

		count, err := tx.RoomTypes().Count(ctx, tx.DB())
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, p := range s.catalog {
			rt, err := roomtype.New(p)
			if err != nil {
				return errs.Wrap(err, "invalid catalog entry "+p.ID)
			}
			if err := tx.RoomTypes().Create(ctx, tx.DB(), rt); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		slog.InfoContext(ctx, "room catalog seeded", "room_types", inserted)
	}
	return inserted, nil
}
