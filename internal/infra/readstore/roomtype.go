package readstore

//go:generate mockgen -source=roomtype.go -destination=../../../tests/mock/readstore/roomtype_mock.go -package=readstoremock

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type RoomTypeReadQueries interface {
	ListRoomTypes(ctx context.Context, db sqlc.DBTX) ([]sqlc.RoomTypes, error)
	GetRoomTypeByID(ctx context.Context, db sqlc.DBTX, id string) (sqlc.RoomTypes, error)
}

type RoomTypeReadStore struct {
	queries RoomTypeReadQueries
	db      sqlc.DBTX
}

func NewRoomTypeReadStore(queries RoomTypeReadQueries, db sqlc.DBTX) *RoomTypeReadStore {
	return &RoomTypeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomTypeReadStore) FindAll(ctx context.Context) ([]*queries.RoomTypeView, error) {
	rows, err := r.queries.ListRoomTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}

	result := make([]*queries.RoomTypeView, len(rows))
	for i, row := range rows {
		result[i] = toRoomTypeView(row)
	}
	return result, nil
}

func (r *RoomTypeReadStore) FindByID(ctx context.Context, id string) (*queries.RoomTypeView, error) {
	row, err := r.queries.GetRoomTypeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by id", err)
	}
	return toRoomTypeView(row), nil
}

func toRoomTypeView(row sqlc.RoomTypes) *queries.RoomTypeView {
	amenities := row.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &queries.RoomTypeView{
		ID:          row.ID,
		Name:        row.Type,
		TotalUnits:  int(row.Available),
		PriceCents:  row.PriceCents,
		Description: row.Description,
		Amenities:   amenities,
		Image:       row.Image,
		MaxGuests:   int(row.MaxGuests),
	}
}
