package queries

//go:generate mockgen -source=rooms.go -destination=../../../tests/mock/queries/rooms_mock.go -package=queriesmock

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
)

var ErrRoomTypeNotFound = errs.New("room type not found")

// RoomTypeReadStore is satisfied by the Postgres read store and by the
// Redis read-through cache wrapping it.
type RoomTypeReadStore interface {
	FindAll(ctx context.Context) ([]*RoomTypeView, error)
	FindByID(ctx context.Context, id string) (*RoomTypeView, error)
}

type RoomQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetRoomType(ctx context.Context, id string) (*RoomTypeView, error)
}

type roomQueriesImpl struct {
	store RoomTypeReadStore
}

func NewRoomQueries(store RoomTypeReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.store.FindAll(ctx)
}

func (q *roomQueriesImpl) GetRoomType(ctx context.Context, id string) (*RoomTypeView, error) {
	rt, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRoomTypeNotFound)
		}
		return nil, err
	}
	return rt, nil
}
