package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, pageLimit int32) ([]sqlc.Bookings, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindFirstPage(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		PageLimit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by keyset", err)
	}
	return toBookingViews(rows), nil
}

func toBookingViews(rows []sqlc.Bookings) []*queries.BookingView {
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(row)
	}
	return result
}

func toBookingView(row sqlc.Bookings) *queries.BookingView {
	return &queries.BookingView{
		ID:              row.ID,
		RoomTypeID:      row.RoomType,
		RoomName:        row.RoomName,
		CheckIn:         pgconv.TimeFromPgtype(row.CheckIn),
		CheckOut:        pgconv.TimeFromPgtype(row.CheckOut),
		Guests:          int(row.Guests),
		FullName:        row.FullName,
		Email:           row.Email,
		Phone:           pgconv.StringPtrFromPgtype(row.Phone),
		Nights:          int(row.Nights),
		TotalPriceCents: row.TotalPriceCents,
		Status:          row.Status,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		CancelledAt:     pgconv.TimePtrFromPgtype(row.CancelledAt),
	}
}
