//go:build unit

package commands_test

import (
	"context"
	"sync"

	"hotel-booking/internal/domain/availability"
	"hotel-booking/internal/domain/block"
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/period"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for Postgres. Per room type mutexes
// play the role of SELECT ... FOR UPDATE and are held until Within returns.
type memoryStore struct {
	mu        sync.Mutex
	roomTypes map[string]roomtype.Params
	roomLocks map[string]*sync.Mutex
	bookings  map[uuid.UUID]booking.Snapshot
	blocks    map[uuid.UUID]block.Snapshot
}

func newMemoryStore(catalog ...roomtype.Params) *memoryStore {
	s := &memoryStore{
		roomTypes: map[string]roomtype.Params{},
		roomLocks: map[string]*sync.Mutex{},
		bookings:  map[uuid.UUID]booking.Snapshot{},
		blocks:    map[uuid.UUID]block.Snapshot{},
	}
	for _, p := range catalog {
		s.roomTypes[p.ID] = p
		s.roomLocks[p.ID] = &sync.Mutex{}
	}
	return s
}

func (s *memoryStore) confirmedCount(roomTypeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.RoomTypeID == roomTypeID && b.Status == booking.StatusConfirmed {
			n++
		}
	}
	return n
}

type memoryUoW struct {
	store *memoryStore
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memoryTx{store: u.store}
	defer tx.release()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// memoryTx buffers writes and applies them on commit.
type memoryTx struct {
	store     *memoryStore
	held      []*sync.Mutex
	bookings  []booking.Snapshot
	blocks    []block.Snapshot
	deletes   []uuid.UUID
	roomTypes []roomtype.Params
}

func (t *memoryTx) release() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.held[i].Unlock()
	}
	t.held = nil
}

func (t *memoryTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, b := range t.bookings {
		t.store.bookings[b.ID] = b
	}
	for _, b := range t.blocks {
		t.store.blocks[b.ID] = b
	}
	for _, id := range t.deletes {
		delete(t.store.blocks, id)
	}
	for _, p := range t.roomTypes {
		t.store.roomTypes[p.ID] = p
		t.store.roomLocks[p.ID] = &sync.Mutex{}
	}
}

func (t *memoryTx) RoomTypes() shared.RoomTypeRepository { return &memoryRoomTypes{tx: t} }
func (t *memoryTx) Bookings() shared.BookingRepository   { return &memoryBookings{tx: t} }
func (t *memoryTx) Blocks() shared.BlockRepository       { return &memoryBlocks{tx: t} }
func (t *memoryTx) Reads() shared.CommandReads           { return t }
func (t *memoryTx) DB() sqlc.DBTX                        { return nil }

func (t *memoryTx) roomTypeByID(id string) (*roomtype.RoomType, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	p, ok := t.store.roomTypes[id]
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	return roomtype.Reconstruct(p), nil
}

func (t *memoryTx) bookingByID(id uuid.UUID) (*booking.Booking, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	s, ok := t.store.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return booking.Reconstruct(s), nil
}

func (t *memoryTx) Occupancy(_ context.Context, roomTypeID string, query period.Period) (*shared.OccupancySnapshot, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	snap := &shared.OccupancySnapshot{}
	for _, b := range t.store.blocks {
		if b.RoomTypeID == roomTypeID && b.Stay.Overlaps(query) {
			snap.Holds = append(snap.Holds, availability.Hold{Unit: b.RoomUnit, Stay: b.Stay})
		}
	}
	for _, b := range t.store.bookings {
		if b.RoomTypeID == roomTypeID && b.Stay.Overlaps(query) {
			snap.Stays = append(snap.Stays, availability.Stay{Period: b.Stay, Confirmed: b.Status == booking.StatusConfirmed})
		}
	}
	return snap, nil
}

type memoryRoomTypes struct{ tx *memoryTx }

func (r *memoryRoomTypes) LockByID(_ context.Context, _ sqlc.DBTX, id string) (*roomtype.RoomType, error) {
	r.tx.store.mu.Lock()
	lock, ok := r.tx.store.roomLocks[id]
	r.tx.store.mu.Unlock()
	if !ok {
		return nil, infra.WrapRepoErr("room type not found", nil, infra.KindNotFound)
	}
	lock.Lock()
	r.tx.held = append(r.tx.held, lock)
	return r.tx.roomTypeByID(id)
}

func (r *memoryRoomTypes) Count(_ context.Context, _ sqlc.DBTX) (int64, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()
	return int64(len(r.tx.store.roomTypes)), nil
}

func (r *memoryRoomTypes) Create(_ context.Context, _ sqlc.DBTX, rt *roomtype.RoomType) error {
	r.tx.roomTypes = append(r.tx.roomTypes, rt.Params())
	return nil
}

func (r *memoryRoomTypes) AcquireSeedLock(_ context.Context, _ sqlc.DBTX) error {
	return nil
}

type memoryBookings struct{ tx *memoryTx }

func (r *memoryBookings) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.tx.bookings = append(r.tx.bookings, b.Snapshot())
	return nil
}

func (r *memoryBookings) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	return r.tx.bookingByID(id)
}

func (r *memoryBookings) MarkCancelled(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	r.tx.bookings = append(r.tx.bookings, b.Snapshot())
	return nil
}

type memoryBlocks struct{ tx *memoryTx }

func (r *memoryBlocks) Create(_ context.Context, _ sqlc.DBTX, b *block.BlockedBooking) error {
	r.tx.blocks = append(r.tx.blocks, b.Snapshot())
	return nil
}

func (r *memoryBlocks) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	r.tx.store.mu.Lock()
	_, ok := r.tx.store.blocks[id]
	r.tx.store.mu.Unlock()
	if !ok {
		return infra.WrapRepoErr("block not found", nil, infra.KindNotFound)
	}
	r.tx.deletes = append(r.tx.deletes, id)
	return nil
}
