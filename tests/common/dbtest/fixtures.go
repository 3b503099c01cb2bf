//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Conn is satisfied by *pgxpool.Pool and pgx.Tx, so fixtures can be
// written inside a test transaction as well.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertBooking(t *testing.T, db Conn, b *builder.BookingBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, room_type, room_name, check_in, check_out, guests, full_name, email, phone, nights, total_price_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		row.ID, row.RoomType, row.RoomName, row.CheckIn, row.CheckOut, row.Guests, row.FullName, row.Email,
		row.Phone, row.Nights, row.TotalPriceCents, row.Status, row.CreatedAt)
	require.NoError(t, err)

	return row.ID
}

func InsertBlock(t *testing.T, db Conn, b *builder.BlockBuilder) uuid.UUID {
	t.Helper()

	row := b.BuildInfra()
	_, err := db.Exec(context.Background(), `
		INSERT INTO blocked_bookings (id, room_id, room_type, room_name, room_unit, check_in, check_out, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		row.ID, row.RoomID, row.RoomType, row.RoomName, row.RoomUnit, row.CheckIn, row.CheckOut, row.Reason, row.CreatedAt)
	require.NoError(t, err)

	return row.ID
}

func CountBookings(t *testing.T, db Conn, roomTypeID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_type = $1 AND status = $2", roomTypeID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// inserts the initial room catalog
func SeedReferenceData(db Conn) error {
	ctx := context.Background()

	for _, p := range roomtype.InitialCatalog() {
		_, err := db.Exec(ctx, `
			INSERT INTO room_types (id, type, available, price_cents, description, amenities, image, max_guests)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.TotalUnits, p.PriceCents, p.Description, p.Amenities, p.Image, p.MaxGuests)
		if err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
