//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/roomtype"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) adminToken() string {
	return authtest.LoginAdmin(s.T(), s.Router, authtest.AdminUsername, authtest.AdminPassword)
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("confirmed booking snapshots name and price", func() {
		t := s.T()
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &res)
		assert.Equal(t, "double-1", res.RoomType)
		assert.Equal(t, "Double Room", res.RoomName)
		assert.Equal(t, 3, res.Nights)
		assert.InDelta(t, 597.0, res.TotalPrice, 0.0001)
		assert.Equal(t, "confirmed", res.Status)
		assert.Equal(t, "/api/bookings/"+res.ID.String(), w.Header().Get("Location"))
		httptest.AssertHeaderPresent(t, w, "X-Request-ID")

		assert.Equal(t, 1, dbtest.CountBookings(t, s.DB, "double-1", string(booking.StatusConfirmed)))
	})

	s.Run("unknown room type is 404", func() {
		t := s.T()
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.RoomType = "penthouse-1"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room type not found")
	})

	s.Run("too many guests is 400", func() {
		t := s.T()
		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.Guests = 3
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Guest count exceeds")
	})

	s.Run("reversed stay is 400", func() {
		t := s.T()
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()
		req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Check-out must be after check-in")
	})

	s.Run("fully blocked room type is 409", func() {
		t := s.T()
		for i := range 5 {
			dbtest.InsertBlock(t, s.DB, builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
				b.RoomUnit = fmt.Sprintf("10%d", i+1)
				b.CheckOut = b.CheckIn.AddDate(0, 0, 5)
			}))
		}
		req := builder.NewBookingBuilder().BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No rooms available")
		assert.Equal(t, 0, dbtest.CountBookings(t, s.DB, "double-1", string(booking.StatusConfirmed)))
	})

	s.Run("confirmed bookings consume units", func() {
		t := s.T()
		single := roomtype.InitialCatalog()[1]
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomType = single
		})
		for range single.TotalUnits {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "No rooms available")

		// the following stay starts on the previous check-out day
		next := b.With(func(b *builder.BookingBuilder) {
			b.CheckIn, b.CheckOut = b.CheckOut, b.CheckOut.AddDate(0, 0, 2)
		}).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, next, "")
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *bookingSuite) TestCreateBooking_Concurrent() {
	s.Run("last free unit is admitted exactly once", func() {
		t := s.T()
		villa := roomtype.InitialCatalog()[2]
		// one of the two villas is blocked, leaving one free unit
		dbtest.InsertBlock(t, s.DB, builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomType = villa
			b.RoomID = villa.ID
			b.RoomUnit = "V1"
			b.CheckIn = b.CheckIn.AddDate(0, 0, -5)
			b.CheckOut = b.CheckIn.AddDate(0, 0, 30)
		}))

		req := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomType = villa
			b.Guests = 4
		}).BuildCreateRequestDTO()

		const attempts = 12
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "").Code
			}()
		}
		wg.Wait()

		created, conflicts := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		assert.Equal(t, 1, created)
		assert.Equal(t, attempts-1, conflicts)
		assert.Equal(t, 1, dbtest.CountBookings(t, s.DB, villa.ID, string(booking.StatusConfirmed)))
	})
}

func (s *bookingSuite) TestAdminBookingOperations() {
	s.Run("list requires a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("list is newest first and pages with a cursor", func() {
		t := s.T()
		base := builder.NewBookingBuilder()
		for i := range 3 {
			dbtest.InsertBooking(t, s.DB, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.FullName = fmt.Sprintf("Guest %d", i)
				b.Now = base.Now.AddDate(0, 0, i)
			}))
		}
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var all []resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &all)
		require.Len(t, all, 3)
		assert.Equal(t, "Guest 2", all[0].FullName)
		assert.Equal(t, "Guest 0", all[2].FullName)
		assert.Empty(t, w.Header().Get("X-Next-Cursor"))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var first []resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &first)
		require.Len(t, first, 2)
		cursor := w.Header().Get("X-Next-Cursor")
		require.NotEmpty(t, cursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2&after="+cursor, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var second []resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &second)
		require.Len(t, second, 1)
		assert.Equal(t, "Guest 0", second[0].FullName)
		assert.Empty(t, w.Header().Get("X-Next-Cursor"))
	})

	s.Run("cancel frees the unit and cannot repeat", func() {
		t := s.T()
		single := roomtype.InitialCatalog()[1]
		b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.RoomType = single
		})
		var ids []string
		for range single.TotalUnits {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			var res resdto.BookingResponse
			httptest.DecodeResponseBody(t, w, &res)
			ids = append(ids, res.ID.String())
		}
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+ids[0], nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var cancelled resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &cancelled)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/"+ids[0], nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Booking is already cancelled")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+ids[0], nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var fetched resdto.BookingResponse
		httptest.DecodeResponseBody(t, w, &fetched)
		assert.Equal(t, "cancelled", fetched.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, b.BuildCreateRequestDTO(), "")
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, 1, dbtest.CountBookings(t, s.DB, single.ID, string(booking.StatusCancelled)))
	})

	s.Run("unknown and malformed ids", func() {
		t := s.T()
		token := s.adminToken()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, bookingsURL+"/00000000-0000-0000-0000-000000000001", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/not-a-uuid", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid id")
	})
}
