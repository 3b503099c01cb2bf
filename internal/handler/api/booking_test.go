//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/roomtype"
	"hotel-booking/internal/handler/api"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/common/testutil"
	commandsmock "hotel-booking/tests/mock/commands"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	requireAdmin := newAuthMiddleware(s.mockCtrl).RequireAdmin()

	s.router.POST("/api/bookings", s.handler.Create)
	s.router.GET("/api/bookings", requireAdmin, s.handler.List)
	s.router.GET("/api/bookings/:id", requireAdmin, s.handler.Get)
	s.router.DELETE("/api/bookings/:id", requireAdmin, s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	created, err := builder.NewBookingBuilder().BuildDomain()
	s.Require().NoError(err)

	bound := []testCaseBooking{
		{name: "guests boundary OK (1)", mutate: testutil.Field("guests", 1), expectCode: http.StatusCreated},
		{name: "guests boundary invalid (0)", mutate: testutil.Field("guests", 0), expectCode: http.StatusBadRequest},
		{name: "guests as string OK (\"2\")", mutate: testutil.Field("guests", "2"), expectCode: http.StatusCreated},
		{name: "guests as string invalid (\"0\")", mutate: testutil.Field("guests", "0"), expectCode: http.StatusBadRequest},
		{name: "fullName length OK (200 chars)", mutate: testutil.Field("fullName", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "fullName length invalid (201 chars)", mutate: testutil.Field("fullName", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "date-only check in OK", mutate: testutil.Field("checkIn", "2025-06-10"), expectCode: http.StatusCreated},
	}

	missing := []testCaseBooking{
		{name: "missing field: roomType (required)", mutate: testutil.Field("roomType", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: checkIn (required)", mutate: testutil.Field("checkIn", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: checkOut (required)", mutate: testutil.Field("checkOut", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: fullName (required)", mutate: testutil.Field("fullName", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: phone (optional)", mutate: testutil.Field("phone", nil), expectCode: http.StatusCreated},
	}

	malformed := []testCaseBooking{
		{name: "roomType is not a slug", mutate: testutil.Field("roomType", "Double Room"), expectCode: http.StatusBadRequest},
		{name: "guests is not a number", mutate: testutil.Field("guests", "two"), expectCode: http.StatusBadRequest},
		{name: "guests is fractional", mutate: testutil.Field("guests", 1.5), expectCode: http.StatusBadRequest},
		{name: "email is malformed", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
		{name: "checkIn is not a date", mutate: testutil.Field("checkIn", "next tuesday"), expectCode: http.StatusBadRequest, expectInBody: "Invalid date format"},
		{name: "checkOut before checkIn", mutate: testutil.Field("checkOut", "2025-06-01"), expectCode: http.StatusBadRequest, expectInBody: "Check-out must be after check-in"},
		{name: "checkOut equals checkIn", mutate: testutil.Field("checkOut", reqBody.CheckIn), expectCode: http.StatusBadRequest, expectInBody: "Check-out must be after check-in"},
	}

	allValidationTestCases := [][]testCaseBooking{bound, missing, malformed}

	s.Run("success: returns 201 Created with the booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest) (*booking.Booking, error) {
				s.Equal("double-1", req.RoomTypeID)
				s.Equal(3, req.Stay.Nights())
				s.Equal("Hanako Yamada", req.Contact.FullName)
				return created, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID(), body.ID)
		s.Equal("double-1", body.RoomType)
		s.Equal(3, body.Nights)
		s.InDelta(597.0, body.TotalPrice, 0.001)
		s.Equal("confirmed", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + created.ID().String()})
	})

	s.Run("success: guests sent as a string by the booking form", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest) (*booking.Booking, error) {
				s.Equal(2, req.Guests)
				return created, nil
			}).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("guests", "2"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
							Return(created, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown room type",
				commandsError:  commands.ErrRoomTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room type not found",
			},
			{
				name:           "no availability",
				commandsError:  errs.Mark(errors.New("no rooms available"), commands.ErrNoAvailability),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No rooms available for selected dates",
			},
			{
				name:           "guest limit",
				commandsError:  errs.Mark(roomtype.ErrGuestLimit, commands.ErrInvalidBooking),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Guest count exceeds",
			},
			{
				name:           "stay too short",
				commandsError:  errs.Mark(booking.ErrStayTooShort, commands.ErrInvalidInterval),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "at least one night",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"
	items := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: returns a plain array without paging", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Empty(rec.Header().Get("X-Next-Cursor"))
	})

	s.Run("success: paging sends the next cursor in a header", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), &queries.Cursor{After: "abc"}, 2).
			Return(items, &queries.Cursor{After: "next-page"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2&after=abc", nil, adminToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Next-Cursor": "next-page"})
	})

	s.Run("error: 400 Bad Request for limit above maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=201", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=zzz", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized with invalid token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/api/bookings/" + view.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.RoomTypeID, body.RoomType)
		s.Equal(view.FullName, body.FullName)
		s.InDelta(float64(view.TotalPriceCents)/100, body.TotalPrice, 0.001)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/invalid-uuid", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	b, err := builder.NewBookingBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(b.Cancel(clock.NewRealClock()))
	url := "/api/bookings/" + b.ID().String()

	s.Run("success: returns 200 OK with the cancelled booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), b.ID(), shared.AdminIdentity{Username: "admin"}).
			Return(b, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("cancelled", body.Status)
		s.NotNil(body.CancelledAt)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/invalid-uuid", nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already cancelled",
				commandsError:  errs.Mark(booking.ErrAlreadyCancelled, commands.ErrBookingAlreadyCancelled),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking is already cancelled",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelBooking(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/bookings/"+uuid.NewString(), nil, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
