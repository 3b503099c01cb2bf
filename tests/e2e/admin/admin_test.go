//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/tests/common/authtest"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/dbtest"
	"hotel-booking/tests/common/httptest"
	"hotel-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/admin/login"
	logoutURL = "/api/admin/logout"
	blocksURL = "/api/admin/blocked-bookings"
)

type adminSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *adminSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: authtest.AdminUsername, password: authtest.AdminPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", username: authtest.AdminUsername, password: "wrong", expectedStatus: http.StatusUnauthorized},
		{name: "unknown user", username: "root", password: authtest.AdminPassword, expectedStatus: http.StatusUnauthorized},
		{name: "missing password", username: authtest.AdminUsername, password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			body := request.AdminLoginRequest{Username: tt.username, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				assert.Nil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
				return
			}
			var res resdto.LoginResponse
			httptest.DecodeResponseBody(t, w, &res)
			require.NotEmpty(t, res.Token)
			tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
			require.NotNil(t, tokenCookie)
			assert.Equal(t, res.Token, tokenCookie.Value)
			assert.True(t, tokenCookie.HttpOnly)

			// the issued token opens admin routes both ways
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, blocksURL, nil, res.Token)
			assert.Equal(t, http.StatusOK, w.Code)
			w = httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, blocksURL, nil, []*http.Cookie{tokenCookie}, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func (s *adminSuite) TestTokenRejection() {
	s.Run("expired token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, blocksURL, nil, s.jwt.CreateExpiredToken(t, authtest.AdminUsername))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("token signed elsewhere", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, blocksURL, nil, s.jwt.CreateForeignToken(t, authtest.AdminUsername))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("bearer header is used over an expired cookie", func() {
		t := s.T()
		stale := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.jwt.CreateExpiredToken(t, authtest.AdminUsername)}}
		fresh := s.jwt.GenerateAdminToken(t, authtest.AdminUsername)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, blocksURL, nil, stale, fresh)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("logout clears the cookie", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)
		cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})

	s.Run("login then logout round trip", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router, authtest.AdminUsername, authtest.AdminPassword)
		session := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		authtest.LogoutAdmin(t, s.Router, session)
	})
}

func (s *adminSuite) TestBlocks() {
	s.Run("create defaults the reason and lowers availability", func() {
		t := s.T()
		token := s.jwt.GenerateAdminToken(t, authtest.AdminUsername)
		req := builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.Reason = nil
			b.RoomName = ""
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL, req, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created resdto.BlockResponse
		httptest.DecodeResponseBody(t, w, &created)
		assert.Equal(t, "Offline booking", created.Reason)
		assert.Equal(t, "Double Room", created.RoomName)
		assert.Equal(t, "double-1", created.RoomType)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/rooms/availability?roomType=double-1&checkIn=2025-06-11&checkOut=2025-06-12", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var avail resdto.AvailabilityResponse
		httptest.DecodeResponseBody(t, w, &avail)
		assert.Equal(t, 1, avail.BlockedUnits)
		assert.Equal(t, 4, avail.AvailableUnits)
	})

	s.Run("block is accepted when nothing is free", func() {
		t := s.T()
		for i := range 5 {
			dbtest.InsertBooking(t, s.DB, builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.FullName = fmt.Sprintf("Guest %d", i)
			}))
		}
		token := s.jwt.GenerateAdminToken(t, authtest.AdminUsername)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL, builder.NewBlockBuilder().BuildCreateRequestDTO(), token)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("list then delete", func() {
		t := s.T()
		first := dbtest.InsertBlock(t, s.DB, builder.NewBlockBuilder())
		dbtest.InsertBlock(t, s.DB, builder.NewBlockBuilder().With(func(b *builder.BlockBuilder) {
			b.RoomUnit = "102"
			b.Now = b.Now.AddDate(0, 0, 1)
		}))
		token := s.jwt.GenerateAdminToken(t, authtest.AdminUsername)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, blocksURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var blocks []resdto.BlockResponse
		httptest.DecodeResponseBody(t, w, &blocks)
		require.Len(t, blocks, 2)
		assert.Equal(t, "102", blocks[0].RoomUnit)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, blocksURL+"/"+first.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, blocksURL+"/"+first.String(), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Blocked booking not found")
	})

	s.Run("unknown room type", func() {
		t := s.T()
		token := s.jwt.GenerateAdminToken(t, authtest.AdminUsername)
		req := builder.NewBlockBuilder().BuildCreateRequestDTO()
		req.RoomType = "penthouse-1"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Room type not found")
	})

	s.Run("requires a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL, builder.NewBlockBuilder().BuildCreateRequestDTO(), "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
