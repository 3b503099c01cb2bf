//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/dto/request"
	"hotel-booking/internal/pkg/cookie"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// matches the ADMIN_PASSWORD_HASH the test environments configure
const (
	AdminUsername     = "admin"
	AdminPassword     = "admin123"
	AdminPasswordHash = "$2b$10$UTtLrEd9A8SSAmPoZ1chOuKXJN18qKc/sOlzznIysi3JoblDgNcru"
)

// LoginAdmin returns the token from the cookie set by the login endpoint.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokenCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, tokenCookie, "admin token not found in cookies")
	require.NotEmpty(t, tokenCookie.Value, "admin token cookie is empty")

	return tokenCookie.Value
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
