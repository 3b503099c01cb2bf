//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, duration time.Duration) *jwt.Service {
	t.Helper()
	if duration == 0 {
		d, err := time.ParseDuration(h.cfg.Duration)
		require.NoError(t, err)
		duration = d
	}
	return jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer)
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T, username string) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateAdminToken(username)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string) string {
	t.Helper()
	token, err := h.service(t, time.Millisecond).GenerateAdminToken(username)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}

// signed with a different secret
func (h *JWTHelper) CreateForeignToken(t *testing.T, username string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour, h.cfg.Issuer).GenerateAdminToken(username)
	require.NoError(t, err)
	return token
}
