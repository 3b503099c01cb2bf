package admin

import (
	"context"
	"crypto/subtle"

	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/password"
	"hotel-booking/internal/usecase/shared"
)

var ErrUnknownAdmin = errs.New("unknown admin")

// ConfigDirectory knows exactly one admin account, configured by username
// and bcrypt hash.
type ConfigDirectory struct {
	username     string
	passwordHash string
}

func NewConfigDirectory(cfg config.AdminConfig) *ConfigDirectory {
	return &ConfigDirectory{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
	}
}

func (d *ConfigDirectory) Verify(_ context.Context, username, plain string) (shared.AdminIdentity, error) {
	// hash is compared even for a wrong username so timing does not leak which part failed
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(d.username)) == 1
	pwErr := password.ComparePassword(d.passwordHash, plain)

	if !userOK {
		return shared.AdminIdentity{}, ErrUnknownAdmin
	}
	if pwErr != nil {
		return shared.AdminIdentity{}, pwErr
	}
	return shared.AdminIdentity{Username: d.username}, nil
}
