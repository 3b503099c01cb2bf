package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"
)

// AdminDirectory verifies admin credentials. Implementations own the
// credential material; the use case only sees the resulting identity.
type AdminDirectory interface {
	Verify(ctx context.Context, username, password string) (shared.AdminIdentity, error)
}

type TokenIssuer interface {
	GenerateAdminToken(username string) (string, error)
	TokenDuration() time.Duration
}

type LoginResult struct {
	Identity  shared.AdminIdentity
	Token     string
	ExpiresIn time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	directory AdminDirectory
	issuer    TokenIssuer
}

func NewAuthCommands(directory AdminDirectory, issuer TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		directory: directory,
		issuer:    issuer,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	identity, err := a.directory.Verify(ctx, username, password)
	if err != nil {
		slog.InfoContext(ctx, "admin login rejected", "username", username)
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.issuer.GenerateAdminToken(identity.Username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Identity:  identity,
		Token:     token,
		ExpiresIn: a.issuer.TokenDuration(),
	}, nil
}
