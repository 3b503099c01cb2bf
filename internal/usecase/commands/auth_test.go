//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/shared"
	commandsmock "hotel-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setup     func(dir *commandsmock.MockAdminDirectory, issuer *commandsmock.MockTokenIssuer)
		expectErr error
	}{
		{
			name: "success",
			setup: func(dir *commandsmock.MockAdminDirectory, issuer *commandsmock.MockTokenIssuer) {
				dir.EXPECT().Verify(gomock.Any(), "admin", "admin123").Return(shared.AdminIdentity{Username: "admin"}, nil)
				issuer.EXPECT().GenerateAdminToken("admin").Return("signed-token", nil)
				issuer.EXPECT().TokenDuration().Return(24 * time.Hour)
			},
		},
		{
			name: "wrong credentials",
			setup: func(dir *commandsmock.MockAdminDirectory, issuer *commandsmock.MockTokenIssuer) {
				dir.EXPECT().Verify(gomock.Any(), "admin", "admin123").Return(shared.AdminIdentity{}, errors.New("password mismatch"))
			},
			expectErr: commands.ErrInvalidCredentials,
		},
		{
			name: "signing failure",
			setup: func(dir *commandsmock.MockAdminDirectory, issuer *commandsmock.MockTokenIssuer) {
				dir.EXPECT().Verify(gomock.Any(), "admin", "admin123").Return(shared.AdminIdentity{Username: "admin"}, nil)
				issuer.EXPECT().GenerateAdminToken("admin").Return("", errors.New("bad key"))
			},
			expectErr: commands.ErrTokenGeneration,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			dir := commandsmock.NewMockAdminDirectory(ctrl)
			issuer := commandsmock.NewMockTokenIssuer(ctrl)
			tc.setup(dir, issuer)

			result, err := commands.NewAuthCommands(dir, issuer).Login(ctx, "admin", "admin123")
			if tc.expectErr != nil {
				assert.True(t, errs.Is(err, tc.expectErr), "got %v", err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed-token", result.Token)
			assert.Equal(t, "admin", result.Identity.Username)
			assert.Equal(t, 24*time.Hour, result.ExpiresIn)
		})
	}
}
