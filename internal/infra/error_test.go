//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"hotel-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, nil, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, nil, infra.KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, nil, infra.KindForeignKeyViolated},
		{"check violation", &pgconn.PgError{Code: "23514"}, nil, infra.KindConflict},
		{"anything else", errors.New("connection reset"), nil, infra.KindDBFailure},
		{"explicit kind wins", errors.New("boom"), []infra.RepositoryErrorKind{infra.KindNotFound}, infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.expected), "got %v", err)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
