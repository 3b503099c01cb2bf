package queries

//go:generate mockgen -source=blocks.go -destination=../../../tests/mock/queries/blocks_mock.go -package=queriesmock

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBlockNotFound = errs.New("blocked booking not found")

type BlockReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BlockView, error)
	FindAll(ctx context.Context) ([]*BlockView, error)
}

type BlockQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BlockView, error)
	List(ctx context.Context) ([]*BlockView, error)
}

type blockQueriesImpl struct {
	repo BlockReadStore
}

func NewBlockQueries(repo BlockReadStore) BlockQueries {
	return &blockQueriesImpl{repo: repo}
}

func (q *blockQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BlockView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBlockNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (q *blockQueriesImpl) List(ctx context.Context) ([]*BlockView, error) {
	return q.repo.FindAll(ctx)
}
