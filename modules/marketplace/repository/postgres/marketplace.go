package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/postgres/gen"
	"github.com/jackc/pgx/v5"
)

var _ datagateway.MarketplaceDataGateway = (*Repository)(nil)

func (r *Repository) GetEntity(ctx context.Context, kind entity.Kind, id string) ([]byte, error) {
	data, err := r.queries.GetEntity(ctx, gen.GetEntityParams{
		Kind: string(kind),
		ID:   id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	return data, nil
}

func (r *Repository) PutEntity(ctx context.Context, kind entity.Kind, id string, blockHeight int64, data []byte) error {
	if err := r.queries.PutEntity(ctx, gen.PutEntityParams{
		Kind:        string(kind),
		ID:          id,
		BlockHeight: blockHeight,
		Data:        data,
	}); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteEntitiesSinceHeight(ctx context.Context, height int64) error {
	if err := r.queries.DeleteEntitiesSinceHeight(ctx, height); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) GetLatestBlock(ctx context.Context) (types.BlockHeader, error) {
	block, err := r.queries.GetLatestIndexedBlock(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.BlockHeader{}, errors.WithStack(errs.NotFound)
		}
		return types.BlockHeader{}, errors.Wrap(err, "error during query")
	}
	indexedBlock, err := mapIndexedBlockModelToType(block)
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to parse indexed block model")
	}
	return indexedBlock.BlockHeader(), nil
}

func (r *Repository) GetIndexedBlockByHeight(ctx context.Context, height int64) (*entity.IndexedBlock, error) {
	indexedBlockModel, err := r.queries.GetIndexedBlockByHeight(ctx, height)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.WithStack(errs.NotFound)
		}
		return nil, errors.Wrap(err, "error during query")
	}
	indexedBlock, err := mapIndexedBlockModelToType(indexedBlockModel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse indexed block model")
	}
	return indexedBlock, nil
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error {
	if err := r.queries.CreateIndexedBlock(ctx, mapIndexedBlockTypeToParams(*block)); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, height int64) error {
	if err := r.queries.DeleteIndexedBlocksSinceHeight(ctx, height); err != nil {
		return errors.Wrap(err, "error during exec")
	}
	return nil
}
