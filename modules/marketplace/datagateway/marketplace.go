package datagateway

import (
	"context"

	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

type MarketplaceDataGateway interface {
	MarketplaceReaderDataGateway
	MarketplaceWriterDataGateway

	// BeginMarketplaceTx returns a new MarketplaceDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginMarketplaceTx(ctx context.Context) (MarketplaceDataGatewayWithTx, error)
}

type MarketplaceDataGatewayWithTx interface {
	MarketplaceDataGateway
	Tx
}

// EntityReader reads the latest version of snapshot entities.
type EntityReader interface {
	// GetEntity returns the latest encoded snapshot of the entity. Returns errs.NotFound if the entity does not exist.
	GetEntity(ctx context.Context, kind entity.Kind, id string) ([]byte, error)
}

// EntityWriter writes full entity snapshots versioned by block height.
type EntityWriter interface {
	// PutEntity upserts the full snapshot of the entity at the given block height.
	// Writing the same entity twice at the same height keeps the last write.
	PutEntity(ctx context.Context, kind entity.Kind, id string, blockHeight int64, data []byte) error
}

type EntityStore interface {
	EntityReader
	EntityWriter
}

type MarketplaceReaderDataGateway interface {
	EntityReader

	// GetLatestBlock returns the latest indexed block header. Returns errs.NotFound if no block is indexed.
	GetLatestBlock(ctx context.Context) (types.BlockHeader, error)
	// GetIndexedBlockByHeight returns the indexed block at the given height. Returns errs.NotFound if the block is not indexed.
	GetIndexedBlockByHeight(ctx context.Context, height int64) (*entity.IndexedBlock, error)
}

type MarketplaceWriterDataGateway interface {
	EntityWriter

	CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error

	// DeleteEntitiesSinceHeight removes every entity version written at or above the height,
	// restoring the snapshot as it was before that block.
	DeleteEntitiesSinceHeight(ctx context.Context, height int64) error
	DeleteIndexedBlocksSinceHeight(ctx context.Context, height int64) error
}
