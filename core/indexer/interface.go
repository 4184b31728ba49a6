package indexer

import (
	"context"
	"time"

	"github.com/gaze-network/marketplace-indexer/core/types"
)

// Input is a unit of data the indexer feeds to a Processor. It must expose the header of the block it belongs to.
type Input interface {
	BlockHeader() types.BlockHeader
}

// Processor applies fetched inputs to the indexer's own state.
type Processor[T Input] interface {
	Name() string

	// Process processes the input data and indexes it.
	Process(ctx context.Context, inputs []T) error

	// CurrentBlock returns the latest indexed block header.
	CurrentBlock(ctx context.Context) (types.BlockHeader, error)

	// GetIndexedBlock returns the indexed block header by the specific block height.
	GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error)

	// RevertData revert synced data to the specific block height.
	RevertData(ctx context.Context, from int64) error

	// VerifyStates verifies the states of the indexed data and the indexer
	// to ensure the last shutdown was graceful and no missing data.
	VerifyStates(ctx context.Context) error

	Shutdown(ctx context.Context) error
}

// IndexerWorker is a running indexer as seen by the CLI.
type IndexerWorker interface {
	Run(ctx context.Context) error
	Shutdown() error
	ShutdownWithTimeout(timeout time.Duration) error
	ShutdownWithContext(ctx context.Context) error
}
