package indexer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

const (
	// DefaultMaxReorgLookBack is the default number of blocks walked back while searching for a fork point.
	DefaultMaxReorgLookBack = 1000

	// DefaultPollingInterval is the default polling interval for the indexer polling worker
	DefaultPollingInterval = 12 * time.Second

	shutdownTimeout = 180 * time.Second
)

var _ IndexerWorker = (*Indexer[*types.Block])(nil)

// Indexer generic indexer for fetching and processing data
type Indexer[T Input] struct {
	Processor    Processor[T]
	Datasource   datasources.Datasource[T]
	currentBlock types.BlockHeader

	pollingInterval  time.Duration
	maxReorgLookBack int

	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

type Option func(*options)

type options struct {
	pollingInterval  time.Duration
	maxReorgLookBack int
}

func WithPollingInterval(interval time.Duration) Option {
	return func(o *options) { o.pollingInterval = interval }
}

func WithMaxReorgLookBack(n int) Option {
	return func(o *options) { o.maxReorgLookBack = n }
}

// New create new generic indexer
func New[T Input](processor Processor[T], datasource datasources.Datasource[T], opts ...Option) *Indexer[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Indexer[T]{
		Processor:        processor,
		Datasource:       datasource,
		pollingInterval:  utils.Default(o.pollingInterval, DefaultPollingInterval),
		maxReorgLookBack: utils.Default(o.maxReorgLookBack, DefaultMaxReorgLookBack),

		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (i *Indexer[T]) Shutdown() error {
	return i.ShutdownWithContext(context.Background())
}

func (i *Indexer[T]) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return i.ShutdownWithContext(ctx)
}

func (i *Indexer[T]) ShutdownWithContext(ctx context.Context) (err error) {
	i.quitOnce.Do(func() {
		close(i.quit)
		select {
		case <-i.done:
		case <-time.After(shutdownTimeout):
			err = errors.Wrap(errs.Timeout, "indexer shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "indexer shutdown context canceled")
		}
	})
	return
}

func (i *Indexer[T]) Run(ctx context.Context) (err error) {
	defer close(i.done)

	ctx = logger.WithContext(ctx,
		slog.String("package", "indexer"),
		slog.String("processor", i.Processor.Name()),
		slog.String("datasource", i.Datasource.Name()),
	)

	// Height -1 means nothing indexed yet, start from genesis block
	i.currentBlock, err = i.Processor.CurrentBlock(ctx)
	if err != nil {
		if !errors.Is(err, errs.NotFound) {
			return errors.Wrap(err, "can't init state, failed to get indexer current block")
		}
		i.currentBlock = types.BlockHeader{Height: -1}
	}

	ticker := time.NewTicker(i.pollingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-i.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping indexer")
			if err := i.Processor.Shutdown(ctx); err != nil {
				logger.ErrorContext(ctx, "Failed to shutdown processor", slogx.Error(err))
				return errors.Wrap(err, "processor shutdown failed")
			}
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := i.process(ctx); err != nil {
				logger.ErrorContext(ctx, "Indexer failed while processing", slogx.Error(err))
				return errors.Wrap(err, "process failed")
			}
			logger.DebugContext(ctx, "Waiting for next polling interval")
		}
	}
}

func (i *Indexer[T]) process(ctx context.Context) (err error) {
	from, to := i.currentBlock.Height+1, int64(-1)

	logger.InfoContext(ctx, "Start fetching input data", slog.Int64("from", from))
	ch := make(chan []T)
	subscription, err := i.Datasource.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return errors.Wrap(err, "failed to fetch input data")
	}
	defer subscription.Unsubscribe()

	for {
		select {
		case <-i.quit:
			return nil
		case inputs := <-ch:
			if len(inputs) == 0 {
				continue
			}

			firstHeader := inputs[0].BlockHeader()
			startAt := time.Now()
			ctx := logger.WithContext(ctx,
				slogx.Int64("from", firstHeader.Height),
				slogx.Int64("to", inputs[len(inputs)-1].BlockHeader().Height),
			)

			if firstHeader.PrevBlock != i.currentBlock.Hash {
				// end current round, next round fetches again from the fork point
				return errors.WithStack(i.revertToForkPoint(ctx, firstHeader))
			}

			if !isContinuous(ctx, inputs) {
				logger.WarnContext(ctx, "Chain Reorganization occurred in the middle of batch fetching inputs, need to try to fetch again")
				return nil
			}

			ctx = logger.WithContext(ctx, slog.Int("total_inputs", len(inputs)))

			logger.InfoContext(ctx, "Processing inputs")
			if err := i.Processor.Process(ctx, inputs); err != nil {
				return errors.WithStack(err)
			}

			i.currentBlock = inputs[len(inputs)-1].BlockHeader()

			logger.InfoContext(ctx, "Processed inputs successfully",
				slogx.String("event", "processed_inputs"),
				slogx.Int64("current_block", i.currentBlock.Height),
				slogx.Duration("duration", time.Since(startAt)),
			)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "context done")
			}
			return nil
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case err := <-subscription.Err():
			if err != nil {
				return errors.Wrap(err, "got error while fetch async")
			}
		}
	}
}

// revertToForkPoint walks back from the current block until the indexed and remote hashes agree,
// then reverts everything indexed above that height.
func (i *Indexer[T]) revertToForkPoint(ctx context.Context, remote types.BlockHeader) error {
	logger.WarnContext(ctx, "Detected chain reorganization. Searching for fork point...",
		slogx.String("event", "reorg_detected"),
		slogx.Stringer("current_hash", i.currentBlock.Hash),
		slogx.Stringer("expected_hash", remote.PrevBlock),
	)

	var (
		start        = time.Now()
		targetHeight = i.currentBlock.Height - 1
		forkPoint    types.BlockHeader
		found        bool
	)
	for n := 0; n < i.maxReorgLookBack; n++ {
		// every indexed block was replaced, fall back to the block right before the first indexed one
		if targetHeight < 0 {
			forkPoint, found = types.BlockHeader{Height: -1}, true
			break
		}

		remoteHeader, err := i.Datasource.GetBlockHeader(ctx, targetHeight)
		if err != nil {
			return errors.Wrapf(err, "failed to get remote block header, height: %d", targetHeight)
		}

		indexedHeader, err := i.Processor.GetIndexedBlock(ctx, targetHeight)
		if errors.Is(err, errs.NotFound) {
			forkPoint, found = remoteHeader, true
			break
		}
		if err != nil {
			return errors.Wrapf(err, "failed to get indexed block, height: %d", targetHeight)
		}

		if indexedHeader.Hash == remoteHeader.Hash {
			forkPoint, found = remoteHeader, true
			break
		}
		targetHeight--
	}

	if !found {
		return errors.Wrap(errs.SomethingWentWrong, "reorg look back limit reached")
	}

	logger.InfoContext(ctx, "Found reorg fork point, starting to revert data...",
		slogx.String("event", "reorg_forkpoint"),
		slogx.Int64("since", forkPoint.Height+1),
		slogx.Int64("total_blocks", i.currentBlock.Height-forkPoint.Height),
		slogx.Duration("search_duration", time.Since(start)),
	)

	start = time.Now()
	if err := i.Processor.RevertData(ctx, forkPoint.Height+1); err != nil {
		return errors.Wrap(err, "failed to revert data")
	}

	i.currentBlock = forkPoint
	logger.InfoContext(ctx, "Fixing chain reorganization completed",
		slogx.Int64("current_block", i.currentBlock.Height),
		slogx.Duration("duration", time.Since(start)),
	)
	return nil
}

func isContinuous[T Input](ctx context.Context, inputs []T) bool {
	for n := 1; n < len(inputs); n++ {
		header := inputs[n].BlockHeader()
		prevHeader := inputs[n-1].BlockHeader()
		if header.Height != prevHeader.Height+1 || header.PrevBlock != prevHeader.Hash {
			logger.DebugContext(ctx, "Input is not continuous",
				slogx.Int64("prev_height", prevHeader.Height),
				slogx.Int64("height", header.Height),
			)
			return false
		}
	}
	return true
}
