package marketplace

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/decoder"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

// blockStats counts projection outcomes of a block.
type blockStats struct {
	applied, skipped, rejected, ignored int
}

func (p *Processor) Process(ctx context.Context, blocks []*types.Block) error {
	for _, block := range blocks {
		ctx := logger.WithContext(ctx, slogx.Int64("height", block.Header.Height))
		stats, err := p.processBlock(ctx, block)
		if err != nil {
			return errors.Wrapf(err, "failed to process block %d", block.Header.Height)
		}
		if len(block.Logs) > 0 {
			logger.DebugContext(ctx, "Processed block",
				slog.Int("applied", stats.applied),
				slog.Int("skipped", stats.skipped),
				slog.Int("rejected", stats.rejected),
				slog.Int("ignored", stats.ignored),
			)
		}
	}
	return nil
}

// processBlock applies every log of the block and records the block in a single transaction.
func (p *Processor) processBlock(ctx context.Context, block *types.Block) (stats blockStats, err error) {
	marketplaceDgTx, err := p.marketplaceDg.BeginMarketplaceTx(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := marketplaceDgTx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	if err := p.applyLogs(ctx, marketplaceDgTx, block, &stats); err != nil {
		return stats, errors.WithStack(err)
	}

	if err := marketplaceDgTx.CreateIndexedBlock(ctx, &entity.IndexedBlock{
		Height:    block.Header.Height,
		Hash:      block.Header.Hash,
		PrevHash:  block.Header.PrevBlock,
		Timestamp: block.Header.Timestamp,
	}); err != nil {
		return stats, errors.Wrap(err, "failed to create indexed block")
	}

	if err := marketplaceDgTx.Commit(ctx); err != nil {
		return stats, errors.Wrap(err, "failed to commit transaction")
	}
	return stats, nil
}

func (p *Processor) applyLogs(ctx context.Context, dg datagateway.EntityStore, block *types.Block, stats *blockStats) error {
	store := entitystore.New(dg, block.Header.Height)
	for _, log := range block.Logs {
		event, err := p.decoder.Decode(block.Header, log)
		if err != nil {
			if errors.Is(err, decoder.ErrUnknownEvent) {
				stats.ignored++
				logger.DebugContext(ctx, "Ignored unknown log", slogx.Stringer("tx_hash", log.TxHash), slog.Uint64("log_index", uint64(log.LogIndex)))
				continue
			}
			return errors.Wrapf(err, "failed to decode log %s:%d", log.TxHash, log.LogIndex)
		}

		result, err := p.projector.Apply(ctx, store, event)
		if err != nil {
			return errors.Wrapf(err, "failed to apply %s", event.Kind())
		}

		switch result.Status {
		case projector.StatusApplied:
			stats.applied++
		case projector.StatusSkipped:
			stats.skipped++
			logger.DebugContext(ctx, "Skipped event",
				slog.String("event", string(event.Kind())),
				slogx.Stringer("tx_hash", log.TxHash),
				slogx.Error(result.Reason),
			)
		case projector.StatusRejected:
			stats.rejected++
			logger.WarnContext(ctx, "Rejected event",
				slog.String("event", string(event.Kind())),
				slogx.Stringer("tx_hash", log.TxHash),
				slogx.Error(result.Reason),
			)
		}
	}
	return nil
}
