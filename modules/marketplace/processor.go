package marketplace

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/datasources"
	"github.com/gaze-network/marketplace-indexer/core/indexer"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/decoder"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
)

var _ indexer.Processor[*types.Block] = (*Processor)(nil)

type ProcessorConfig struct {
	ChainID    int64
	Contract   common.Address
	StartBlock int64
}

type Processor struct {
	marketplaceDg datagateway.MarketplaceDataGateway
	indexerInfoDg datagateway.IndexerInfoDataGateway
	datasource    datasources.Datasource[*types.Block]
	decoder       *decoder.Decoder
	projector     *projector.Projector
	config        ProcessorConfig
	cleanupFuncs  []func(context.Context) error
}

func NewProcessor(
	marketplaceDg datagateway.MarketplaceDataGateway,
	indexerInfoDg datagateway.IndexerInfoDataGateway,
	datasource datasources.Datasource[*types.Block],
	decoder *decoder.Decoder,
	projector *projector.Projector,
	config ProcessorConfig,
	cleanupFuncs []func(context.Context) error,
) *Processor {
	return &Processor{
		marketplaceDg: marketplaceDg,
		indexerInfoDg: indexerInfoDg,
		datasource:    datasource,
		decoder:       decoder,
		projector:     projector,
		config:        config,
		cleanupFuncs:  cleanupFuncs,
	}
}

func (p *Processor) VerifyStates(ctx context.Context) error {
	if err := p.ensureValidState(ctx); err != nil {
		return errors.Wrap(err, "error during ensureValidState")
	}
	return nil
}

func (p *Processor) ensureValidState(ctx context.Context) error {
	contract := strings.ToLower(p.config.Contract.Hex())
	indexerState, err := p.indexerInfoDg.GetLatestIndexerState(ctx)
	if err != nil && !errors.Is(err, errs.NotFound) {
		return errors.Wrap(err, "failed to get latest indexer state")
	}
	// if not found, set indexer state
	if errors.Is(err, errs.NotFound) {
		if err := p.indexerInfoDg.SetIndexerState(ctx, entity.IndexerState{
			DBVersion:        DBVersion,
			EventHashVersion: EventHashVersion,
			ChainID:          p.config.ChainID,
			Contract:         contract,
		}); err != nil {
			return errors.Wrap(err, "failed to set indexer state")
		}
		return nil
	}

	if indexerState.DBVersion != DBVersion {
		return errors.Wrapf(errs.ConflictSetting, "db version mismatch: current version is %d. Please upgrade to version %d", indexerState.DBVersion, DBVersion)
	}
	if indexerState.EventHashVersion != EventHashVersion {
		return errors.Wrapf(errs.ConflictSetting, "event version mismatch: current version is %d, expected %d. Please reset marketplace's db first.", indexerState.EventHashVersion, EventHashVersion)
	}
	if indexerState.ChainID != p.config.ChainID {
		return errors.Wrapf(errs.ConflictSetting, "chain id mismatch: latest indexed chain id is %d, configured chain id is %d. If you want to change the chain, please reset the database", indexerState.ChainID, p.config.ChainID)
	}
	if indexerState.Contract != contract {
		return errors.Wrapf(errs.ConflictSetting, "contract mismatch: latest indexed contract is %s, configured contract is %s. If you want to change the contract, please reset the database", indexerState.Contract, contract)
	}
	return nil
}

func (p *Processor) Name() string {
	return "Marketplace"
}

func (p *Processor) CurrentBlock(ctx context.Context) (types.BlockHeader, error) {
	blockHeader, err := p.marketplaceDg.GetLatestBlock(ctx)
	if err == nil {
		return blockHeader, nil
	}
	if !errors.Is(err, errs.NotFound) {
		return types.BlockHeader{}, errors.Wrap(err, "failed to get latest block")
	}

	// nothing indexed yet, resume right before the configured start block
	if p.config.StartBlock <= 0 {
		return types.BlockHeader{Height: -1}, nil
	}
	blockHeader, err = p.datasource.GetBlockHeader(ctx, p.config.StartBlock-1)
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to get block header before start block")
	}
	return blockHeader, nil
}

func (p *Processor) GetIndexedBlock(ctx context.Context, height int64) (types.BlockHeader, error) {
	block, err := p.marketplaceDg.GetIndexedBlockByHeight(ctx, height)
	if err != nil {
		return types.BlockHeader{}, errors.Wrap(err, "failed to get indexed block")
	}
	return block.BlockHeader(), nil
}

// RevertData removes every entity version and indexed block at or above height from.
func (p *Processor) RevertData(ctx context.Context, from int64) error {
	marketplaceDgTx, err := p.marketplaceDg.BeginMarketplaceTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := marketplaceDgTx.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	// a single transaction connection can't run statements concurrently
	if err := marketplaceDgTx.DeleteEntitiesSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to delete entities")
	}
	if err := marketplaceDgTx.DeleteIndexedBlocksSinceHeight(ctx, from); err != nil {
		return errors.Wrap(err, "failed to delete indexed blocks")
	}

	if err := marketplaceDgTx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}

func (p *Processor) Shutdown(ctx context.Context) error {
	var errList []error
	for _, cleanup := range p.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.WithStack(errors.Join(errList...))
}
