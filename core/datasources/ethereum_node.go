package datasources

import (
	"context"
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/subscription"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	cstream "github.com/planxnx/concurrent-stream"
	"github.com/samber/lo"
)

const (
	defaultBatchSize   = 100
	defaultConcurrency = 8

	// maxRangeAttempts bounds how many times a batch is refetched while the chain keeps moving under it.
	maxRangeAttempts = 5
)

// Make sure to implement the Datasource interface
var _ Datasource[*types.Block] = (*EthereumNodeDatasource)(nil)

// EthereumClient is the subset of *ethclient.Client used by EthereumNodeDatasource.
type EthereumClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*ethtypes.Header, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]ethtypes.Log, error)
}

type EthereumNodeConfig struct {
	// Contracts whose logs are attached to fetched blocks.
	Contracts []common.Address

	// Confirmations is the number of blocks behind the chain head that are considered final enough to fetch.
	Confirmations int64

	// BatchSize is the number of blocks fetched by a single FilterLogs call.
	BatchSize int

	// Concurrency is the number of batches fetched in parallel.
	Concurrency int
}

// EthereumNodeDatasource fetch blocks and contract logs from an Ethereum JSON-RPC node
type EthereumNodeDatasource struct {
	client EthereumClient
	config EthereumNodeConfig
}

func NewEthereumNode(client EthereumClient, config EthereumNodeConfig) *EthereumNodeDatasource {
	config.BatchSize = utils.Default(config.BatchSize, defaultBatchSize)
	config.Concurrency = utils.Default(config.Concurrency, defaultConcurrency)
	return &EthereumNodeDatasource{
		client: client,
		config: config,
	}
}

func (d EthereumNodeDatasource) Name() string {
	return "ethereum_node"
}

func (d *EthereumNodeDatasource) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := d.client.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get chain id")
	}
	return chainID, nil
}

// Fetch polling blocks from Ethereum node
//
//   - from: block height to start fetching, if -1, it will start from genesis block
//   - to: block height to stop fetching, if -1, it will fetch until the latest confirmed block
func (d *EthereumNodeDatasource) Fetch(ctx context.Context, from, to int64) ([]*types.Block, error) {
	ch := make(chan []*types.Block)
	subscription, err := d.FetchAsync(ctx, from, to, ch)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer subscription.Unsubscribe()

	blocks := make([]*types.Block, 0)
	for {
		select {
		case b, ok := <-ch:
			if !ok {
				return blocks, nil
			}
			blocks = append(blocks, b...)
		case <-subscription.Done():
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "context done")
			}
			return blocks, nil
		case err := <-subscription.Err():
			if err != nil {
				return nil, errors.Wrap(err, "got error while fetch async")
			}
			return blocks, nil
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "context done")
		}
	}
}

// FetchAsync polling blocks from Ethereum node asynchronously (non-blocking)
//
//   - from: block height to start fetching, if -1, it will start from genesis block
//   - to: block height to stop fetching, if -1, it will fetch until the latest confirmed block
func (d *EthereumNodeDatasource) FetchAsync(ctx context.Context, from, to int64, ch chan<- []*types.Block) (*subscription.ClientSubscription[[]*types.Block], error) {
	from, to, skip, err := d.prepareRange(ctx, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare fetch range")
	}

	subscription := subscription.NewSubscription(ch)
	if skip {
		if err := subscription.UnsubscribeWithContext(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to unsubscribe")
		}
		return subscription.Client(), nil
	}

	// Create parallel stream
	out := make(chan []*types.Block)
	stream := cstream.NewStream(ctx, d.config.Concurrency, out)

	blockHeights := make([]int64, 0, to-from+1)
	for i := from; i <= to; i++ {
		blockHeights = append(blockHeights, i)
	}

	// Wait for stream to finish and close out channel
	go func() {
		defer close(out)
		_ = stream.Wait()
	}()

	// Fan-out blocks to subscription channel
	go func() {
		defer subscription.Unsubscribe()
		for {
			select {
			case data, ok := <-out:
				if !ok {
					return
				}
				if len(data) == 0 {
					continue
				}
				if err := subscription.Send(ctx, data); err != nil {
					logger.ErrorContext(ctx, "Failed while dispatch block",
						slogx.Error(err),
						slogx.Int64("start", data[0].Header.Height),
						slogx.Int64("end", data[len(data)-1].Header.Height),
					)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Parallel fetch batches until all heights are fetched or subscription is done.
	go func() {
		defer stream.Close()
		done := subscription.Done()
		for _, chunk := range lo.Chunk(blockHeights, d.config.BatchSize) {
			chunk := chunk
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			default:
				stream.Go(func() []*types.Block {
					fromHeight, toHeight := chunk[0], chunk[len(chunk)-1]
					blocks, err := d.fetchRange(ctx, fromHeight, toHeight)
					if err != nil {
						logger.ErrorContext(ctx, "Failed to fetch blocks",
							slogx.Error(err),
							slogx.Int64("from_height", fromHeight),
							slogx.Int64("to_height", toHeight),
						)
						if err := subscription.SendError(ctx, errors.Wrapf(err, "failed to fetch blocks: from_height: %d, to_height: %d", fromHeight, toHeight)); err != nil {
							logger.ErrorContext(ctx, "Failed to send error", slogx.Error(err))
						}
						return nil
					}
					return blocks
				})
			}
		}
	}()

	return subscription.Client(), nil
}

// fetchRange fetches headers for every height in the range and attaches the contract logs of each block.
// The range is refetched when the chain changes while it is being read.
func (d *EthereumNodeDatasource) fetchRange(ctx context.Context, from, to int64) ([]*types.Block, error) {
	for attempt := 1; ; attempt++ {
		blocks, stable, err := d.fetchRangeOnce(ctx, from, to)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if stable {
			return blocks, nil
		}
		if attempt >= maxRangeAttempts {
			return nil, errors.Wrapf(errs.SomethingWentWrong, "chain kept changing while fetching blocks %d-%d", from, to)
		}
		logger.WarnContext(ctx, "Chain changed while fetching blocks, retrying",
			slogx.Int64("from_height", from),
			slogx.Int64("to_height", to),
			slogx.Int("attempt", attempt),
		)
	}
}

// fetchRangeOnce reads headers before logs, then reads the last header again. An unchanged last header
// means no block in the range was replaced while the logs were queried.
func (d *EthereumNodeDatasource) fetchRangeOnce(ctx context.Context, from, to int64) (blocks []*types.Block, stable bool, err error) {
	headers := make([]types.BlockHeader, 0, to-from+1)
	for height := from; height <= to; height++ {
		header, err := d.GetBlockHeader(ctx, height)
		if err != nil {
			return nil, false, errors.WithStack(err)
		}
		headers = append(headers, header)
	}

	logs, err := d.client.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: big.NewInt(from),
		ToBlock:   big.NewInt(to),
		Addresses: d.config.Contracts,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to filter logs")
	}

	last, err := d.GetBlockHeader(ctx, to)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	if last.Hash != headers[len(headers)-1].Hash {
		return nil, false, nil
	}

	logsByHeight := lo.GroupBy(logs, func(l ethtypes.Log) int64 { return int64(l.BlockNumber) })

	blocks = make([]*types.Block, 0, len(headers))
	for _, header := range headers {
		blockLogs := logsByHeight[header.Height]

		// some logs came from a block that has since been replaced, refetch them by the header's hash
		if lo.SomeBy(blockLogs, func(l ethtypes.Log) bool { return l.BlockHash != header.Hash }) {
			hash := header.Hash
			blockLogs, err = d.client.FilterLogs(ctx, ethereum.FilterQuery{
				BlockHash: &hash,
				Addresses: d.config.Contracts,
			})
			if err != nil {
				return nil, false, errors.Wrapf(err, "failed to filter logs by block hash %s", hash)
			}
		}

		blocks = append(blocks, &types.Block{
			Header: header,
			Logs: types.ParseLogs(lo.Filter(blockLogs, func(l ethtypes.Log, _ int) bool {
				return !l.Removed
			})),
		})
	}
	return blocks, true, nil
}

func (d *EthereumNodeDatasource) prepareRange(ctx context.Context, fromHeight, toHeight int64) (start, end int64, skip bool, err error) {
	start = fromHeight
	end = toHeight

	latest, err := d.client.BlockNumber(ctx)
	if err != nil {
		return -1, -1, false, errors.Wrap(err, "failed to get block number")
	}
	latestConfirmed := int64(latest) - d.config.Confirmations

	// set start to genesis block height
	if start < 0 {
		start = 0
	}

	// set end to the latest confirmed height if
	// - end is -1
	// - end is greater than the latest confirmed height
	if end < 0 || end > latestConfirmed {
		end = latestConfirmed
	}

	// if start is greater than end, skip this round
	if start > end {
		return -1, -1, true, nil
	}

	return start, end, false, nil
}

// GetBlockHeader fetch block header from Ethereum node
func (d *EthereumNodeDatasource) GetBlockHeader(ctx context.Context, height int64) (types.BlockHeader, error) {
	header, err := d.client.HeaderByNumber(ctx, big.NewInt(height))
	if err != nil {
		return types.BlockHeader{}, errors.Wrapf(err, "failed to get block header, height: %d", height)
	}
	return types.ParseHeader(header), nil
}
