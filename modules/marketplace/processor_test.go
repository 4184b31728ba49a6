package marketplace

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/subscription"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway/mocks"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/decoder"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testContract = common.HexToAddress("0x00000000000000000000000000000000000000f0")
	testToken    = common.HexToAddress("0x000000000000000000000000000000000000000a")
	testSeller   = common.HexToAddress("0x000000000000000000000000000000000000000b")
	testCurrency = common.HexToAddress("0x000000000000000000000000000000000000000c")
	testBuyer    = common.HexToAddress("0x000000000000000000000000000000000000000e")
	testTokenID  = big.NewInt(1)
	oneEther     = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

type fakeDatasource struct {
	headers map[int64]types.BlockHeader
}

func (f *fakeDatasource) Name() string { return "fake" }

func (f *fakeDatasource) Fetch(ctx context.Context, from, to int64) ([]*types.Block, error) {
	return nil, nil
}

func (f *fakeDatasource) FetchAsync(ctx context.Context, from, to int64, ch chan<- []*types.Block) (*subscription.ClientSubscription[[]*types.Block], error) {
	return nil, errors.WithStack(errs.Unsupported)
}

func (f *fakeDatasource) GetBlockHeader(ctx context.Context, height int64) (types.BlockHeader, error) {
	header, ok := f.headers[height]
	if !ok {
		return types.BlockHeader{}, errors.WithStack(errs.NotFound)
	}
	return header, nil
}

func blockHash(height int64) common.Hash {
	return common.BigToHash(big.NewInt(height))
}

type chainBuilder struct {
	t       *testing.T
	decoder *decoder.Decoder
}

func (c *chainBuilder) block(height int64, logs ...*types.Log) *types.Block {
	for i, log := range logs {
		log.BlockHeight = height
		log.BlockHash = blockHash(height)
		log.TxHash = common.BigToHash(big.NewInt(height*1000 + int64(i)))
		log.LogIndex = uint(i)
	}
	return &types.Block{
		Header: types.BlockHeader{
			Hash:      blockHash(height),
			Height:    height,
			PrevBlock: blockHash(height - 1),
			Timestamp: time.Unix(1700000000+height, 0).UTC(),
		},
		Logs: logs,
	}
}

func (c *chainBuilder) log(kind events.Kind, indexed []any, data ...any) *types.Log {
	c.t.Helper()
	abiEvent, ok := c.decoder.Event(kind)
	require.True(c.t, ok)
	packed, err := abiEvent.Inputs.NonIndexed().Pack(data...)
	require.NoError(c.t, err)
	query := make([][]any, 0, len(indexed))
	for _, v := range indexed {
		query = append(query, []any{v})
	}
	topics, err := abi.MakeTopics(query...)
	require.NoError(c.t, err)

	log := &types.Log{Address: testContract, Topics: []common.Hash{abiEvent.ID}, Data: packed}
	for _, topic := range topics {
		log.Topics = append(log.Topics, topic[0])
	}
	return log
}

func newTestProcessor(t *testing.T, startBlock int64, datasource *fakeDatasource) (*Processor, *memory.Repository, *chainBuilder) {
	t.Helper()
	d, err := decoder.New()
	require.NoError(t, err)
	repo := memory.NewRepository()
	if datasource == nil {
		datasource = &fakeDatasource{}
	}
	p := NewProcessor(repo, repo, datasource, d, projector.New(projector.Options{}), ProcessorConfig{
		ChainID:    56,
		Contract:   testContract,
		StartBlock: startBlock,
	}, nil)
	return p, repo, &chainBuilder{t: t, decoder: d}
}

// marketplaceChain lists a token for sale at block 2 and sells it at block 3.
func marketplaceChain(c *chainBuilder) []*types.Block {
	return []*types.Block{
		c.block(1,
			c.log(events.KindMarketCreated, []any{testToken}, "Market", big.NewInt(25e15), big.NewInt(0), big.NewInt(0)),
			&types.Log{Address: testContract, Topics: []common.Hash{common.HexToHash("0xdead")}},
		),
		c.block(2, c.log(events.KindSellOrderCreated, []any{testToken, testTokenID, testSeller}, testCurrency, oneEther)),
		c.block(3, c.log(events.KindSale, []any{testToken, testTokenID, testBuyer}, oneEther)),
	}
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	p, repo, c := newTestProcessor(t, 0, nil)

	require.NoError(t, p.Process(ctx, marketplaceChain(c)))

	latest, err := p.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest.Height)
	assert.Equal(t, blockHash(3), latest.Hash)

	nft, err := entitystore.Load[entity.Nft](ctx, repo, projector.NftID(testToken, testTokenID))
	require.NoError(t, err)
	assert.False(t, nft.Listing.IsLive())
	require.NotNil(t, nft.LastSale)
	assert.Equal(t, int64(1), nft.TotalSales)

	market, err := entitystore.Load[entity.Market](ctx, repo, projector.AddressID(testToken))
	require.NoError(t, err)
	assert.Equal(t, int64(1), market.TotalSales)

	stats, err := entitystore.Load[entity.MarketCurrencyStats](ctx, repo, projector.StatsID(market.ID, projector.AddressID(testCurrency)))
	require.NoError(t, err)
	assert.True(t, stats.Volume.Equal(decimal.NewFromBigInt(oneEther, 0)))
	assert.True(t, stats.Fees.Equal(decimal.NewFromInt(25e15)))
}

func TestProcessMalformedLog(t *testing.T) {
	ctx := context.Background()
	p, repo, c := newTestProcessor(t, 0, nil)

	good := c.log(events.KindMarketCreated, []any{testToken}, "Market", big.NewInt(0), big.NewInt(0), big.NewInt(0))
	bad := c.log(events.KindAuctionBid, []any{testToken, testTokenID, testBuyer}, oneEther)
	bad.Data = bad.Data[:8]

	err := p.Process(ctx, []*types.Block{c.block(1, good, bad)})
	require.ErrorIs(t, err, errs.InvalidArgument)

	// the whole block is discarded
	_, err = repo.GetLatestBlock(ctx)
	assert.ErrorIs(t, err, errs.NotFound)
	_, err = repo.GetEntity(ctx, entity.KindMarket, projector.AddressID(testToken))
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestRevertData(t *testing.T) {
	ctx := context.Background()
	p, repo, c := newTestProcessor(t, 0, nil)
	require.NoError(t, p.Process(ctx, marketplaceChain(c)))

	require.NoError(t, p.RevertData(ctx, 3))

	latest, err := p.CurrentBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), latest.Height)

	_, err = p.GetIndexedBlock(ctx, 3)
	assert.ErrorIs(t, err, errs.NotFound)

	// the sell order is live again
	nft, err := entitystore.Load[entity.Nft](ctx, repo, projector.NftID(testToken, testTokenID))
	require.NoError(t, err)
	require.NotNil(t, nft.Listing.CurrentSellOrder())
	assert.Nil(t, nft.CurrentOwner)

	market, err := entitystore.Load[entity.Market](ctx, repo, projector.AddressID(testToken))
	require.NoError(t, err)
	assert.Equal(t, int64(0), market.TotalSales)

	// replaying the replacement block applies on top of the restored snapshot
	require.NoError(t, p.Process(ctx, []*types.Block{c.block(3, c.log(events.KindSellOrderCanceled, []any{testToken, testTokenID}))}))
	nft, err = entitystore.Load[entity.Nft](ctx, repo, projector.NftID(testToken, testTokenID))
	require.NoError(t, err)
	assert.False(t, nft.Listing.IsLive())
}

func TestCurrentBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("from genesis", func(t *testing.T) {
		p, _, _ := newTestProcessor(t, 0, nil)
		header, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(-1), header.Height)
	})

	t.Run("from start block", func(t *testing.T) {
		expected := types.BlockHeader{Height: 49, Hash: blockHash(49), PrevBlock: blockHash(48)}
		p, _, _ := newTestProcessor(t, 50, &fakeDatasource{headers: map[int64]types.BlockHeader{49: expected}})
		header, err := p.CurrentBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, expected, header)
	})
}

func TestVerifyStates(t *testing.T) {
	ctx := context.Background()
	contract := projector.AddressID(testContract)

	newProcessor := func(indexerInfoDg *mocks.IndexerInfoDataGateway) *Processor {
		return NewProcessor(memory.NewRepository(), indexerInfoDg, &fakeDatasource{}, nil, nil, ProcessorConfig{
			ChainID:  56,
			Contract: testContract,
		}, nil)
	}

	t.Run("first run", func(t *testing.T) {
		indexerInfoDg := mocks.NewIndexerInfoDataGateway(t)
		indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(entity.IndexerState{}, errors.WithStack(errs.NotFound))
		indexerInfoDg.EXPECT().SetIndexerState(mock.Anything, entity.IndexerState{
			DBVersion:        DBVersion,
			EventHashVersion: EventHashVersion,
			ChainID:          56,
			Contract:         contract,
		}).Return(nil)

		assert.NoError(t, newProcessor(indexerInfoDg).VerifyStates(ctx))
	})

	testCases := []struct {
		name  string
		state entity.IndexerState
		ok    bool
	}{
		{
			name:  "matching state",
			state: entity.IndexerState{DBVersion: DBVersion, EventHashVersion: EventHashVersion, ChainID: 56, Contract: contract},
			ok:    true,
		},
		{
			name:  "db version mismatch",
			state: entity.IndexerState{DBVersion: DBVersion + 1, EventHashVersion: EventHashVersion, ChainID: 56, Contract: contract},
		},
		{
			name:  "event hash version mismatch",
			state: entity.IndexerState{DBVersion: DBVersion, EventHashVersion: EventHashVersion + 1, ChainID: 56, Contract: contract},
		},
		{
			name:  "chain mismatch",
			state: entity.IndexerState{DBVersion: DBVersion, EventHashVersion: EventHashVersion, ChainID: 1, Contract: contract},
		},
		{
			name:  "contract mismatch",
			state: entity.IndexerState{DBVersion: DBVersion, EventHashVersion: EventHashVersion, ChainID: 56, Contract: "0x01"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			indexerInfoDg := mocks.NewIndexerInfoDataGateway(t)
			indexerInfoDg.EXPECT().GetLatestIndexerState(mock.Anything).Return(tc.state, nil)

			err := newProcessor(indexerInfoDg).VerifyStates(ctx)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, errs.ConflictSetting)
		})
	}
}
