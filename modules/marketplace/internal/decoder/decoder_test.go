package decoder

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToken    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	testSeller   = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	testCurrency = common.HexToAddress("0x00000000000000000000000000000000000000cc")
	testHeader   = types.BlockHeader{
		Height:    42,
		Hash:      common.HexToHash("0x42"),
		Timestamp: time.Unix(1700000000, 0).UTC(),
	}
)

func encodeLog(t *testing.T, d *Decoder, kind events.Kind, indexed []any, data ...any) *types.Log {
	t.Helper()
	abiEvent, ok := d.abi.Events[string(kind)]
	require.True(t, ok)

	packed, err := abiEvent.Inputs.NonIndexed().Pack(data...)
	require.NoError(t, err)

	query := make([][]any, 0, len(indexed))
	for _, v := range indexed {
		query = append(query, []any{v})
	}
	topics, err := abi.MakeTopics(query...)
	require.NoError(t, err)

	log := &types.Log{
		Topics:      []common.Hash{abiEvent.ID},
		Data:        packed,
		BlockHeight: testHeader.Height,
		TxHash:      common.HexToHash("0xabc"),
		LogIndex:    3,
	}
	for _, topic := range topics {
		log.Topics = append(log.Topics, topic[0])
	}
	return log
}

func TestDecode(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	expectedHeader := events.Header{
		BlockHeight: 42,
		Timestamp:   testHeader.Timestamp,
		TxHash:      common.HexToHash("0xabc"),
		LogIndex:    3,
	}

	t.Run("MarketCreated", func(t *testing.T) {
		log := encodeLog(t, d, events.KindMarketCreated, []any{testToken}, "Punks", big.NewInt(25e15), big.NewInt(5e15), big.NewInt(1e15))
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.MarketCreated{
			Header:        expectedHeader,
			Token:         testToken,
			Name:          "Punks",
			Fee:           big.NewInt(25e15),
			CreatorFee:    big.NewInt(5e15),
			ReflectionFee: big.NewInt(1e15),
		}, event)
	})

	t.Run("MarketStateChanged", func(t *testing.T) {
		log := encodeLog(t, d, events.KindMarketStateChanged, []any{testToken}, true)
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.MarketStateChanged{Header: expectedHeader, Token: testToken, IsActive: true}, event)
	})

	t.Run("AuctionCreated", func(t *testing.T) {
		log := encodeLog(t, d, events.KindAuctionCreated, []any{testToken, big.NewInt(7), testSeller}, testCurrency, big.NewInt(1000), big.NewInt(1700003600))
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.AuctionCreated{
			Header:     expectedHeader,
			Token:      testToken,
			TokenID:    big.NewInt(7),
			Seller:     testSeller,
			Currency:   testCurrency,
			InitialBid: big.NewInt(1000),
			EndsAt:     big.NewInt(1700003600),
		}, event)
	})

	t.Run("Sale", func(t *testing.T) {
		log := encodeLog(t, d, events.KindSale, []any{testToken, big.NewInt(7), testSeller}, big.NewInt(500))
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.Sale{Header: expectedHeader, Token: testToken, TokenID: big.NewInt(7), Buyer: testSeller, Price: big.NewInt(500)}, event)
	})

	t.Run("WithdrawNft", func(t *testing.T) {
		log := encodeLog(t, d, events.KindWithdrawNft, []any{testToken, big.NewInt(7)})
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.WithdrawNft{Header: expectedHeader, Token: testToken, TokenID: big.NewInt(7)}, event)
	})

	t.Run("CurrencyAdded", func(t *testing.T) {
		log := encodeLog(t, d, events.KindCurrencyAdded, []any{testCurrency})
		event, err := d.Decode(testHeader, log)
		require.NoError(t, err)
		assert.Equal(t, &events.CurrencyAdded{Header: expectedHeader, Currency: testCurrency}, event)
	})
}

func TestDecodeErrors(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	t.Run("no topics", func(t *testing.T) {
		_, err := d.Decode(testHeader, &types.Log{})
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := d.Decode(testHeader, &types.Log{Topics: []common.Hash{common.HexToHash("0xdead")}})
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})

	t.Run("truncated data", func(t *testing.T) {
		log := encodeLog(t, d, events.KindAuctionBid, []any{testToken, big.NewInt(1), testSeller}, big.NewInt(10))
		log.Data = log.Data[:16]
		_, err := d.Decode(testHeader, log)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("missing indexed topic", func(t *testing.T) {
		log := encodeLog(t, d, events.KindAuctionEnd, []any{testToken, big.NewInt(1)})
		log.Topics = log.Topics[:2]
		_, err := d.Decode(testHeader, log)
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})
}

func TestEvent(t *testing.T) {
	d, err := New()
	require.NoError(t, err)

	event, ok := d.Event(events.KindSale)
	assert.True(t, ok)
	assert.Equal(t, "Sale(address,uint256,address,uint256)", event.Sig)

	_, ok = d.Event(events.Kind("Nope"))
	assert.False(t, ok)

	for _, kind := range []events.Kind{
		events.KindCurrencyAdded, events.KindMarketCreated, events.KindMarketFeeChanged, events.KindMarketStateChanged,
		events.KindAuctionCreated, events.KindAuctionBid, events.KindAuctionSale, events.KindAuctionEnd,
		events.KindSellOrderCreated, events.KindSellOrderCanceled, events.KindSale, events.KindWithdrawNft,
	} {
		_, ok := d.Event(kind)
		assert.True(t, ok, kind)
	}
}
