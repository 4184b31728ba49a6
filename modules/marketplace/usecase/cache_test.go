package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway/mocks"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the subset of goredis.Cmdable used by the cache.
type fakeRedis struct {
	goredis.Cmdable
	values  map[string][]byte
	ttls    map[string]time.Duration
	failing bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: make(map[string][]byte),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	if f.failing {
		return goredis.NewStringResult("", errors.New("redis down"))
	}
	value, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(string(value), nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	if f.failing {
		return goredis.NewStatusResult("", errors.New("redis down"))
	}
	f.values[key] = value.([]byte)
	f.ttls[key] = expiration
	return goredis.NewStatusResult("OK", nil)
}

func TestCachedEntityReader(t *testing.T) {
	ctx := context.Background()

	t.Run("read through then hit", func(t *testing.T) {
		dg := mocks.NewMarketplaceDataGatewayWithTx(t)
		dg.EXPECT().GetEntity(mock.Anything, entity.KindMarket, "0xa").Return([]byte(`{"id":"0xa"}`), nil).Once()
		client := newFakeRedis()
		reader := NewCachedEntityReader(dg, client, 5*time.Second)

		for i := 0; i < 2; i++ {
			data, err := reader.GetEntity(ctx, entity.KindMarket, "0xa")
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"0xa"}`, string(data))
		}
		assert.Equal(t, 5*time.Second, client.ttls["marketplace:market:0xa"])
	})

	t.Run("miss is not cached", func(t *testing.T) {
		dg := mocks.NewMarketplaceDataGatewayWithTx(t)
		dg.EXPECT().GetEntity(mock.Anything, entity.KindNft, "0xa-1").Return(nil, errors.WithStack(errs.NotFound)).Twice()
		client := newFakeRedis()
		reader := NewCachedEntityReader(dg, client, time.Second)

		for i := 0; i < 2; i++ {
			_, err := reader.GetEntity(ctx, entity.KindNft, "0xa-1")
			assert.ErrorIs(t, err, errs.NotFound)
		}
		assert.Empty(t, client.values)
	})

	t.Run("redis failure falls back", func(t *testing.T) {
		dg := mocks.NewMarketplaceDataGatewayWithTx(t)
		dg.EXPECT().GetEntity(mock.Anything, entity.KindUser, "0xb").Return([]byte(`{"id":"0xb"}`), nil)
		client := newFakeRedis()
		client.failing = true
		reader := NewCachedEntityReader(dg, client, time.Second)

		data, err := reader.GetEntity(ctx, entity.KindUser, "0xb")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"0xb"}`, string(data))
	})
}
