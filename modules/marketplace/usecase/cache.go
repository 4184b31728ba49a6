package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	goredis "github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "marketplace"

var _ datagateway.EntityReader = (*CachedEntityReader)(nil)

// CachedEntityReader is a read-through Redis cache in front of an EntityReader.
// Entries expire after ttl, which bounds how long a reverted snapshot stays visible.
// Misses are not cached. Redis failures fall back to the underlying reader.
type CachedEntityReader struct {
	reader datagateway.EntityReader
	client goredis.Cmdable
	ttl    time.Duration
}

func NewCachedEntityReader(reader datagateway.EntityReader, client goredis.Cmdable, ttl time.Duration) *CachedEntityReader {
	return &CachedEntityReader{
		reader: reader,
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(kind entity.Kind, id string) string {
	return cacheKeyPrefix + ":" + string(kind) + ":" + id
}

func (c *CachedEntityReader) GetEntity(ctx context.Context, kind entity.Kind, id string) ([]byte, error) {
	key := cacheKey(kind, id)
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, goredis.Nil):
	default:
		logger.WarnContext(ctx, "failed to read entity from cache", slogx.String("key", key), slogx.Error(err))
	}

	data, err = c.reader.GetEntity(ctx, kind, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.WarnContext(ctx, "failed to write entity to cache", slogx.String("key", key), slogx.Error(err))
	}
	return data, nil
}
