package redis

import (
	"context"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"
)

const DefaultTTL = 5 * time.Second

type Config struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"` // Default is 127.0.0.1:6379
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"` // Default is 5s
}

// CacheTTL returns the configured TTL, falling back to DefaultTTL.
func (conf Config) CacheTTL() time.Duration {
	return utils.Default(conf.TTL, DefaultTTL)
}

// NewClient creates a new Redis client and checks the connection.
func NewClient(ctx context.Context, conf Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     utils.Default(conf.Addr, "127.0.0.1:6379"),
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}
