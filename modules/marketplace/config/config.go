package config

import (
	"github.com/gaze-network/marketplace-indexer/internal/postgres"
	"github.com/gaze-network/marketplace-indexer/internal/redis"
)

type Config struct {
	Datasource      string   `mapstructure:"datasource"`       // Datasource to fetch marketplace logs e.g. `ethereum-node`
	Database        string   `mapstructure:"database"`         // Database to store marketplace snapshot e.g. `postgres` | `memory`
	ContractAddress string   `mapstructure:"contract_address"` // Marketplace contract address
	StartBlock      int64    `mapstructure:"start_block"`      // First block to index, usually the contract deployment block
	Confirmations   int64    `mapstructure:"confirmations"`    // Blocks behind chain head considered safe to index
	BatchSize       int      `mapstructure:"batch_size"`       // Blocks per log query
	APIHandlers     []string `mapstructure:"api_handlers"`     // API handlers to enable e.g. `http`

	// MarketRecreatePolicy decides what MarketCreated does for an existing market: `reject` (default) | `reset`
	MarketRecreatePolicy string `mapstructure:"market_recreate_policy"`

	Postgres postgres.Config `mapstructure:"postgres"`
	Redis    redis.Config    `mapstructure:"redis"`
}
