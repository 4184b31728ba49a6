package postgres

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedBlockMapping(t *testing.T) {
	block := entity.IndexedBlock{
		Height:    100,
		Hash:      common.HexToHash("0x1234"),
		PrevHash:  common.HexToHash("0x1233"),
		Timestamp: time.Unix(1700000000, 0).UTC(),
	}

	params := mapIndexedBlockTypeToParams(block)
	assert.Equal(t, int64(100), params.Height)
	assert.Equal(t, block.Hash.Hex(), params.Hash)

	result, err := mapIndexedBlockModelToType(gen.MarketplaceIndexedBlock{
		Height:    params.Height,
		Hash:      params.Hash,
		PrevHash:  params.PrevHash,
		Timestamp: params.Timestamp,
	})
	require.NoError(t, err)
	assert.Equal(t, &block, result)
}

func TestIndexedBlockMappingInvalidHash(t *testing.T) {
	t.Run("not hex", func(t *testing.T) {
		_, err := mapIndexedBlockModelToType(gen.MarketplaceIndexedBlock{Hash: "zz", PrevHash: common.Hash{}.Hex()})
		assert.Error(t, err)
	})
	t.Run("short", func(t *testing.T) {
		_, err := mapIndexedBlockModelToType(gen.MarketplaceIndexedBlock{Hash: "0x1234", PrevHash: common.Hash{}.Hex()})
		assert.Error(t, err)
	})
}

func TestIndexerStateMapping(t *testing.T) {
	createdAt := time.Unix(1700000000, 0)
	result := mapIndexerStateModelToType(gen.MarketplaceIndexerState{
		DbVersion:        1,
		EventHashVersion: 2,
		ChainID:          56,
		Contract:         "0xabc",
		CreatedAt:        pgtype.Timestamptz{Time: createdAt, Valid: true},
	})
	assert.Equal(t, entity.IndexerState{
		DBVersion:        1,
		EventHashVersion: 2,
		ChainID:          56,
		Contract:         "0xabc",
		CreatedAt:        createdAt.UTC(),
	}, result)

	params := mapIndexerStateTypeToParams(result)
	assert.Equal(t, gen.SetIndexerStateParams{DbVersion: 1, EventHashVersion: 2, ChainID: 56, Contract: "0xabc"}, params)
}
