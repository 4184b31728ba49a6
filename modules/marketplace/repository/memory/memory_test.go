package memory

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityVersions(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetEntity(ctx, entity.KindUser, "0xa")
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "0xa", 10, []byte("v10")))
	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "0xa", 12, []byte("v12")))
	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "0xa", 12, []byte("v12b")))
	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "0xb", 12, []byte("b12")))

	data, err := repo.GetEntity(ctx, entity.KindUser, "0xa")
	require.NoError(t, err)
	assert.Equal(t, "v12b", string(data))

	require.NoError(t, repo.DeleteEntitiesSinceHeight(ctx, 11))

	data, err = repo.GetEntity(ctx, entity.KindUser, "0xa")
	require.NoError(t, err)
	assert.Equal(t, "v10", string(data))

	_, err = repo.GetEntity(ctx, entity.KindUser, "0xb")
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestTransaction(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	t.Run("rollback discards writes", func(t *testing.T) {
		tx, err := repo.BeginMarketplaceTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.PutEntity(ctx, entity.KindUser, "0xa", 1, []byte("a")))

		// read your writes inside the transaction only
		_, err = tx.GetEntity(ctx, entity.KindUser, "0xa")
		require.NoError(t, err)
		_, err = repo.GetEntity(ctx, entity.KindUser, "0xa")
		assert.ErrorIs(t, err, errs.NotFound)

		require.NoError(t, tx.Rollback(ctx))
		_, err = repo.GetEntity(ctx, entity.KindUser, "0xa")
		assert.ErrorIs(t, err, errs.NotFound)
	})

	t.Run("commit publishes writes", func(t *testing.T) {
		tx, err := repo.BeginMarketplaceTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.PutEntity(ctx, entity.KindUser, "0xa", 1, []byte("a")))
		require.NoError(t, tx.CreateIndexedBlock(ctx, &entity.IndexedBlock{Height: 1, Hash: common.HexToHash("0x01")}))
		require.NoError(t, tx.Commit(ctx))
		require.NoError(t, tx.Rollback(ctx))

		data, err := repo.GetEntity(ctx, entity.KindUser, "0xa")
		require.NoError(t, err)
		assert.Equal(t, "a", string(data))

		header, err := repo.GetLatestBlock(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), header.Height)
	})

	t.Run("nested begin", func(t *testing.T) {
		tx, err := repo.BeginMarketplaceTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)
		_, err = tx.BeginMarketplaceTx(ctx)
		assert.ErrorIs(t, err, ErrTxAlreadyExists)
	})
}

func TestIndexedBlocks(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetLatestBlock(ctx)
	assert.ErrorIs(t, err, errs.NotFound)

	for h := int64(1); h <= 5; h++ {
		require.NoError(t, repo.CreateIndexedBlock(ctx, &entity.IndexedBlock{Height: h}))
	}
	require.NoError(t, repo.DeleteIndexedBlocksSinceHeight(ctx, 4))

	header, err := repo.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), header.Height)

	_, err = repo.GetIndexedBlockByHeight(ctx, 4)
	assert.ErrorIs(t, err, errs.NotFound)
}

func TestTransactionOverlay(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	for h := int64(1); h <= 3; h++ {
		require.NoError(t, repo.PutEntity(ctx, entity.KindNft, "nft", h, []byte{byte('0' + h)}))
		require.NoError(t, repo.CreateIndexedBlock(ctx, &entity.IndexedBlock{Height: h}))
	}
	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "untouched", 1, []byte("u1")))
	require.NoError(t, repo.PutEntity(ctx, entity.KindUser, "reverted", 3, []byte("r3")))

	tx, err := repo.BeginMarketplaceTx(ctx)
	require.NoError(t, err)
	assert.Empty(t, tx.(*Repository).tx.entities, "a transaction starts without copying the shared state")

	// revert block 3 then replay it with different data
	require.NoError(t, tx.DeleteEntitiesSinceHeight(ctx, 3))
	require.NoError(t, tx.DeleteIndexedBlocksSinceHeight(ctx, 3))

	data, err := tx.GetEntity(ctx, entity.KindNft, "nft")
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))
	_, err = tx.GetEntity(ctx, entity.KindUser, "reverted")
	assert.ErrorIs(t, err, errs.NotFound)
	header, err := tx.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), header.Height)

	require.NoError(t, tx.PutEntity(ctx, entity.KindNft, "nft", 3, []byte("3b")))
	require.NoError(t, tx.CreateIndexedBlock(ctx, &entity.IndexedBlock{Height: 3, Hash: common.HexToHash("0x03")}))
	assert.Len(t, tx.(*Repository).tx.entities, 1)

	// the shared state is untouched until commit
	data, err = repo.GetEntity(ctx, entity.KindNft, "nft")
	require.NoError(t, err)
	assert.Equal(t, "3", string(data))

	require.NoError(t, tx.Commit(ctx))

	data, err = repo.GetEntity(ctx, entity.KindNft, "nft")
	require.NoError(t, err)
	assert.Equal(t, "3b", string(data))
	data, err = repo.GetEntity(ctx, entity.KindUser, "untouched")
	require.NoError(t, err)
	assert.Equal(t, "u1", string(data))
	_, err = repo.GetEntity(ctx, entity.KindUser, "reverted")
	assert.ErrorIs(t, err, errs.NotFound)

	block, err := repo.GetIndexedBlockByHeight(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash("0x03"), block.Hash)
	header, err = repo.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), header.Height)
}
