package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	parent := common.HexToHash("0x01")
	src := &ethtypes.Header{
		ParentHash: parent,
		Number:     big.NewInt(42),
		Time:       1700000000,
		Difficulty: big.NewInt(0),
	}

	header := ParseHeader(src)
	assert.Equal(t, int64(42), header.Height)
	assert.Equal(t, parent, header.PrevBlock)
	assert.Equal(t, src.Hash(), header.Hash)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), header.Timestamp)
}

func TestParseLogs(t *testing.T) {
	src := []ethtypes.Log{
		{BlockNumber: 10, Index: 3, TxHash: common.HexToHash("0xaa")},
		{BlockNumber: 10, Index: 4, TxHash: common.HexToHash("0xbb"), Removed: true},
	}

	logs := ParseLogs(src)
	if assert.Len(t, logs, 2) {
		assert.Equal(t, int64(10), logs[0].BlockHeight)
		assert.Equal(t, uint(3), logs[0].LogIndex)
		assert.Equal(t, common.HexToHash("0xbb"), logs[1].TxHash)
		assert.True(t, logs[1].Removed)
	}
}
