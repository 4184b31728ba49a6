package types

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/samber/lo"
)

type BlockHeader struct {
	Hash      common.Hash
	Height    int64
	PrevBlock common.Hash
	Timestamp time.Time
}

// Block is an EVM block reduced to its header and the logs emitted by the watched contract, in log index order.
type Block struct {
	Header BlockHeader
	Logs   []*Log
}

func (b *Block) BlockHeader() BlockHeader {
	return b.Header
}

type Log struct {
	Address     common.Address
	Topics      []common.Hash
	Data        []byte
	BlockHeight int64
	BlockHash   common.Hash
	TxHash      common.Hash
	TxIndex     uint
	LogIndex    uint
	Removed     bool
}

func ParseHeader(src *ethtypes.Header) BlockHeader {
	return BlockHeader{
		Hash:      src.Hash(),
		Height:    src.Number.Int64(),
		PrevBlock: src.ParentHash,
		Timestamp: time.Unix(int64(src.Time), 0).UTC(),
	}
}

func ParseLog(src ethtypes.Log) *Log {
	return &Log{
		Address:     src.Address,
		Topics:      src.Topics,
		Data:        src.Data,
		BlockHeight: int64(src.BlockNumber),
		BlockHash:   src.BlockHash,
		TxHash:      src.TxHash,
		TxIndex:     src.TxIndex,
		LogIndex:    src.Index,
		Removed:     src.Removed,
	}
}

func ParseLogs(src []ethtypes.Log) []*Log {
	return lo.Map(src, func(item ethtypes.Log, _ int) *Log { return ParseLog(item) })
}
