package entity

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/core/types"
)

type IndexedBlock struct {
	Height    int64
	Hash      common.Hash
	PrevHash  common.Hash
	Timestamp time.Time
}

func (b IndexedBlock) BlockHeader() types.BlockHeader {
	return types.BlockHeader{
		Hash:      b.Hash,
		Height:    b.Height,
		PrevBlock: b.PrevHash,
		Timestamp: b.Timestamp,
	}
}

type IndexerState struct {
	DBVersion        int32
	EventHashVersion int32
	ChainID          int64
	Contract         string
	CreatedAt        time.Time
}
