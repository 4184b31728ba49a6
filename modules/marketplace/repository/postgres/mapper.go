package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
)

func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Hash{}, errors.WithStack(err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, errors.Errorf("invalid hash length %d", len(b))
	}
	return common.BytesToHash(b), nil
}

func mapIndexerStateModelToType(src gen.MarketplaceIndexerState) entity.IndexerState {
	var createdAt time.Time
	if src.CreatedAt.Valid {
		createdAt = src.CreatedAt.Time.UTC()
	}
	return entity.IndexerState{
		DBVersion:        src.DbVersion,
		EventHashVersion: src.EventHashVersion,
		ChainID:          src.ChainID,
		Contract:         src.Contract,
		CreatedAt:        createdAt,
	}
}

func mapIndexerStateTypeToParams(src entity.IndexerState) gen.SetIndexerStateParams {
	return gen.SetIndexerStateParams{
		DbVersion:        src.DBVersion,
		EventHashVersion: src.EventHashVersion,
		ChainID:          src.ChainID,
		Contract:         src.Contract,
	}
}

func mapIndexedBlockModelToType(src gen.MarketplaceIndexedBlock) (*entity.IndexedBlock, error) {
	hash, err := parseHash(src.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse block hash")
	}
	prevHash, err := parseHash(src.PrevHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse prev block hash")
	}
	var timestamp time.Time
	if src.Timestamp.Valid {
		timestamp = src.Timestamp.Time.UTC()
	}
	return &entity.IndexedBlock{
		Height:    src.Height,
		Hash:      hash,
		PrevHash:  prevHash,
		Timestamp: timestamp,
	}, nil
}

func mapIndexedBlockTypeToParams(src entity.IndexedBlock) gen.CreateIndexedBlockParams {
	return gen.CreateIndexedBlockParams{
		Height:    src.Height,
		Hash:      src.Hash.Hex(),
		PrevHash:  src.PrevHash.Hex(),
		Timestamp: pgtype.Timestamptz{Time: src.Timestamp.UTC(), Valid: true},
	}
}
