// Package memory is an in-process implementation of the marketplace datagateways.
// A transaction records its writes in an overlay on top of the shared state, the overlay is merged on commit.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/samber/lo"
)

var (
	_ datagateway.MarketplaceDataGateway = (*Repository)(nil)
	_ datagateway.IndexerInfoDataGateway = (*Repository)(nil)
)

var ErrTxAlreadyExists = errors.New("Transaction already exists. Call Commit() or Rollback() first.")

type entityKey struct {
	kind entity.Kind
	id   string
}

type version struct {
	height int64
	data   []byte
}

// versions are kept sorted by height ascending
func putVersion(versions []version, height int64, data []byte) []version {
	idx := sort.Search(len(versions), func(i int) bool { return versions[i].height >= height })
	if idx < len(versions) && versions[idx].height == height {
		versions[idx].data = data
		return versions
	}
	versions = append(versions, version{})
	copy(versions[idx+1:], versions[idx:])
	versions[idx] = version{height: height, data: data}
	return versions
}

// truncateVersions drops every version at or above height.
func truncateVersions(versions []version, height int64) []version {
	return versions[:sort.Search(len(versions), func(i int) bool { return versions[i].height >= height })]
}

type state struct {
	entities      map[entityKey][]version
	blocks        map[int64]*entity.IndexedBlock
	heights       []int64 // heights of blocks, ascending
	indexerStates []entity.IndexerState
}

func newState() *state {
	return &state{
		entities: make(map[entityKey][]version),
		blocks:   make(map[int64]*entity.IndexedBlock),
	}
}

func (s *state) truncateEntities(height int64) {
	for key, versions := range s.entities {
		if versions = truncateVersions(versions, height); len(versions) == 0 {
			delete(s.entities, key)
			continue
		}
		s.entities[key] = versions
	}
}

func (s *state) createBlock(block *entity.IndexedBlock) {
	if _, ok := s.blocks[block.Height]; !ok {
		idx := sort.Search(len(s.heights), func(i int) bool { return s.heights[i] >= block.Height })
		s.heights = append(s.heights, 0)
		copy(s.heights[idx+1:], s.heights[idx:])
		s.heights[idx] = block.Height
	}
	s.blocks[block.Height] = lo.ToPtr(*block)
}

func (s *state) truncateBlocks(height int64) {
	idx := sort.Search(len(s.heights), func(i int) bool { return s.heights[i] >= height })
	for _, h := range s.heights[idx:] {
		delete(s.blocks, h)
	}
	s.heights = s.heights[:idx]
}

// latestHeight returns the highest block height below the given bound.
func (s *state) latestHeight(below int64) (int64, bool) {
	idx := sort.Search(len(s.heights), func(i int) bool { return s.heights[i] >= below })
	if idx == 0 {
		return 0, false
	}
	return s.heights[idx-1], true
}

// overlay holds the writes of an open transaction.
type overlay struct {
	// entities holds the full version list of every key written in the transaction
	entities map[entityKey][]version
	// entitiesSince is the lowest height entities were deleted from, nil if none
	entitiesSince *int64

	blocks      map[int64]*entity.IndexedBlock
	blocksSince *int64

	indexerStates []entity.IndexerState
}

func newOverlay() *overlay {
	return &overlay{
		entities: make(map[entityKey][]version),
		blocks:   make(map[int64]*entity.IndexedBlock),
	}
}

func minHeight(current *int64, height int64) *int64 {
	if current != nil && *current <= height {
		return current
	}
	return lo.ToPtr(height)
}

type shared struct {
	mu    sync.RWMutex
	state *state
}

type Repository struct {
	shared *shared

	// tx is the overlay of an open transaction
	tx *overlay
}

func NewRepository() *Repository {
	return &Repository{
		shared: &shared{state: newState()},
	}
}

// sharedVersions returns the shared versions of key as seen by the open transaction.
func (r *Repository) sharedVersions(key entityKey) []version {
	r.shared.mu.RLock()
	defer r.shared.mu.RUnlock()
	versions := r.shared.state.entities[key]
	if r.tx.entitiesSince != nil {
		versions = truncateVersions(versions, *r.tx.entitiesSince)
	}
	return append([]version(nil), versions...)
}

func (r *Repository) BeginMarketplaceTx(ctx context.Context) (datagateway.MarketplaceDataGatewayWithTx, error) {
	if r.tx != nil {
		return nil, errors.WithStack(ErrTxAlreadyExists)
	}
	return &Repository{
		shared: r.shared,
		tx:     newOverlay(),
	}, nil
}

func (r *Repository) Commit(ctx context.Context) error {
	if r.tx == nil {
		return nil
	}
	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()

	s := r.shared.state
	if r.tx.entitiesSince != nil {
		s.truncateEntities(*r.tx.entitiesSince)
	}
	for key, versions := range r.tx.entities {
		if len(versions) == 0 {
			delete(s.entities, key)
			continue
		}
		s.entities[key] = versions
	}

	if r.tx.blocksSince != nil {
		s.truncateBlocks(*r.tx.blocksSince)
	}
	for _, block := range r.tx.blocks {
		s.createBlock(block)
	}

	s.indexerStates = append(s.indexerStates, r.tx.indexerStates...)
	r.tx = nil
	return nil
}

func (r *Repository) Rollback(ctx context.Context) error {
	r.tx = nil
	return nil
}

func (r *Repository) GetEntity(ctx context.Context, kind entity.Kind, id string) ([]byte, error) {
	key := entityKey{kind, id}

	if r.tx != nil {
		versions, ok := r.tx.entities[key]
		if !ok {
			versions = r.sharedVersions(key)
		}
		return latestData(versions)
	}

	r.shared.mu.RLock()
	defer r.shared.mu.RUnlock()
	return latestData(r.shared.state.entities[key])
}

func latestData(versions []version) ([]byte, error) {
	if len(versions) == 0 {
		return nil, errors.WithStack(errs.NotFound)
	}
	return append([]byte(nil), versions[len(versions)-1].data...), nil
}

func (r *Repository) PutEntity(ctx context.Context, kind entity.Kind, id string, blockHeight int64, data []byte) error {
	key := entityKey{kind, id}
	data = append([]byte(nil), data...)

	if r.tx != nil {
		versions, ok := r.tx.entities[key]
		if !ok {
			versions = r.sharedVersions(key)
		}
		r.tx.entities[key] = putVersion(versions, blockHeight, data)
		return nil
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.state.entities[key] = putVersion(r.shared.state.entities[key], blockHeight, data)
	return nil
}

func (r *Repository) DeleteEntitiesSinceHeight(ctx context.Context, height int64) error {
	if r.tx != nil {
		for key, versions := range r.tx.entities {
			r.tx.entities[key] = truncateVersions(versions, height)
		}
		r.tx.entitiesSince = minHeight(r.tx.entitiesSince, height)
		return nil
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.state.truncateEntities(height)
	return nil
}

func (r *Repository) GetLatestBlock(ctx context.Context) (types.BlockHeader, error) {
	var latest *entity.IndexedBlock
	if r.tx != nil {
		for _, block := range r.tx.blocks {
			if latest == nil || block.Height > latest.Height {
				latest = block
			}
		}
	}

	r.shared.mu.RLock()
	defer r.shared.mu.RUnlock()
	below := int64(math.MaxInt64)
	if r.tx != nil && r.tx.blocksSince != nil {
		below = *r.tx.blocksSince
	}
	if height, ok := r.shared.state.latestHeight(below); ok && (latest == nil || height > latest.Height) {
		latest = r.shared.state.blocks[height]
	}

	if latest == nil {
		return types.BlockHeader{}, errors.WithStack(errs.NotFound)
	}
	return latest.BlockHeader(), nil
}

func (r *Repository) GetIndexedBlockByHeight(ctx context.Context, height int64) (*entity.IndexedBlock, error) {
	if r.tx != nil {
		if block, ok := r.tx.blocks[height]; ok {
			return lo.ToPtr(*block), nil
		}
		if r.tx.blocksSince != nil && height >= *r.tx.blocksSince {
			return nil, errors.WithStack(errs.NotFound)
		}
	}

	r.shared.mu.RLock()
	defer r.shared.mu.RUnlock()
	block, ok := r.shared.state.blocks[height]
	if !ok {
		return nil, errors.WithStack(errs.NotFound)
	}
	return lo.ToPtr(*block), nil
}

func (r *Repository) CreateIndexedBlock(ctx context.Context, block *entity.IndexedBlock) error {
	if r.tx != nil {
		r.tx.blocks[block.Height] = lo.ToPtr(*block)
		return nil
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.state.createBlock(block)
	return nil
}

func (r *Repository) DeleteIndexedBlocksSinceHeight(ctx context.Context, height int64) error {
	if r.tx != nil {
		for h := range r.tx.blocks {
			if h >= height {
				delete(r.tx.blocks, h)
			}
		}
		r.tx.blocksSince = minHeight(r.tx.blocksSince, height)
		return nil
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.state.truncateBlocks(height)
	return nil
}

func (r *Repository) GetLatestIndexerState(ctx context.Context) (entity.IndexerState, error) {
	if r.tx != nil && len(r.tx.indexerStates) > 0 {
		return r.tx.indexerStates[len(r.tx.indexerStates)-1], nil
	}

	r.shared.mu.RLock()
	defer r.shared.mu.RUnlock()
	if len(r.shared.state.indexerStates) == 0 {
		return entity.IndexerState{}, errors.WithStack(errs.NotFound)
	}
	return r.shared.state.indexerStates[len(r.shared.state.indexerStates)-1], nil
}

func (r *Repository) SetIndexerState(ctx context.Context, indexerState entity.IndexerState) error {
	if r.tx != nil {
		r.tx.indexerStates = append(r.tx.indexerStates, indexerState)
		return nil
	}

	r.shared.mu.Lock()
	defer r.shared.mu.Unlock()
	r.shared.state.indexerStates = append(r.shared.state.indexerStates, indexerState)
	return nil
}
