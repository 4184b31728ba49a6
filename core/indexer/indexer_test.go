package indexer

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/internal/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProcessor struct {
	indexed      map[int64]types.BlockHeader
	revertedFrom int64
}

func (p *fakeProcessor) Name() string { return "fake" }

func (p *fakeProcessor) Process(context.Context, []*types.Block) error { return nil }

func (p *fakeProcessor) CurrentBlock(context.Context) (types.BlockHeader, error) {
	return types.BlockHeader{}, errors.WithStack(errs.NotFound)
}

func (p *fakeProcessor) GetIndexedBlock(_ context.Context, height int64) (types.BlockHeader, error) {
	header, ok := p.indexed[height]
	if !ok {
		return types.BlockHeader{}, errors.WithStack(errs.NotFound)
	}
	return header, nil
}

func (p *fakeProcessor) RevertData(_ context.Context, from int64) error {
	p.revertedFrom = from
	return nil
}

func (p *fakeProcessor) VerifyStates(context.Context) error { return nil }

func (p *fakeProcessor) Shutdown(context.Context) error { return nil }

type fakeDatasource struct {
	headers map[int64]types.BlockHeader
}

func (d *fakeDatasource) Name() string { return "fake" }

func (d *fakeDatasource) Fetch(context.Context, int64, int64) ([]*types.Block, error) {
	return nil, nil
}

func (d *fakeDatasource) FetchAsync(context.Context, int64, int64, chan<- []*types.Block) (*subscription.ClientSubscription[[]*types.Block], error) {
	return nil, errors.WithStack(errs.Unsupported)
}

func (d *fakeDatasource) GetBlockHeader(_ context.Context, height int64) (types.BlockHeader, error) {
	return d.headers[height], nil
}

func chain(length int64, salt byte) map[int64]types.BlockHeader {
	headers := make(map[int64]types.BlockHeader, length)
	prev := common.Hash{}
	for h := int64(0); h < length; h++ {
		hash := common.BytesToHash([]byte{salt, byte(h)})
		headers[h] = types.BlockHeader{Hash: hash, Height: h, PrevBlock: prev}
		prev = hash
	}
	return headers
}

func TestRevertToForkPoint(t *testing.T) {
	ctx := context.Background()

	// local chain 0..9; remote shares blocks 0..6 and forks from height 7
	local := chain(10, 1)
	remote := chain(10, 1)
	for h := int64(7); h < 10; h++ {
		header := remote[h]
		header.Hash = common.BytesToHash([]byte{2, byte(h)})
		if h > 7 {
			header.PrevBlock = remote[h-1].Hash
		}
		remote[h] = header
	}

	processor := &fakeProcessor{indexed: local}
	idx := New[*types.Block](processor, &fakeDatasource{headers: remote})
	idx.currentBlock = local[9]

	err := idx.revertToForkPoint(ctx, types.BlockHeader{Height: 10, PrevBlock: remote[9].Hash})
	require.NoError(t, err)
	assert.Equal(t, int64(7), processor.revertedFrom)
	assert.Equal(t, remote[6], idx.currentBlock)
}

func TestRevertToForkPointLookBackLimit(t *testing.T) {
	ctx := context.Background()

	local := chain(10, 1)
	remote := chain(10, 2)

	processor := &fakeProcessor{indexed: local}
	idx := New[*types.Block](processor, &fakeDatasource{headers: remote}, WithMaxReorgLookBack(3))
	idx.currentBlock = local[9]

	err := idx.revertToForkPoint(ctx, types.BlockHeader{Height: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.SomethingWentWrong)
	assert.Zero(t, processor.revertedFrom)
}

func TestRevertToForkPointBelowFirstIndexedBlock(t *testing.T) {
	ctx := context.Background()

	// indexing started at block 5, the remote chain then replaced block 5
	remote := chain(8, 1)
	replaced := remote[5]
	replaced.Hash = common.BytesToHash([]byte{2, 5})

	processor := &fakeProcessor{indexed: map[int64]types.BlockHeader{5: replaced}}
	idx := New[*types.Block](processor, &fakeDatasource{headers: remote})
	idx.currentBlock = replaced

	err := idx.revertToForkPoint(ctx, types.BlockHeader{Height: 6, PrevBlock: remote[5].Hash})
	require.NoError(t, err)
	assert.Equal(t, int64(5), processor.revertedFrom)
	assert.Equal(t, remote[4], idx.currentBlock)
}

func TestRevertToForkPointGenesis(t *testing.T) {
	ctx := context.Background()

	local := chain(2, 1)
	remote := chain(2, 2)

	processor := &fakeProcessor{indexed: local, revertedFrom: -1}
	idx := New[*types.Block](processor, &fakeDatasource{headers: remote})
	idx.currentBlock = local[1]

	err := idx.revertToForkPoint(ctx, types.BlockHeader{Height: 2, PrevBlock: remote[1].Hash})
	require.NoError(t, err)
	assert.Equal(t, int64(0), processor.revertedFrom)
	assert.Equal(t, int64(-1), idx.currentBlock.Height)
}

func TestIsContinuous(t *testing.T) {
	ctx := context.Background()
	headers := chain(4, 1)
	blocks := []*types.Block{{Header: headers[1]}, {Header: headers[2]}, {Header: headers[3]}}
	assert.True(t, isContinuous(ctx, blocks))

	broken := headers[3]
	broken.PrevBlock = common.HexToHash("0xff")
	assert.False(t, isContinuous(ctx, []*types.Block{{Header: headers[2]}, {Header: broken}}))

	assert.False(t, isContinuous(ctx, []*types.Block{{Header: headers[1]}, {Header: headers[3]}}))
}
