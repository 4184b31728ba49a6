package entitystore

import (
	"context"
	"testing"

	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	store := New(memory.NewRepository(), 7)

	_, err := Load[entity.User](ctx, store.Reader(), "0xa")
	assert.ErrorIs(t, err, errs.NotFound)

	user, err := Find[entity.User](ctx, store.Reader(), "0xa")
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, Save(ctx, store, &entity.User{ID: "0xa", Address: "0xa"}))

	user, err = Load[entity.User](ctx, store.Reader(), "0xa")
	require.NoError(t, err)
	assert.Equal(t, "0xa", user.Address)
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := New(memory.NewRepository(), 1)

	calls := 0
	newUser := func() *entity.User {
		calls++
		return &entity.User{ID: "0xa", Address: "0xa"}
	}

	first, created, err := GetOrCreate[entity.User](ctx, store, "0xa", newUser)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := GetOrCreate[entity.User](ctx, store, "0xa", newUser)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestGetOrCreateIDMismatch(t *testing.T) {
	ctx := context.Background()
	store := New(memory.NewRepository(), 1)

	_, _, err := GetOrCreate[entity.User](ctx, store, "0xa", func() *entity.User {
		return &entity.User{ID: "0xb"}
	})
	assert.ErrorIs(t, err, errs.InternalError)
}
