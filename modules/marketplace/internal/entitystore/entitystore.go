// Package entitystore provides typed access to the versioned entity store.
package entitystore

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
)

// Store binds an entity store to the height of the block being applied. Every write is versioned at that height.
type Store struct {
	dg     datagateway.EntityStore
	height int64
}

func New(dg datagateway.EntityStore, blockHeight int64) *Store {
	return &Store{dg: dg, height: blockHeight}
}

func (s *Store) BlockHeight() int64 {
	return s.height
}

// Ptr constrains E to be *T implementing entity.Entity.
type Ptr[T any] interface {
	*T
	entity.Entity
}

func kindOf[T any, E Ptr[T]]() entity.Kind {
	return E(new(T)).EntityKind()
}

// Load returns the entity stored under id. Returns errs.NotFound if it does not exist.
func Load[T any, E Ptr[T]](ctx context.Context, r datagateway.EntityReader, id string) (*T, error) {
	kind := kindOf[T, E]()
	data, err := r.GetEntity(ctx, kind, id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.NotFound, "%s %q not found", kind, id)
		}
		return nil, errors.Wrapf(err, "failed to get %s %q", kind, id)
	}
	value := new(T)
	if err := json.Unmarshal(data, value); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s %q", kind, id)
	}
	return value, nil
}

// Find is Load with a miss reported as a nil entity instead of an error.
func Find[T any, E Ptr[T]](ctx context.Context, r datagateway.EntityReader, id string) (*T, error) {
	value, err := Load[T, E](ctx, r, id)
	if errors.Is(err, errs.NotFound) {
		return nil, nil
	}
	return value, errors.WithStack(err)
}

// Save writes the full snapshot of the entity.
func Save[E entity.Entity](ctx context.Context, s *Store, e E) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s %q", e.EntityKind(), e.EntityID())
	}
	if err := s.dg.PutEntity(ctx, e.EntityKind(), e.EntityID(), s.height, data); err != nil {
		return errors.Wrapf(err, "failed to put %s %q", e.EntityKind(), e.EntityID())
	}
	return nil
}

// GetOrCreate loads the entity stored under id, or builds it with newFn and saves it.
// created reports whether the entity was built by this call.
func GetOrCreate[T any, E Ptr[T]](ctx context.Context, s *Store, id string, newFn func() *T) (value *T, created bool, err error) {
	value, err = Find[T, E](ctx, s.dg, id)
	if err != nil {
		return nil, false, errors.WithStack(err)
	}
	if value != nil {
		return value, false, nil
	}

	value = newFn()
	if got := E(value).EntityID(); got != id {
		return nil, false, errors.Wrapf(errs.InternalError, "constructed %s has id %q, expected %q", E(value).EntityKind(), got, id)
	}
	if err := Save(ctx, s, E(value)); err != nil {
		return nil, false, errors.WithStack(err)
	}
	return value, true, nil
}

// Reader exposes the underlying store for reads.
func (s *Store) Reader() datagateway.EntityReader {
	return s.dg
}
