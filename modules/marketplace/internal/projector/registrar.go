package projector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

func (p *Projector) getOrCreateUser(ctx context.Context, s *entitystore.Store, address common.Address) (*entity.User, error) {
	id := AddressID(address)
	user, _, err := entitystore.GetOrCreate[entity.User](ctx, s, id, func() *entity.User {
		return &entity.User{ID: id, Address: id}
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get or create user")
	}
	return user, nil
}

func (p *Projector) currencyAdded(ctx context.Context, s *entitystore.Store, e *events.CurrencyAdded) (Result, error) {
	id := AddressID(e.Currency)
	_, _, err := entitystore.GetOrCreate[entity.Currency](ctx, s, id, func() *entity.Currency {
		return &entity.Currency{ID: id, Address: id}
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "failed to register currency")
	}
	return applied(), nil
}
