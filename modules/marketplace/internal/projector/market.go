package projector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

func (p *Projector) marketCreated(ctx context.Context, s *entitystore.Store, e *events.MarketCreated) (Result, error) {
	id := AddressID(e.Token)
	existing, err := entitystore.Find[entity.Market](ctx, s.Reader(), id)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}
	if existing != nil && p.marketRecreatePolicy != MarketRecreateReset {
		return rejected(errors.Wrapf(ErrMarketAlreadyExists, "market %s", id)), nil
	}

	market := &entity.Market{
		ID:            id,
		Token:         id,
		Name:          e.Name,
		Fee:           toDecimal(e.Fee),
		CreatorFee:    toDecimal(e.CreatorFee),
		ReflectionFee: toDecimal(e.ReflectionFee),
		Active:        true,
	}
	if err := entitystore.Save(ctx, s, market); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) marketFeeChanged(ctx context.Context, s *entitystore.Store, e *events.MarketFeeChanged) (Result, error) {
	market, result, err := p.findMarket(ctx, s, AddressID(e.Token))
	if err != nil || market == nil {
		return result, errors.WithStack(err)
	}

	market.Fee = toDecimal(e.Fee)
	market.CreatorFee = toDecimal(e.CreatorFee)
	market.ReflectionFee = toDecimal(e.ReflectionFee)
	if err := entitystore.Save(ctx, s, market); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) marketStateChanged(ctx context.Context, s *entitystore.Store, e *events.MarketStateChanged) (Result, error) {
	market, result, err := p.findMarket(ctx, s, AddressID(e.Token))
	if err != nil || market == nil {
		return result, errors.WithStack(err)
	}

	market.Active = e.IsActive
	if err := entitystore.Save(ctx, s, market); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}
