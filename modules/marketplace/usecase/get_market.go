package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
)

func (u *Usecase) GetMarket(ctx context.Context, token common.Address) (*entity.Market, error) {
	market, err := entitystore.Load[entity.Market](ctx, u.entities, projector.AddressID(token))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get market")
	}
	return market, nil
}

func (u *Usecase) GetMarketStats(ctx context.Context, token, currency common.Address) (*entity.MarketCurrencyStats, error) {
	id := projector.StatsID(projector.AddressID(token), projector.AddressID(currency))
	stats, err := entitystore.Load[entity.MarketCurrencyStats](ctx, u.entities, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get market stats")
	}
	return stats, nil
}

func (u *Usecase) GetUser(ctx context.Context, address common.Address) (*entity.User, error) {
	user, err := entitystore.Load[entity.User](ctx, u.entities, projector.AddressID(address))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	return user, nil
}

func (u *Usecase) GetCurrency(ctx context.Context, address common.Address) (*entity.Currency, error) {
	currency, err := entitystore.Load[entity.Currency](ctx, u.entities, projector.AddressID(address))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get currency")
	}
	return currency, nil
}
