package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
)

func (u *Usecase) GetAuction(ctx context.Context, id string) (*entity.Auction, error) {
	auction, err := entitystore.Load[entity.Auction](ctx, u.entities, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auction")
	}
	return auction, nil
}

func (u *Usecase) GetSellOrder(ctx context.Context, id string) (*entity.SellOrder, error) {
	sellOrder, err := entitystore.Load[entity.SellOrder](ctx, u.entities, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sell order")
	}
	return sellOrder, nil
}
