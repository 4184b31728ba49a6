package usecase

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"golang.org/x/sync/errgroup"
)

// NftDetail is an nft with the entities its listing slot and last sale point to.
type NftDetail struct {
	Nft              *entity.Nft
	CurrentAuction   *entity.Auction
	CurrentSellOrder *entity.SellOrder
	// only one of them is set, depending on how the last sale settled
	LastAuctionSale   *entity.AuctionSale
	LastSellOrderSale *entity.SellOrderSale
}

func (u *Usecase) GetNft(ctx context.Context, token common.Address, tokenID *big.Int) (*entity.Nft, error) {
	nft, err := entitystore.Load[entity.Nft](ctx, u.entities, projector.NftID(token, tokenID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nft")
	}
	return nft, nil
}

func (u *Usecase) GetNftDetail(ctx context.Context, token common.Address, tokenID *big.Int) (*NftDetail, error) {
	nft, err := u.GetNft(ctx, token, tokenID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	detail := &NftDetail{Nft: nft}
	group, groupCtx := errgroup.WithContext(ctx)
	if id := nft.Listing.CurrentAuction(); id != nil {
		group.Go(func() (err error) {
			detail.CurrentAuction, err = entitystore.Find[entity.Auction](groupCtx, u.entities, *id)
			return errors.Wrap(err, "failed to get current auction")
		})
	}
	if id := nft.Listing.CurrentSellOrder(); id != nil {
		group.Go(func() (err error) {
			detail.CurrentSellOrder, err = entitystore.Find[entity.SellOrder](groupCtx, u.entities, *id)
			return errors.Wrap(err, "failed to get current sell order")
		})
	}
	if nft.LastSale != nil {
		id := *nft.LastSale
		group.Go(func() (err error) {
			detail.LastAuctionSale, err = entitystore.Find[entity.AuctionSale](groupCtx, u.entities, id)
			return errors.Wrap(err, "failed to get last auction sale")
		})
		group.Go(func() (err error) {
			detail.LastSellOrderSale, err = entitystore.Find[entity.SellOrderSale](groupCtx, u.entities, id)
			return errors.Wrap(err, "failed to get last sell order sale")
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	return detail, nil
}

func (u *Usecase) GetNftStats(ctx context.Context, token common.Address, tokenID *big.Int, currency common.Address) (*entity.NftCurrencyStats, error) {
	id := projector.StatsID(projector.NftID(token, tokenID), projector.AddressID(currency))
	stats, err := entitystore.Load[entity.NftCurrencyStats](ctx, u.entities, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nft stats")
	}
	return stats, nil
}
