package projector

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

// listingTarget is the market and nft a new listing is created on.
type listingTarget struct {
	market *entity.Market
	nft    *entity.Nft
	seller *entity.User
}

// prepareListing checks the preconditions shared by AuctionCreated and SellOrderCreated,
// then registers the seller and the nft. The returned Result is only meaningful when target is nil.
// A live listing of the same kind is superseded by the new one, a live listing of the other kind rejects it.
func (p *Projector) prepareListing(ctx context.Context, s *entitystore.Store, kind entity.ListingKind, token common.Address, tokenID *big.Int, seller common.Address) (*listingTarget, Result, error) {
	marketID := AddressID(token)
	market, err := entitystore.Find[entity.Market](ctx, s.Reader(), marketID)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}
	if market == nil {
		return nil, skipped(errors.Wrapf(ErrMarketNotFound, "market %s", marketID)), nil
	}

	nftID := NftID(token, tokenID)
	nft, err := entitystore.Find[entity.Nft](ctx, s.Reader(), nftID)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}
	if nft != nil && nft.Listing.IsLive() && nft.Listing.Kind != kind {
		return nil, rejected(errors.Wrapf(ErrInvalidTransition, "nft %s is already listed by %s %s", nftID, nft.Listing.Kind, nft.Listing.ID)), nil
	}

	if nft != nil && nft.Listing.IsLive() {
		logger.DebugContext(ctx, "Superseding live listing",
			slogx.String("nft", nftID),
			slogx.String("listing", nft.Listing.ID),
		)
	}

	user, err := p.getOrCreateUser(ctx, s, seller)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}

	nft, created, err := entitystore.GetOrCreate[entity.Nft](ctx, s, nftID, func() *entity.Nft {
		return &entity.Nft{
			ID:      nftID,
			Token:   marketID,
			TokenID: toDecimal(tokenID),
			Market:  marketID,
			Listing: entity.Unlisted(),
		}
	})
	if err != nil {
		return nil, Result{}, errors.Wrap(err, "failed to get or create nft")
	}
	if created {
		market.TotalNfts++
	}

	return &listingTarget{market: market, nft: nft, seller: user}, Result{}, nil
}

// commitListing points the nft slot to the new listing, then saves nft, market and the currency buckets.
func (p *Projector) commitListing(ctx context.Context, s *entitystore.Store, target *listingTarget, listing entity.ListingState) error {
	target.nft.Listing = listing
	if err := entitystore.Save(ctx, s, target.nft); err != nil {
		return errors.WithStack(err)
	}
	if err := entitystore.Save(ctx, s, target.market); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(p.ensureStatsBuckets(ctx, s, target.market.ID, target.nft.ID, listing.Currency))
}

// settleSale records the common effects of a completed sale on the nft, the market and the currency buckets.
func (p *Projector) settleSale(ctx context.Context, s *entitystore.Store, market *entity.Market, nft *entity.Nft, saleID, currencyID string, price decimal.Decimal, fees entity.SaleFees) error {
	nft.Listing = entity.Unlisted()
	nft.LastSale = &saleID
	nft.TotalSales++
	if err := entitystore.Save(ctx, s, nft); err != nil {
		return errors.WithStack(err)
	}

	market.TotalSales++
	if err := entitystore.Save(ctx, s, market); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(p.accumulateSale(ctx, s, market.ID, nft.ID, currencyID, price, fees))
}

func (p *Projector) findNft(ctx context.Context, s *entitystore.Store, token common.Address, tokenID *big.Int) (*entity.Nft, Result, error) {
	nftID := NftID(token, tokenID)
	nft, err := entitystore.Find[entity.Nft](ctx, s.Reader(), nftID)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}
	if nft == nil {
		return nil, skipped(errors.Wrapf(ErrNftNotFound, "nft %s", nftID)), nil
	}
	return nft, Result{}, nil
}

func (p *Projector) findMarket(ctx context.Context, s *entitystore.Store, id string) (*entity.Market, Result, error) {
	market, err := entitystore.Find[entity.Market](ctx, s.Reader(), id)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}
	if market == nil {
		return nil, skipped(errors.Wrapf(ErrMarketNotFound, "market %s", id)), nil
	}
	return market, Result{}, nil
}
