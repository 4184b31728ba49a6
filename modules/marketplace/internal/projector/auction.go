package projector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

func (p *Projector) auctionCreated(ctx context.Context, s *entitystore.Store, e *events.AuctionCreated) (Result, error) {
	target, result, err := p.prepareListing(ctx, s, entity.ListingAuction, e.Token, e.TokenID, e.Seller)
	if err != nil || target == nil {
		return result, errors.WithStack(err)
	}

	nft := target.nft
	initialBid := toDecimal(e.InitialBid)
	auction := &entity.Auction{
		ID:         ListingID(nft.ID, nft.TotalAuctions+1),
		Seller:     target.seller.ID,
		Market:     target.market.ID,
		Nft:        nft.ID,
		TokenID:    nft.TokenID,
		Currency:   AddressID(e.Currency),
		Timestamp:  e.Timestamp,
		EndsAt:     toUnixSeconds(e.EndsAt),
		InitialBid: initialBid,
		HighestBid: initialBid,
	}
	if err := entitystore.Save(ctx, s, auction); err != nil {
		return Result{}, errors.WithStack(err)
	}

	nft.TotalAuctions++
	target.market.TotalAuctions++
	if err := p.commitListing(ctx, s, target, entity.AuctionListing(auction.ID, auction.Currency, auction.HighestBid)); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

// liveAuction returns the live auction of the nft, or the Result explaining why there is none.
func (p *Projector) liveAuction(ctx context.Context, s *entitystore.Store, nft *entity.Nft, action string) (*entity.Auction, Result, error) {
	if nft.Listing.Kind != entity.ListingAuction {
		return nil, rejected(errors.Wrapf(ErrInvalidTransition, "%s on nft %s without a live auction", action, nft.ID)), nil
	}
	auction, err := entitystore.Find[entity.Auction](ctx, s.Reader(), nft.Listing.ID)
	if err != nil {
		return nil, Result{}, errors.WithStack(err)
	}
	if auction == nil {
		return nil, skipped(errors.Wrapf(ErrAuctionNotFound, "auction %s", nft.Listing.ID)), nil
	}
	return auction, Result{}, nil
}

func (p *Projector) auctionBid(ctx context.Context, s *entitystore.Store, e *events.AuctionBid) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}
	auction, result, err := p.liveAuction(ctx, s, nft, "bid")
	if err != nil || auction == nil {
		return result, errors.WithStack(err)
	}

	bidder, err := p.getOrCreateUser(ctx, s, e.Bidder)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	// the contract enforces bid monotonicity
	amount := toDecimal(e.Amount)
	auction.HighestBid = amount
	auction.HighestBidder = &bidder.ID
	if err := entitystore.Save(ctx, s, auction); err != nil {
		return Result{}, errors.WithStack(err)
	}

	bid := &entity.AuctionBid{
		ID:        EventID(e.Header),
		Auction:   auction.ID,
		Bidder:    bidder.ID,
		Value:     amount,
		Timestamp: e.Timestamp,
	}
	if err := entitystore.Save(ctx, s, bid); err != nil {
		return Result{}, errors.WithStack(err)
	}

	nft.Listing.Price = amount
	if err := entitystore.Save(ctx, s, nft); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) auctionEnd(ctx context.Context, s *entitystore.Store, e *events.AuctionEnd) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}
	auction, result, err := p.liveAuction(ctx, s, nft, "end")
	if err != nil || auction == nil {
		return result, errors.WithStack(err)
	}

	auction.Ended = true
	if err := entitystore.Save(ctx, s, auction); err != nil {
		return Result{}, errors.WithStack(err)
	}

	// ownership and totals only change on the sale
	nft.Listing = entity.EndedAuctionListing(auction.ID)
	if err := entitystore.Save(ctx, s, nft); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) auctionSale(ctx context.Context, s *entitystore.Store, e *events.AuctionSale) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}

	auctionID, ok := nft.Listing.PendingSaleAuction()
	if !ok {
		if nft.Listing.Kind == entity.ListingAuction {
			return rejected(errors.Wrapf(ErrInvalidTransition, "auction %s has not ended", nft.Listing.ID)), nil
		}
		return rejected(errors.Wrapf(ErrInvalidTransition, "nft %s has no ended auction awaiting sale", nft.ID)), nil
	}
	auction, err := entitystore.Find[entity.Auction](ctx, s.Reader(), auctionID)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}
	if auction == nil {
		return skipped(errors.Wrapf(ErrAuctionNotFound, "auction %s", auctionID)), nil
	}
	market, result, err := p.findMarket(ctx, s, nft.Market)
	if err != nil || market == nil {
		return result, errors.WithStack(err)
	}

	buyer, err := p.getOrCreateUser(ctx, s, e.Bidder)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	price := toDecimal(e.Amount)
	sale := &entity.AuctionSale{
		ID:        EventID(e.Header),
		Nft:       nft.ID,
		Auction:   auction.ID,
		Seller:    auction.Seller,
		Buyer:     buyer.ID,
		Currency:  auction.Currency,
		Price:     price,
		Timestamp: e.Timestamp,
		SaleFees:  computeFees(price, market),
	}
	if err := entitystore.Save(ctx, s, sale); err != nil {
		return Result{}, errors.WithStack(err)
	}

	nft.CurrentOwner = &buyer.ID
	if err := p.settleSale(ctx, s, market, nft, sale.ID, sale.Currency, price, sale.SaleFees); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}
