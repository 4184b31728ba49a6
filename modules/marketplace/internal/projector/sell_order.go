package projector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

func (p *Projector) sellOrderCreated(ctx context.Context, s *entitystore.Store, e *events.SellOrderCreated) (Result, error) {
	target, result, err := p.prepareListing(ctx, s, entity.ListingSellOrder, e.Token, e.TokenID, e.Seller)
	if err != nil || target == nil {
		return result, errors.WithStack(err)
	}

	nft := target.nft
	order := &entity.SellOrder{
		ID:        ListingID(nft.ID, nft.TotalSellOrders+1),
		Seller:    target.seller.ID,
		Market:    target.market.ID,
		Nft:       nft.ID,
		TokenID:   nft.TokenID,
		Currency:  AddressID(e.Currency),
		Price:     toDecimal(e.Price),
		Timestamp: e.Timestamp,
	}
	if err := entitystore.Save(ctx, s, order); err != nil {
		return Result{}, errors.WithStack(err)
	}

	nft.TotalSellOrders++
	target.market.TotalSellOrders++
	if err := p.commitListing(ctx, s, target, entity.SellOrderListing(order.ID, order.Currency, order.Price)); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

// liveSellOrder returns the live sell order of the nft and its market, or the Result explaining why there is none.
func (p *Projector) liveSellOrder(ctx context.Context, s *entitystore.Store, nft *entity.Nft, action string) (*entity.SellOrder, *entity.Market, Result, error) {
	if nft.Listing.Kind != entity.ListingSellOrder {
		return nil, nil, rejected(errors.Wrapf(ErrInvalidTransition, "%s on nft %s without a live sell order", action, nft.ID)), nil
	}
	order, err := entitystore.Find[entity.SellOrder](ctx, s.Reader(), nft.Listing.ID)
	if err != nil {
		return nil, nil, Result{}, errors.WithStack(err)
	}
	if order == nil {
		return nil, nil, skipped(errors.Wrapf(ErrSellOrderNotFound, "sell order %s", nft.Listing.ID)), nil
	}
	market, result, err := p.findMarket(ctx, s, nft.Market)
	if err != nil || market == nil {
		return nil, nil, result, errors.WithStack(err)
	}
	return order, market, Result{}, nil
}

func (p *Projector) sellOrderCanceled(ctx context.Context, s *entitystore.Store, e *events.SellOrderCanceled) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}
	order, _, result, err := p.liveSellOrder(ctx, s, nft, "cancel")
	if err != nil || order == nil {
		return result, errors.WithStack(err)
	}

	// counters stay as they are, cancel only frees the slot
	nft.Listing = entity.Unlisted()
	if err := entitystore.Save(ctx, s, nft); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) sale(ctx context.Context, s *entitystore.Store, e *events.Sale) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}
	order, market, result, err := p.liveSellOrder(ctx, s, nft, "sale")
	if err != nil || order == nil {
		return result, errors.WithStack(err)
	}

	buyer, err := p.getOrCreateUser(ctx, s, e.Buyer)
	if err != nil {
		return Result{}, errors.WithStack(err)
	}

	price := toDecimal(e.Price)
	sale := &entity.SellOrderSale{
		ID:        EventID(e.Header),
		Nft:       nft.ID,
		Order:     order.ID,
		Seller:    order.Seller,
		Buyer:     buyer.ID,
		Currency:  order.Currency,
		Price:     price,
		Timestamp: e.Timestamp,
		SaleFees:  computeFees(price, market),
	}
	if err := entitystore.Save(ctx, s, sale); err != nil {
		return Result{}, errors.WithStack(err)
	}

	if err := p.settleSale(ctx, s, market, nft, sale.ID, sale.Currency, price, sale.SaleFees); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}

func (p *Projector) withdrawNft(ctx context.Context, s *entitystore.Store, e *events.WithdrawNft) (Result, error) {
	nft, result, err := p.findNft(ctx, s, e.Token, e.TokenID)
	if err != nil || nft == nil {
		return result, errors.WithStack(err)
	}

	nft.CurrentOwner = nil
	if err := entitystore.Save(ctx, s, nft); err != nil {
		return Result{}, errors.WithStack(err)
	}
	return applied(), nil
}
