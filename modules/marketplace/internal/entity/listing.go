package entity

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ListingKind string

const (
	ListingNone ListingKind = "none"

	// ListingAuction is a live auction accepting bids.
	ListingAuction ListingKind = "auction"

	// ListingEndedAuction is an auction that has ended and awaits its sale.
	// It presents as unlisted.
	ListingEndedAuction ListingKind = "ended_auction"

	// ListingSellOrder is a live fixed-price sell order.
	ListingSellOrder ListingKind = "sell_order"
)

// ListingState is the single listing slot of an Nft.
// The zero value is unlisted.
type ListingState struct {
	Kind     ListingKind     `json:"kind"`
	ID       string          `json:"id,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

func Unlisted() ListingState {
	return ListingState{Kind: ListingNone}
}

func AuctionListing(auctionID, currency string, price decimal.Decimal) ListingState {
	return ListingState{Kind: ListingAuction, ID: auctionID, Currency: currency, Price: price}
}

func EndedAuctionListing(auctionID string) ListingState {
	return ListingState{Kind: ListingEndedAuction, ID: auctionID}
}

func SellOrderListing(orderID, currency string, price decimal.Decimal) ListingState {
	return ListingState{Kind: ListingSellOrder, ID: orderID, Currency: currency, Price: price}
}

// IsLive reports whether the slot holds a live auction or sell order.
func (l ListingState) IsLive() bool {
	return l.Kind == ListingAuction || l.Kind == ListingSellOrder
}

func (l ListingState) CurrentAuction() *string {
	if l.Kind != ListingAuction {
		return nil
	}
	return lo.ToPtr(l.ID)
}

func (l ListingState) CurrentSellOrder() *string {
	if l.Kind != ListingSellOrder {
		return nil
	}
	return lo.ToPtr(l.ID)
}

func (l ListingState) CurrentCurrency() *string {
	if !l.IsLive() {
		return nil
	}
	return lo.ToPtr(l.Currency)
}

func (l ListingState) CurrentPrice() *decimal.Decimal {
	if !l.IsLive() {
		return nil
	}
	return lo.ToPtr(l.Price)
}

// PendingSaleAuction returns the id of the ended auction waiting for its sale, if any.
func (l ListingState) PendingSaleAuction() (string, bool) {
	if l.Kind != ListingEndedAuction {
		return "", false
	}
	return l.ID, true
}
