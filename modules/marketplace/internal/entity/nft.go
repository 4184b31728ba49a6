package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type Nft struct {
	ID              string          `json:"id"`
	Token           string          `json:"token"`
	TokenID         decimal.Decimal `json:"tokenId"`
	Market          string          `json:"market"`
	CurrentOwner    *string         `json:"currentOwner"`
	Listing         ListingState    `json:"listing"`
	LastSale        *string         `json:"lastSale"`
	TotalAuctions   int64           `json:"totalAuctions"`
	TotalSellOrders int64           `json:"totalSellOrders"`
	TotalSales      int64           `json:"totalSales"`
}

func (Nft) EntityKind() Kind   { return KindNft }
func (n Nft) EntityID() string { return n.ID }

type Auction struct {
	ID            string          `json:"id"`
	Seller        string          `json:"seller"`
	Market        string          `json:"market"`
	Nft           string          `json:"nft"`
	TokenID       decimal.Decimal `json:"tokenId"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
	EndsAt        int64           `json:"endsAt"` // unix seconds
	InitialBid    decimal.Decimal `json:"initialBid"`
	HighestBid    decimal.Decimal `json:"highestBid"`
	HighestBidder *string         `json:"highestBidder"`
	Ended         bool            `json:"ended"`
}

func (Auction) EntityKind() Kind   { return KindAuction }
func (a Auction) EntityID() string { return a.ID }

type AuctionBid struct {
	ID        string          `json:"id"`
	Auction   string          `json:"auction"`
	Bidder    string          `json:"bidder"`
	Value     decimal.Decimal `json:"value"`
	Timestamp time.Time       `json:"timestamp"`
}

func (AuctionBid) EntityKind() Kind   { return KindAuctionBid }
func (b AuctionBid) EntityID() string { return b.ID }

type SellOrder struct {
	ID        string          `json:"id"`
	Seller    string          `json:"seller"`
	Market    string          `json:"market"`
	Nft       string          `json:"nft"`
	TokenID   decimal.Decimal `json:"tokenId"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
}

func (SellOrder) EntityKind() Kind   { return KindSellOrder }
func (o SellOrder) EntityID() string { return o.ID }
