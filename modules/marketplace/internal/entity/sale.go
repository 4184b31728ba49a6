package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleFees is the fee breakdown of a single sale.
type SaleFees struct {
	Fee           decimal.Decimal `json:"fee"`
	CreatorFee    decimal.Decimal `json:"creatorFee"`
	ReflectionFee decimal.Decimal `json:"reflectionFee"`
}

type AuctionSale struct {
	ID        string          `json:"id"`
	Nft       string          `json:"nft"`
	Auction   string          `json:"auction"`
	Seller    string          `json:"seller"`
	Buyer     string          `json:"buyer"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	SaleFees
}

func (AuctionSale) EntityKind() Kind   { return KindAuctionSale }
func (s AuctionSale) EntityID() string { return s.ID }

type SellOrderSale struct {
	ID        string          `json:"id"`
	Nft       string          `json:"nft"`
	Order     string          `json:"order"`
	Seller    string          `json:"seller"`
	Buyer     string          `json:"buyer"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
	Timestamp time.Time       `json:"timestamp"`
	SaleFees
}

func (SellOrderSale) EntityKind() Kind   { return KindSellOrderSale }
func (s SellOrderSale) EntityID() string { return s.ID }
