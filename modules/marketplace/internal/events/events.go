package events

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Kind string

const (
	KindCurrencyAdded      Kind = "CurrencyAdded"
	KindMarketCreated      Kind = "MarketCreated"
	KindMarketFeeChanged   Kind = "MarketFeeChanged"
	KindMarketStateChanged Kind = "MarketStateChanged"
	KindAuctionCreated     Kind = "AuctionCreated"
	KindAuctionBid         Kind = "AuctionBid"
	KindAuctionSale        Kind = "AuctionSale"
	KindAuctionEnd         Kind = "AuctionEnd"
	KindSellOrderCreated   Kind = "SellOrderCreated"
	KindSellOrderCanceled  Kind = "SellOrderCanceled"
	KindSale               Kind = "Sale"
	KindWithdrawNft        Kind = "WithdrawNft"
)

// Header locates an event in the chain.
type Header struct {
	BlockHeight int64
	Timestamp   time.Time
	TxHash      common.Hash
	LogIndex    uint
}

func (h Header) EventHeader() Header {
	return h
}

// Event is a decoded marketplace contract event.
type Event interface {
	Kind() Kind
	EventHeader() Header
}

type CurrencyAdded struct {
	Header
	Currency common.Address
}

type MarketCreated struct {
	Header
	Token         common.Address
	Name          string
	Fee           *big.Int
	CreatorFee    *big.Int
	ReflectionFee *big.Int
}

type MarketFeeChanged struct {
	Header
	Token         common.Address
	Fee           *big.Int
	CreatorFee    *big.Int
	ReflectionFee *big.Int
}

type MarketStateChanged struct {
	Header
	Token    common.Address
	IsActive bool
}

type AuctionCreated struct {
	Header
	Token      common.Address
	TokenID    *big.Int
	Seller     common.Address
	Currency   common.Address
	InitialBid *big.Int
	EndsAt     *big.Int
}

type AuctionBid struct {
	Header
	Token   common.Address
	TokenID *big.Int
	Bidder  common.Address
	Amount  *big.Int
}

type AuctionSale struct {
	Header
	Token   common.Address
	TokenID *big.Int
	Bidder  common.Address
	Amount  *big.Int
}

type AuctionEnd struct {
	Header
	Token   common.Address
	TokenID *big.Int
}

type SellOrderCreated struct {
	Header
	Token    common.Address
	TokenID  *big.Int
	Seller   common.Address
	Currency common.Address
	Price    *big.Int
}

type SellOrderCanceled struct {
	Header
	Token   common.Address
	TokenID *big.Int
}

type Sale struct {
	Header
	Token   common.Address
	TokenID *big.Int
	Buyer   common.Address
	Price   *big.Int
}

type WithdrawNft struct {
	Header
	Token   common.Address
	TokenID *big.Int
}

func (CurrencyAdded) Kind() Kind      { return KindCurrencyAdded }
func (MarketCreated) Kind() Kind      { return KindMarketCreated }
func (MarketFeeChanged) Kind() Kind   { return KindMarketFeeChanged }
func (MarketStateChanged) Kind() Kind { return KindMarketStateChanged }
func (AuctionCreated) Kind() Kind     { return KindAuctionCreated }
func (AuctionBid) Kind() Kind         { return KindAuctionBid }
func (AuctionSale) Kind() Kind        { return KindAuctionSale }
func (AuctionEnd) Kind() Kind         { return KindAuctionEnd }
func (SellOrderCreated) Kind() Kind   { return KindSellOrderCreated }
func (SellOrderCanceled) Kind() Kind  { return KindSellOrderCanceled }
func (Sale) Kind() Kind               { return KindSale }
func (WithdrawNft) Kind() Kind        { return KindWithdrawNft }
