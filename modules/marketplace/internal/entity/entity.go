package entity

// Kind names an entity table in the versioned entity store.
type Kind string

const (
	KindMarket              Kind = "market"
	KindUser                Kind = "user"
	KindCurrency            Kind = "currency"
	KindNft                 Kind = "nft"
	KindAuction             Kind = "auction"
	KindAuctionBid          Kind = "auction_bid"
	KindAuctionSale         Kind = "auction_sale"
	KindSellOrder           Kind = "sell_order"
	KindSellOrderSale       Kind = "sell_order_sale"
	KindMarketCurrencyStats Kind = "market_currency_stats"
	KindNftCurrencyStats    Kind = "nft_currency_stats"
)

// Kinds lists every entity kind.
var Kinds = []Kind{
	KindMarket,
	KindUser,
	KindCurrency,
	KindNft,
	KindAuction,
	KindAuctionBid,
	KindAuctionSale,
	KindSellOrder,
	KindSellOrderSale,
	KindMarketCurrencyStats,
	KindNftCurrencyStats,
}

func (k Kind) String() string {
	return string(k)
}

// Entity is a snapshot row keyed by a deterministic id.
type Entity interface {
	EntityKind() Kind
	EntityID() string
}
