package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type getNftRequest struct {
	Token   string `params:"token"`
	TokenId string `params:"tokenId"`
}

type saleResult struct {
	Id            string          `json:"id"`
	Listing       string          `json:"listing"` // auction or sell order id
	Seller        string          `json:"seller"`
	Buyer         string          `json:"buyer"`
	Currency      string          `json:"currency"`
	Price         decimal.Decimal `json:"price"`
	Fee           decimal.Decimal `json:"fee"`
	CreatorFee    decimal.Decimal `json:"creatorFee"`
	ReflectionFee decimal.Decimal `json:"reflectionFee"`
	Timestamp     int64           `json:"timestamp"` // unix timestamp
}

type getNftResult struct {
	Id               string           `json:"id"`
	Token            string           `json:"token"`
	TokenId          decimal.Decimal  `json:"tokenId"`
	Market           string           `json:"market"`
	CurrentOwner     *string          `json:"currentOwner"`
	CurrentAuction   *auctionResult   `json:"currentAuction"`
	CurrentSellOrder *sellOrderResult `json:"currentSellOrder"`
	CurrentCurrency  *string          `json:"currentCurrency"`
	CurrentPrice     *decimal.Decimal `json:"currentPrice"`
	LastSale         *saleResult      `json:"lastSale"`
	TotalAuctions    int64            `json:"totalAuctions"`
	TotalSellOrders  int64            `json:"totalSellOrders"`
	TotalSales       int64            `json:"totalSales"`
}

type getNftResponse = HttpResponse[getNftResult]

func mapLastSale(detail *usecase.NftDetail) *saleResult {
	if sale := detail.LastAuctionSale; sale != nil {
		return &saleResult{
			Id:            sale.ID,
			Listing:       sale.Auction,
			Seller:        sale.Seller,
			Buyer:         sale.Buyer,
			Currency:      sale.Currency,
			Price:         sale.Price,
			Fee:           sale.Fee,
			CreatorFee:    sale.CreatorFee,
			ReflectionFee: sale.ReflectionFee,
			Timestamp:     sale.Timestamp.Unix(),
		}
	}
	if sale := detail.LastSellOrderSale; sale != nil {
		return &saleResult{
			Id:            sale.ID,
			Listing:       sale.Order,
			Seller:        sale.Seller,
			Buyer:         sale.Buyer,
			Currency:      sale.Currency,
			Price:         sale.Price,
			Fee:           sale.Fee,
			CreatorFee:    sale.CreatorFee,
			ReflectionFee: sale.ReflectionFee,
			Timestamp:     sale.Timestamp.Unix(),
		}
	}
	return nil
}

func (h *HttpHandler) GetNft(ctx *fiber.Ctx) (err error) {
	var req getNftRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	token, err := parseAddress("token", req.Token)
	if err != nil {
		return errors.WithStack(err)
	}
	tokenId, err := parseTokenID(req.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}

	detail, err := h.usecase.GetNftDetail(ctx.UserContext(), token, tokenId)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "nft not found")
		}
		return errors.Wrap(err, "error during GetNftDetail")
	}

	nft := detail.Nft
	result := &getNftResult{
		Id:              nft.ID,
		Token:           nft.Token,
		TokenId:         nft.TokenID,
		Market:          nft.Market,
		CurrentOwner:    nft.CurrentOwner,
		CurrentCurrency: nft.Listing.CurrentCurrency(),
		CurrentPrice:    nft.Listing.CurrentPrice(),
		LastSale:        mapLastSale(detail),
		TotalAuctions:   nft.TotalAuctions,
		TotalSellOrders: nft.TotalSellOrders,
		TotalSales:      nft.TotalSales,
	}
	if detail.CurrentAuction != nil {
		result.CurrentAuction = mapAuction(detail.CurrentAuction)
	}
	if detail.CurrentSellOrder != nil {
		result.CurrentSellOrder = mapSellOrder(detail.CurrentSellOrder)
	}

	return errors.WithStack(ctx.JSON(getNftResponse{Result: result}))
}

type getNftStatsRequest struct {
	Token    string `params:"token"`
	TokenId  string `params:"tokenId"`
	Currency string `params:"currency"`
}

type getNftStatsResponse = HttpResponse[currencyStatsResult]

func (h *HttpHandler) GetNftStats(ctx *fiber.Ctx) (err error) {
	var req getNftStatsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	token, err := parseAddress("token", req.Token)
	if err != nil {
		return errors.WithStack(err)
	}
	tokenId, err := parseTokenID(req.TokenId)
	if err != nil {
		return errors.WithStack(err)
	}
	currency, err := parseAddress("currency", req.Currency)
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.usecase.GetNftStats(ctx.UserContext(), token, tokenId, currency)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "nft stats not found")
		}
		return errors.Wrap(err, "error during GetNftStats")
	}

	resp := getNftStatsResponse{
		Result: &currencyStatsResult{
			Id:             stats.ID,
			Currency:       stats.Currency,
			Volume:         stats.Volume,
			Fees:           stats.Fees,
			CreatorFees:    stats.CreatorFees,
			ReflectionFees: stats.ReflectionFees,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}
