package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type getListingRequest struct {
	Id string `params:"id"`
}

type auctionResult struct {
	Id            string          `json:"id"`
	Nft           string          `json:"nft"`
	Market        string          `json:"market"`
	Seller        string          `json:"seller"`
	Currency      string          `json:"currency"`
	InitialBid    decimal.Decimal `json:"initialBid"`
	HighestBid    decimal.Decimal `json:"highestBid"`
	HighestBidder *string         `json:"highestBidder"`
	EndsAt        int64           `json:"endsAt"`    // unix timestamp
	Timestamp     int64           `json:"timestamp"` // unix timestamp
	Ended         bool            `json:"ended"`
}

type getAuctionResponse = HttpResponse[auctionResult]

func mapAuction(auction *entity.Auction) *auctionResult {
	return &auctionResult{
		Id:            auction.ID,
		Nft:           auction.Nft,
		Market:        auction.Market,
		Seller:        auction.Seller,
		Currency:      auction.Currency,
		InitialBid:    auction.InitialBid,
		HighestBid:    auction.HighestBid,
		HighestBidder: auction.HighestBidder,
		EndsAt:        auction.EndsAt,
		Timestamp:     auction.Timestamp.Unix(),
		Ended:         auction.Ended,
	}
}

func (h *HttpHandler) GetAuction(ctx *fiber.Ctx) (err error) {
	var req getListingRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	id, err := normalizeID("id", req.Id)
	if err != nil {
		return errors.WithStack(err)
	}

	auction, err := h.usecase.GetAuction(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "auction not found")
		}
		return errors.Wrap(err, "error during GetAuction")
	}

	return errors.WithStack(ctx.JSON(getAuctionResponse{Result: mapAuction(auction)}))
}

type sellOrderResult struct {
	Id        string          `json:"id"`
	Nft       string          `json:"nft"`
	Market    string          `json:"market"`
	Seller    string          `json:"seller"`
	Currency  string          `json:"currency"`
	Price     decimal.Decimal `json:"price"`
	Timestamp int64           `json:"timestamp"` // unix timestamp
}

type getSellOrderResponse = HttpResponse[sellOrderResult]

func mapSellOrder(order *entity.SellOrder) *sellOrderResult {
	return &sellOrderResult{
		Id:        order.ID,
		Nft:       order.Nft,
		Market:    order.Market,
		Seller:    order.Seller,
		Currency:  order.Currency,
		Price:     order.Price,
		Timestamp: order.Timestamp.Unix(),
	}
}

func (h *HttpHandler) GetSellOrder(ctx *fiber.Ctx) (err error) {
	var req getListingRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	id, err := normalizeID("id", req.Id)
	if err != nil {
		return errors.WithStack(err)
	}

	order, err := h.usecase.GetSellOrder(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "sell order not found")
		}
		return errors.Wrap(err, "error during GetSellOrder")
	}

	return errors.WithStack(ctx.JSON(getSellOrderResponse{Result: mapSellOrder(order)}))
}
