package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type getMarketRequest struct {
	Token string `params:"token"`
}

type getMarketResult struct {
	Id              string          `json:"id"`
	Name            string          `json:"name"`
	Fee             decimal.Decimal `json:"fee"`
	CreatorFee      decimal.Decimal `json:"creatorFee"`
	ReflectionFee   decimal.Decimal `json:"reflectionFee"`
	Active          bool            `json:"active"`
	TotalNfts       int64           `json:"totalNfts"`
	TotalAuctions   int64           `json:"totalAuctions"`
	TotalSellOrders int64           `json:"totalSellOrders"`
	TotalSales      int64           `json:"totalSales"`
}

type getMarketResponse = HttpResponse[getMarketResult]

func (h *HttpHandler) GetMarket(ctx *fiber.Ctx) (err error) {
	var req getMarketRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	token, err := parseAddress("token", req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	market, err := h.usecase.GetMarket(ctx.UserContext(), token)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "market not found")
		}
		return errors.Wrap(err, "error during GetMarket")
	}

	resp := getMarketResponse{
		Result: &getMarketResult{
			Id:              market.ID,
			Name:            market.Name,
			Fee:             market.Fee,
			CreatorFee:      market.CreatorFee,
			ReflectionFee:   market.ReflectionFee,
			Active:          market.Active,
			TotalNfts:       market.TotalNfts,
			TotalAuctions:   market.TotalAuctions,
			TotalSellOrders: market.TotalSellOrders,
			TotalSales:      market.TotalSales,
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}

type getMarketStatsRequest struct {
	Token    string `params:"token"`
	Currency string `params:"currency"`
}

type currencyStatsResult struct {
	Id             string           `json:"id"`
	Currency       string           `json:"currency"`
	Volume         decimal.Decimal  `json:"volume"`
	Floor          *decimal.Decimal `json:"floor,omitempty"` // market scope only
	Fees           decimal.Decimal  `json:"fees"`
	CreatorFees    decimal.Decimal  `json:"creatorFees"`
	ReflectionFees decimal.Decimal  `json:"reflectionFees"`
}

type getMarketStatsResponse = HttpResponse[currencyStatsResult]

func mapMarketStats(stats *entity.MarketCurrencyStats) *currencyStatsResult {
	floor := stats.Floor
	return &currencyStatsResult{
		Id:             stats.ID,
		Currency:       stats.Currency,
		Volume:         stats.Volume,
		Floor:          &floor,
		Fees:           stats.Fees,
		CreatorFees:    stats.CreatorFees,
		ReflectionFees: stats.ReflectionFees,
	}
}

func (h *HttpHandler) GetMarketStats(ctx *fiber.Ctx) (err error) {
	var req getMarketStatsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	token, err := parseAddress("token", req.Token)
	if err != nil {
		return errors.WithStack(err)
	}
	currency, err := parseAddress("currency", req.Currency)
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.usecase.GetMarketStats(ctx.UserContext(), token, currency)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "market stats not found")
		}
		return errors.Wrap(err, "error during GetMarketStats")
	}

	return errors.WithStack(ctx.JSON(getMarketStatsResponse{Result: mapMarketStats(stats)}))
}
