package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/marketplace")

	r.Get("/block", h.GetCurrentBlock)
	r.Get("/markets/:token", h.GetMarket)
	r.Get("/markets/:token/stats/:currency", h.GetMarketStats)
	r.Get("/nfts/:token/:tokenId", h.GetNft)
	r.Get("/nfts/:token/:tokenId/stats/:currency", h.GetNftStats)
	r.Get("/auctions/:id", h.GetAuction)
	r.Get("/sell-orders/:id", h.GetSellOrder)
	r.Get("/users/:address", h.GetUser)
	r.Get("/currencies/:address", h.GetCurrency)
	return nil
}
