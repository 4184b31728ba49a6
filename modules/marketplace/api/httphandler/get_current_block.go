package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getCurrentBlockResult struct {
	Hash      string `json:"hash"`
	Height    int64  `json:"height"`
	Timestamp int64  `json:"timestamp"` // unix timestamp
}

type getCurrentBlockResponse = HttpResponse[getCurrentBlockResult]

func (h *HttpHandler) GetCurrentBlock(ctx *fiber.Ctx) (err error) {
	blockHeader, err := h.usecase.GetLatestBlock(ctx.UserContext())
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "no block indexed yet")
		}
		return errors.Wrap(err, "error during GetLatestBlock")
	}

	resp := getCurrentBlockResponse{
		Result: &getCurrentBlockResult{
			Hash:      blockHeader.Hash.String(),
			Height:    blockHeader.Height,
			Timestamp: blockHeader.Timestamp.Unix(),
		},
	}

	return errors.WithStack(ctx.JSON(resp))
}
