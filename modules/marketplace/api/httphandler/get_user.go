package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gofiber/fiber/v2"
)

type getAddressRequest struct {
	Address string `params:"address"`
}

type addressResult struct {
	Id      string `json:"id"`
	Address string `json:"address"`
}

type getAddressResponse = HttpResponse[addressResult]

func (h *HttpHandler) GetUser(ctx *fiber.Ctx) (err error) {
	var req getAddressRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	address, err := parseAddress("address", req.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	user, err := h.usecase.GetUser(ctx.UserContext(), address)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return errors.Wrap(err, "error during GetUser")
	}

	return errors.WithStack(ctx.JSON(getAddressResponse{Result: &addressResult{Id: user.ID, Address: user.Address}}))
}

func (h *HttpHandler) GetCurrency(ctx *fiber.Ctx) (err error) {
	var req getAddressRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	address, err := parseAddress("address", req.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	currency, err := h.usecase.GetCurrency(ctx.UserContext(), address)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return fiber.NewError(fiber.StatusNotFound, "currency not found")
		}
		return errors.Wrap(err, "error during GetCurrency")
	}

	return errors.WithStack(ctx.JSON(getAddressResponse{Result: &addressResult{Id: currency.ID, Address: currency.Address}}))
}
