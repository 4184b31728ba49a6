package httphandler

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/usecase"
)

type HttpHandler struct {
	usecase *usecase.Usecase
}

func New(usecase *usecase.Usecase) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
	}
}

type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, errs.NewPublicError(name + " is not a valid address")
	}
	return common.HexToAddress(value), nil
}

func parseTokenID(value string) (*big.Int, error) {
	tokenID, ok := new(big.Int).SetString(value, 10)
	if !ok || tokenID.Sign() < 0 {
		return nil, errs.NewPublicError("tokenId is not a valid uint256")
	}
	return tokenID, nil
}

// normalizeID checks composite ids of the form <address>-<...> and lowercases them.
func normalizeID(name, value string) (string, error) {
	value = strings.ToLower(value)
	prefix, rest, ok := strings.Cut(value, "-")
	if !ok || !common.IsHexAddress(prefix) || rest == "" {
		return "", errors.WithStack(errs.NewPublicError(name + " is not a valid id"))
	}
	return value, nil
}
