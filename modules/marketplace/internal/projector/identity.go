package projector

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

const idSeparator = "-"

// AddressID is the id of every entity keyed by a single address (market, user, currency).
func AddressID(address common.Address) string {
	return strings.ToLower(address.Hex())
}

func NftID(token common.Address, tokenID *big.Int) string {
	return AddressID(token) + idSeparator + tokenID.String()
}

// ListingID is the id of the n-th auction or sell order of an nft.
func ListingID(nftID string, n int64) string {
	return nftID + idSeparator + strconv.FormatInt(n, 10)
}

// EventID is the id of rows recorded once per event (bids and sales).
func EventID(header events.Header) string {
	return strings.ToLower(header.TxHash.Hex()) + idSeparator + strconv.FormatUint(uint64(header.LogIndex), 10)
}

// StatsID is the id of a currency bucket within a market or nft scope.
func StatsID(scopeID, currencyID string) string {
	return scopeID + idSeparator + currencyID
}
