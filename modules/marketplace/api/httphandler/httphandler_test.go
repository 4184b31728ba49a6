package httphandler

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/projector"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/repository/memory"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/usecase"
	"github.com/gaze-network/marketplace-indexer/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToken    = common.HexToAddress("0x000000000000000000000000000000000000000a")
	testCurrency = common.HexToAddress("0x000000000000000000000000000000000000000c")
	testTokenID  = big.NewInt(7)
)

func newTestApp(t *testing.T, repo *memory.Repository) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	require.NoError(t, New(usecase.New(repo)).Mount(app))
	return app
}

func seededRepository(t *testing.T) *memory.Repository {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewRepository()

	marketID := projector.AddressID(testToken)
	nftID := projector.NftID(testToken, testTokenID)
	orderID := projector.ListingID(nftID, 1)
	currencyID := projector.AddressID(testCurrency)

	store := entitystore.New(repo, 10)
	for _, e := range []entity.Entity{
		&entity.Market{ID: marketID, Token: marketID, Name: "Market", Active: true, TotalNfts: 1, TotalSellOrders: 1},
		&entity.Nft{
			ID:              nftID,
			Token:           marketID,
			TokenID:         decimal.NewFromBigInt(testTokenID, 0),
			Market:          marketID,
			Listing:         entity.SellOrderListing(orderID, currencyID, decimal.NewFromInt(100)),
			TotalSellOrders: 1,
		},
		&entity.SellOrder{ID: orderID, Nft: nftID, Market: marketID, Currency: currencyID, Price: decimal.NewFromInt(100)},
	} {
		require.NoError(t, entitystore.Save(ctx, store, e))
	}
	require.NoError(t, repo.CreateIndexedBlock(ctx, &entity.IndexedBlock{
		Height:    10,
		Hash:      common.HexToHash("0x10"),
		Timestamp: time.Unix(1700000000, 0),
	}))
	return repo
}

func doRequest(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(body, &result))
	}
	return resp.StatusCode, result
}

func TestGetMarketRoute(t *testing.T) {
	app := newTestApp(t, seededRepository(t))

	status, body := doRequest(t, app, "/v1/marketplace/markets/"+testToken.Hex())
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.Equal(t, "Market", result["name"])
	assert.Equal(t, true, result["active"])

	status, body = doRequest(t, app, "/v1/marketplace/markets/not-an-address")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "token is not a valid address", body["error"])

	status, _ = doRequest(t, app, "/v1/marketplace/markets/0x00000000000000000000000000000000000000ff")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetNftRoute(t *testing.T) {
	app := newTestApp(t, seededRepository(t))

	status, body := doRequest(t, app, "/v1/marketplace/nfts/"+testToken.Hex()+"/7")
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.Nil(t, result["currentAuction"])
	assert.Equal(t, "100", result["currentPrice"])
	order := result["currentSellOrder"].(map[string]any)
	assert.Equal(t, projector.ListingID(projector.NftID(testToken, testTokenID), 1), order["id"])

	status, _ = doRequest(t, app, "/v1/marketplace/nfts/"+testToken.Hex()+"/-1")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, "/v1/marketplace/nfts/"+testToken.Hex()+"/8")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetCurrentBlockRoute(t *testing.T) {
	status, body := doRequest(t, newTestApp(t, seededRepository(t)), "/v1/marketplace/block")
	require.Equal(t, http.StatusOK, status)
	result := body["result"].(map[string]any)
	assert.EqualValues(t, 10, result["height"])
	assert.EqualValues(t, 1700000000, result["timestamp"])

	status, _ = doRequest(t, newTestApp(t, memory.NewRepository()), "/v1/marketplace/block")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetSellOrderRoute(t *testing.T) {
	app := newTestApp(t, seededRepository(t))

	status, _ := doRequest(t, app, "/v1/marketplace/sell-orders/"+projector.ListingID(projector.NftID(testToken, testTokenID), 1))
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, "/v1/marketplace/sell-orders/bogus")
	assert.Equal(t, http.StatusBadRequest, status)
}
