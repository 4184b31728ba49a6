package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingStateViews(t *testing.T) {
	price := decimal.NewFromInt(7)

	testCases := []struct {
		name             string
		listing          ListingState
		currentAuction   *string
		currentSellOrder *string
		live             bool
	}{
		{name: "zero value", listing: ListingState{}},
		{name: "unlisted", listing: Unlisted()},
		{name: "auction", listing: AuctionListing("0xa-1-1", "0xc", price), currentAuction: ptr("0xa-1-1"), live: true},
		{name: "sell order", listing: SellOrderListing("0xa-1-2", "0xc", price), currentSellOrder: ptr("0xa-1-2"), live: true},
		{name: "ended auction", listing: EndedAuctionListing("0xa-1-1")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.live, tc.listing.IsLive())
			assert.Equal(t, tc.currentAuction, tc.listing.CurrentAuction())
			assert.Equal(t, tc.currentSellOrder, tc.listing.CurrentSellOrder())
			if tc.live {
				assert.Equal(t, "0xc", *tc.listing.CurrentCurrency())
				assert.True(t, price.Equal(*tc.listing.CurrentPrice()))
			} else {
				assert.Nil(t, tc.listing.CurrentCurrency())
				assert.Nil(t, tc.listing.CurrentPrice())
			}
			assert.False(t, tc.listing.CurrentAuction() != nil && tc.listing.CurrentSellOrder() != nil)
		})
	}

	id, ok := EndedAuctionListing("0xa-1-1").PendingSaleAuction()
	assert.True(t, ok)
	assert.Equal(t, "0xa-1-1", id)
	_, ok = AuctionListing("0xa-1-1", "0xc", price).PendingSaleAuction()
	assert.False(t, ok)
}

func TestNftJSON(t *testing.T) {
	nft := Nft{
		ID:      "0xa-1",
		Token:   "0xa",
		TokenID: decimal.NewFromInt(1),
		Listing: AuctionListing("0xa-1-1", "0xc", decimal.RequireFromString("1000000000000000000")),
	}
	data, err := json.Marshal(nft)
	require.NoError(t, err)

	var decoded Nft
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, nft.Listing.Kind, decoded.Listing.Kind)
	assert.True(t, nft.Listing.Price.Equal(decoded.Listing.Price))
	assert.Nil(t, decoded.CurrentOwner)
}

func ptr(s string) *string { return &s }
