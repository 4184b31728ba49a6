package decimals

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromBig(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)

	testCases := []struct {
		name     string
		value    *big.Int
		decimals int32
		expected string
	}{
		{name: "nil", value: nil, decimals: 18, expected: "0"},
		{name: "raw", value: wei, decimals: 0, expected: "1500000000000000000"},
		{name: "ether", value: wei, decimals: 18, expected: "1.5"},
		{name: "smallest unit", value: big.NewInt(1), decimals: 36, expected: "0.000000000000000000000000000000000001"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FromBig(tc.value, tc.decimals).String())
		})
	}
}

func TestToBigInt(t *testing.T) {
	assert.Equal(t, "1500000000000000000", ToBigInt(MustFromString("1.5"), 18).String())
	assert.Equal(t, "1", ToBigInt(MustFromString("1.99"), 0).String(), "fraction is truncated")
	assert.Equal(t, "0", ToBigInt(decimal.Zero, 18).String())
}

func TestMustFromString(t *testing.T) {
	assert.Panics(t, func() { MustFromString("not a number") })
	assert.True(t, MustFromString("42").Equal(decimal.NewFromInt(42)))
}
