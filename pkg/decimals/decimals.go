// Package decimals converts on-chain integer amounts to and from decimal.Decimal without floating point.
package decimals

import (
	"math/big"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// FromBig converts an integer amount with the given number of decimals, e.g. wei with 18 decimals.
// A nil value is zero.
func FromBig(value *big.Int, decimals int32) decimal.Decimal {
	if value == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(value, -decimals)
}

// ToBigInt scales amount by 10^decimals and truncates the fraction.
func ToBigInt(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Mul(PowerOfTen(decimals)).BigInt()
}
