package decimals

import (
	"github.com/shopspring/decimal"
)

const (
	minPowerOfTen = -DefaultDivPrecision
	maxPowerOfTen = DefaultDivPrecision
)

// powerOfTen caches 10^n for n in [minPowerOfTen, maxPowerOfTen].
var powerOfTen = func() map[int32]decimal.Decimal {
	table := make(map[int32]decimal.Decimal, maxPowerOfTen-minPowerOfTen+1)
	for n := int32(minPowerOfTen); n <= maxPowerOfTen; n++ {
		table[n] = decimal.New(1, n)
	}
	return table
}()

// PowerOfTen optimized arithmetic performance for 10^n.
func PowerOfTen(n int32) decimal.Decimal {
	if val, ok := powerOfTen[n]; ok {
		return val
	}
	return decimal.New(1, n)
}
