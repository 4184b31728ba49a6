package entity

import "github.com/shopspring/decimal"

type MarketCurrencyStats struct {
	ID             string          `json:"id"`
	Market         string          `json:"market"`
	Currency       string          `json:"currency"`
	Volume         decimal.Decimal `json:"volume"`
	Floor          decimal.Decimal `json:"floor"`
	Fees           decimal.Decimal `json:"fees"`
	CreatorFees    decimal.Decimal `json:"creatorFees"`
	ReflectionFees decimal.Decimal `json:"reflectionFees"`
}

func (MarketCurrencyStats) EntityKind() Kind   { return KindMarketCurrencyStats }
func (s MarketCurrencyStats) EntityID() string { return s.ID }

// Accumulate adds a sale to the bucket. Sums never decrease.
func (s *MarketCurrencyStats) Accumulate(price decimal.Decimal, fees SaleFees) {
	s.Volume = s.Volume.Add(price)
	s.Fees = s.Fees.Add(fees.Fee)
	s.CreatorFees = s.CreatorFees.Add(fees.CreatorFee)
	s.ReflectionFees = s.ReflectionFees.Add(fees.ReflectionFee)
}

type NftCurrencyStats struct {
	ID             string          `json:"id"`
	Nft            string          `json:"nft"`
	Currency       string          `json:"currency"`
	Volume         decimal.Decimal `json:"volume"`
	Fees           decimal.Decimal `json:"fees"`
	CreatorFees    decimal.Decimal `json:"creatorFees"`
	ReflectionFees decimal.Decimal `json:"reflectionFees"`
}

func (NftCurrencyStats) EntityKind() Kind   { return KindNftCurrencyStats }
func (s NftCurrencyStats) EntityID() string { return s.ID }

// Accumulate adds a sale to the bucket. Sums never decrease.
func (s *NftCurrencyStats) Accumulate(price decimal.Decimal, fees SaleFees) {
	s.Volume = s.Volume.Add(price)
	s.Fees = s.Fees.Add(fees.Fee)
	s.CreatorFees = s.CreatorFees.Add(fees.CreatorFee)
	s.ReflectionFees = s.ReflectionFees.Add(fees.ReflectionFee)
}
