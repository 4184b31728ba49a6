package entity

import "github.com/shopspring/decimal"

type Market struct {
	ID              string          `json:"id"`
	Token           string          `json:"token"`
	Name            string          `json:"name"`
	Fee             decimal.Decimal `json:"fee"`
	CreatorFee      decimal.Decimal `json:"creatorFee"`
	ReflectionFee   decimal.Decimal `json:"reflectionFee"`
	Active          bool            `json:"active"`
	TotalNfts       int64           `json:"totalNfts"`
	TotalAuctions   int64           `json:"totalAuctions"`
	TotalSellOrders int64           `json:"totalSellOrders"`
	TotalSales      int64           `json:"totalSales"`
}

func (Market) EntityKind() Kind   { return KindMarket }
func (m Market) EntityID() string { return m.ID }

type User struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

func (User) EntityKind() Kind   { return KindUser }
func (u User) EntityID() string { return u.ID }

type Currency struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

func (Currency) EntityKind() Kind   { return KindCurrency }
func (c Currency) EntityID() string { return c.ID }
