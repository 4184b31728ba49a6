package projector

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entity"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/pkg/decimals"
	"github.com/gaze-network/marketplace-indexer/pkg/logger"
	"github.com/gaze-network/marketplace-indexer/pkg/logger/slogx"
	"github.com/shopspring/decimal"
)

// feeDecimals is the fixed point scale of fee rates: a rate of 1e18 is 100%.
const feeDecimals = 18

var feeDenominator = decimals.PowerOfTen(feeDecimals)

// computeFees splits the fee components of a sale price, truncating toward zero.
func computeFees(price decimal.Decimal, market *entity.Market) entity.SaleFees {
	return entity.SaleFees{
		Fee:           applyRate(price, market.Fee),
		CreatorFee:    applyRate(price, market.CreatorFee),
		ReflectionFee: applyRate(price, market.ReflectionFee),
	}
}

func applyRate(price, rate decimal.Decimal) decimal.Decimal {
	q, _ := price.Mul(rate).QuoRem(feeDenominator, 0)
	return q
}

func newMarketCurrencyStats(marketID, currencyID string) func() *entity.MarketCurrencyStats {
	return func() *entity.MarketCurrencyStats {
		return &entity.MarketCurrencyStats{
			ID:             StatsID(marketID, currencyID),
			Market:         marketID,
			Currency:       currencyID,
			Volume:         decimal.Zero,
			Floor:          decimal.Zero,
			Fees:           decimal.Zero,
			CreatorFees:    decimal.Zero,
			ReflectionFees: decimal.Zero,
		}
	}
}

func newNftCurrencyStats(nftID, currencyID string) func() *entity.NftCurrencyStats {
	return func() *entity.NftCurrencyStats {
		return &entity.NftCurrencyStats{
			ID:             StatsID(nftID, currencyID),
			Nft:            nftID,
			Currency:       currencyID,
			Volume:         decimal.Zero,
			Fees:           decimal.Zero,
			CreatorFees:    decimal.Zero,
			ReflectionFees: decimal.Zero,
		}
	}
}

// ensureStatsBuckets creates the zeroed market and nft buckets of a listing currency.
func (p *Projector) ensureStatsBuckets(ctx context.Context, s *entitystore.Store, marketID, nftID, currencyID string) error {
	if _, _, err := entitystore.GetOrCreate[entity.MarketCurrencyStats](ctx, s, StatsID(marketID, currencyID), newMarketCurrencyStats(marketID, currencyID)); err != nil {
		return errors.Wrap(err, "failed to get or create market currency stats")
	}
	if _, _, err := entitystore.GetOrCreate[entity.NftCurrencyStats](ctx, s, StatsID(nftID, currencyID), newNftCurrencyStats(nftID, currencyID)); err != nil {
		return errors.Wrap(err, "failed to get or create nft currency stats")
	}
	return nil
}

// accumulateSale adds a sale to both currency buckets.
// Buckets are created with every listing, so a bucket created here means a listing was never projected.
func (p *Projector) accumulateSale(ctx context.Context, s *entitystore.Store, marketID, nftID, currencyID string, price decimal.Decimal, fees entity.SaleFees) error {
	marketStats, created, err := entitystore.GetOrCreate[entity.MarketCurrencyStats](ctx, s, StatsID(marketID, currencyID), newMarketCurrencyStats(marketID, currencyID))
	if err != nil {
		return errors.Wrap(err, "failed to get or create market currency stats")
	}
	if created {
		logger.WarnContext(ctx, "Market currency stats created on sale", slogx.String("id", marketStats.ID))
	}
	marketStats.Accumulate(price, fees)
	if err := entitystore.Save(ctx, s, marketStats); err != nil {
		return errors.WithStack(err)
	}

	nftStats, created, err := entitystore.GetOrCreate[entity.NftCurrencyStats](ctx, s, StatsID(nftID, currencyID), newNftCurrencyStats(nftID, currencyID))
	if err != nil {
		return errors.Wrap(err, "failed to get or create nft currency stats")
	}
	if created {
		logger.WarnContext(ctx, "Nft currency stats created on sale", slogx.String("id", nftStats.ID))
	}
	nftStats.Accumulate(price, fees)
	if err := entitystore.Save(ctx, s, nftStats); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
