// Package projector turns decoded marketplace events into snapshot entity changes.
package projector

import (
	"context"
	"math"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/entitystore"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
	"github.com/gaze-network/marketplace-indexer/pkg/decimals"
	"github.com/shopspring/decimal"
)

type MarketRecreatePolicy string

const (
	// MarketRecreateReject rejects MarketCreated for a token that already has a market.
	MarketRecreateReject MarketRecreatePolicy = "reject"

	// MarketRecreateReset overwrites the existing market with fresh fees and zeroed totals.
	MarketRecreateReset MarketRecreatePolicy = "reset"
)

func ParseMarketRecreatePolicy(s string) (MarketRecreatePolicy, error) {
	switch policy := MarketRecreatePolicy(strings.ToLower(s)); policy {
	case "":
		return MarketRecreateReject, nil
	case MarketRecreateReject, MarketRecreateReset:
		return policy, nil
	default:
		return "", errors.Wrapf(errs.InvalidArgument, "unknown market recreate policy %q", s)
	}
}

type Options struct {
	MarketRecreatePolicy MarketRecreatePolicy
}

// Projector applies events one at a time. It holds no state between events.
type Projector struct {
	marketRecreatePolicy MarketRecreatePolicy
}

func New(opts Options) *Projector {
	policy := opts.MarketRecreatePolicy
	if policy == "" {
		policy = MarketRecreateReject
	}
	return &Projector{
		marketRecreatePolicy: policy,
	}
}

// Apply projects a single event into the store.
// A non-nil error means the store failed and the whole block must be discarded.
// Skipped and rejected events leave the store untouched.
func (p *Projector) Apply(ctx context.Context, s *entitystore.Store, event events.Event) (Result, error) {
	switch e := event.(type) {
	case *events.CurrencyAdded:
		return p.currencyAdded(ctx, s, e)
	case *events.MarketCreated:
		return p.marketCreated(ctx, s, e)
	case *events.MarketFeeChanged:
		return p.marketFeeChanged(ctx, s, e)
	case *events.MarketStateChanged:
		return p.marketStateChanged(ctx, s, e)
	case *events.AuctionCreated:
		return p.auctionCreated(ctx, s, e)
	case *events.AuctionBid:
		return p.auctionBid(ctx, s, e)
	case *events.AuctionEnd:
		return p.auctionEnd(ctx, s, e)
	case *events.AuctionSale:
		return p.auctionSale(ctx, s, e)
	case *events.SellOrderCreated:
		return p.sellOrderCreated(ctx, s, e)
	case *events.SellOrderCanceled:
		return p.sellOrderCanceled(ctx, s, e)
	case *events.Sale:
		return p.sale(ctx, s, e)
	case *events.WithdrawNft:
		return p.withdrawNft(ctx, s, e)
	default:
		return Result{}, errors.Wrapf(errs.Unsupported, "unsupported event type %T", event)
	}
}

// toDecimal keeps raw on-chain amounts unscaled.
func toDecimal(v *big.Int) decimal.Decimal {
	return decimals.FromBig(v, 0)
}

// toUnixSeconds clamps on-chain timestamps that do not fit in int64.
func toUnixSeconds(v *big.Int) int64 {
	switch {
	case v == nil || v.Sign() < 0:
		return 0
	case !v.IsInt64():
		return math.MaxInt64
	default:
		return v.Int64()
	}
}
