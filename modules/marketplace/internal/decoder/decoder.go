// Package decoder turns raw marketplace contract logs into typed events.
package decoder

import (
	"bytes"
	_ "embed"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/gaze-network/marketplace-indexer/core/types"
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/internal/events"
)

//go:embed marketplace.abi.json
var marketplaceABIJSON []byte

// ErrUnknownEvent is returned for logs whose topic is not a marketplace event.
var ErrUnknownEvent = errors.New("unknown event")

type Decoder struct {
	abi    abi.ABI
	events map[common.Hash]abi.Event
}

func New() (*Decoder, error) {
	parsed, err := abi.JSON(bytes.NewReader(marketplaceABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse marketplace abi")
	}
	byTopic := make(map[common.Hash]abi.Event, len(parsed.Events))
	for _, event := range parsed.Events {
		byTopic[event.ID] = event
	}
	return &Decoder{abi: parsed, events: byTopic}, nil
}

// Event returns the ABI definition of the event kind. Its ID is the log topic0.
func (d *Decoder) Event(kind events.Kind) (abi.Event, bool) {
	event, ok := d.abi.Events[string(kind)]
	return event, ok
}

// Decode decodes a log emitted in the given block.
// It returns ErrUnknownEvent when topic0 is not a marketplace event,
// and errs.InvalidArgument when the log does not match the event layout.
func (d *Decoder) Decode(header types.BlockHeader, log *types.Log) (events.Event, error) {
	if len(log.Topics) == 0 {
		return nil, errors.WithStack(ErrUnknownEvent)
	}
	abiEvent, ok := d.events[log.Topics[0]]
	if !ok {
		return nil, errors.WithStack(ErrUnknownEvent)
	}

	args := make(args)
	if err := abiEvent.Inputs.NonIndexed().UnpackIntoMap(args, log.Data); err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "failed to unpack %s data: %v", abiEvent.Name, err)
	}
	indexed := make(abi.Arguments, 0, len(abiEvent.Inputs))
	for _, input := range abiEvent.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(log.Topics)-1 != len(indexed) {
		return nil, errors.Wrapf(errs.InvalidArgument, "%s expects %d indexed topics, got %d", abiEvent.Name, len(indexed), len(log.Topics)-1)
	}
	if err := abi.ParseTopicsIntoMap(args, indexed, log.Topics[1:]); err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "failed to parse %s topics: %v", abiEvent.Name, err)
	}

	h := events.Header{
		BlockHeight: header.Height,
		Timestamp:   header.Timestamp,
		TxHash:      log.TxHash,
		LogIndex:    log.LogIndex,
	}
	event, err := build(events.Kind(abiEvent.Name), h, args)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", abiEvent.Name)
	}
	return event, nil
}

func build(kind events.Kind, h events.Header, a args) (events.Event, error) {
	var event events.Event
	switch kind {
	case events.KindCurrencyAdded:
		event = &events.CurrencyAdded{Header: h, Currency: a.address("currency")}
	case events.KindMarketCreated:
		event = &events.MarketCreated{Header: h, Token: a.address("token"), Name: a.string("name"), Fee: a.bigInt("fee"), CreatorFee: a.bigInt("creatorFee"), ReflectionFee: a.bigInt("reflectionFee")}
	case events.KindMarketFeeChanged:
		event = &events.MarketFeeChanged{Header: h, Token: a.address("token"), Fee: a.bigInt("fee"), CreatorFee: a.bigInt("creatorFee"), ReflectionFee: a.bigInt("reflectionFee")}
	case events.KindMarketStateChanged:
		event = &events.MarketStateChanged{Header: h, Token: a.address("token"), IsActive: a.bool("isActive")}
	case events.KindAuctionCreated:
		event = &events.AuctionCreated{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId"), Seller: a.address("seller"), Currency: a.address("currency"), InitialBid: a.bigInt("initialBid"), EndsAt: a.bigInt("endsAt")}
	case events.KindAuctionBid:
		event = &events.AuctionBid{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId"), Bidder: a.address("bidder"), Amount: a.bigInt("amount")}
	case events.KindAuctionSale:
		event = &events.AuctionSale{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId"), Bidder: a.address("bidder"), Amount: a.bigInt("amount")}
	case events.KindAuctionEnd:
		event = &events.AuctionEnd{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId")}
	case events.KindSellOrderCreated:
		event = &events.SellOrderCreated{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId"), Seller: a.address("seller"), Currency: a.address("currency"), Price: a.bigInt("price")}
	case events.KindSellOrderCanceled:
		event = &events.SellOrderCanceled{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId")}
	case events.KindSale:
		event = &events.Sale{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId"), Buyer: a.address("buyer"), Price: a.bigInt("price")}
	case events.KindWithdrawNft:
		event = &events.WithdrawNft{Header: h, Token: a.address("token"), TokenID: a.bigInt("tokenId")}
	default:
		return nil, errors.Wrapf(errs.Unsupported, "event %s", kind)
	}
	if err := a.err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return event, nil
}

// args collects decoded values. Accessors record the first type mismatch instead of failing inline.
type args map[string]any

const argErrorKey = "\x00error"

func (a args) fail(name string, expected string) {
	if _, ok := a[argErrorKey]; !ok {
		a[argErrorKey] = errors.Wrapf(errs.InvalidArgument, "argument %q is not %s", name, expected)
	}
}

func (a args) err() error {
	if err, ok := a[argErrorKey].(error); ok {
		return err
	}
	return nil
}

func (a args) address(name string) common.Address {
	v, ok := a[name].(common.Address)
	if !ok {
		a.fail(name, "an address")
	}
	return v
}

func (a args) bigInt(name string) *big.Int {
	v, ok := a[name].(*big.Int)
	if !ok {
		a.fail(name, "a uint256")
		return new(big.Int)
	}
	return v
}

func (a args) bool(name string) bool {
	v, ok := a[name].(bool)
	if !ok {
		a.fail(name, "a bool")
	}
	return v
}

func (a args) string(name string) string {
	v, ok := a[name].(string)
	if !ok {
		a.fail(name, "a string")
	}
	return v
}
