package projector

import "github.com/cockroachdb/errors"

var (
	ErrMarketNotFound      = errors.New("market not found")
	ErrNftNotFound         = errors.New("nft not found")
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrSellOrderNotFound   = errors.New("sell order not found")
	ErrMarketAlreadyExists = errors.New("market already exists")
	ErrInvalidTransition   = errors.New("invalid listing transition")
)

type Status int

const (
	// StatusApplied means the event changed the snapshot.
	StatusApplied Status = iota

	// StatusSkipped means a required entity is missing. Nothing was written.
	StatusSkipped

	// StatusRejected means the event is out of order for the current listing state. Nothing was written.
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusSkipped:
		return "skipped"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result is the outcome of projecting one event.
type Result struct {
	Status Status

	// Reason wraps one of the Err* sentinels when Status is not StatusApplied.
	Reason error
}

func applied() Result {
	return Result{Status: StatusApplied}
}

func skipped(reason error) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

func rejected(reason error) Result {
	return Result{Status: StatusRejected, Reason: reason}
}
