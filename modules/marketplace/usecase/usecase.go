package usecase

import (
	"github.com/gaze-network/marketplace-indexer/modules/marketplace/datagateway"
)

type Usecase struct {
	marketplaceDg datagateway.MarketplaceReaderDataGateway
	entities      datagateway.EntityReader
}

// New creates a Usecase reading entities straight from the datagateway.
// Use WithEntityReader to read entities through a cache instead.
func New(marketplaceDg datagateway.MarketplaceReaderDataGateway) *Usecase {
	return &Usecase{
		marketplaceDg: marketplaceDg,
		entities:      marketplaceDg,
	}
}

func (u *Usecase) WithEntityReader(reader datagateway.EntityReader) *Usecase {
	u.entities = reader
	return u
}
