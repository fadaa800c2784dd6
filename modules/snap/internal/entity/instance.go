package entity

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/uint128"
)

// Descriptor is the collection-level metadata supplied at creation.
type Descriptor struct {
	Name         string
	Description  string
	Image        string
	ExternalLink string
	// SellerFeeBasisPoints is the secondary-sale royalty, 0..10000.
	SellerFeeBasisPoints uint16
	FeeRecipient         common.Address
}

// Instance is the persisted form of a snap collection.
type Instance struct {
	Id             common.Address
	Nonce          uint64
	CollectionName string
	Symbol         string
	Descriptor     Descriptor
	ImageURI       string
	MetadataURI    string
	MintFee        uint128.Uint128
	Creator        common.Address
	Owner          common.Address
	SalePrice      uint128.Uint128
	CreatedAt      time.Time

	MintWindow       time.Duration
	VisibilityWindow time.Duration

	// LastItemId is the highest item id ever allocated. Burned ids stay counted.
	LastItemId uint64
}

// Item is a minted, not yet burned, snap.
type Item struct {
	Instance common.Address
	ItemId   uint64
	Holder   common.Address
	MintedAt time.Time
}
