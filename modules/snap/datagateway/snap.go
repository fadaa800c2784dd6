package datagateway

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/uint128"
)

type SnapDataGateway interface {
	SnapReaderDataGateway
	SnapWriterDataGateway
	LedgerDataGateway

	// BeginSnapTx returns a new SnapDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginSnapTx(ctx context.Context) (SnapDataGatewayWithTx, error)
}

type SnapDataGatewayWithTx interface {
	SnapDataGateway
	Tx
}

type SnapReaderDataGateway interface {
	// GetInstances returns all instances ordered by nonce.
	GetInstances(ctx context.Context) ([]*entity.Instance, error)
	GetItemsByInstance(ctx context.Context, instance common.Address) ([]*entity.Item, error)
	// GetEventsByInstance returns events of the instance, newest first.
	GetEventsByInstance(ctx context.Context, instance common.Address, limit int32, offset int32) ([]*entity.Event, error)
}

type SnapWriterDataGateway interface {
	CreateInstance(ctx context.Context, instance *entity.Instance) error
	// SetLastItemId records the highest allocated item id of the instance.
	SetLastItemId(ctx context.Context, instance common.Address, itemId uint64) error
	CreateItem(ctx context.Context, item *entity.Item) error
	// DeleteItem returns errs.NotFound if the item doesn't exist.
	DeleteItem(ctx context.Context, instance common.Address, itemId uint64) error
	CreateEvent(ctx context.Context, event *entity.Event) error
}

// LedgerDataGateway is the settlement side of the datagateway: account balances and atomic transfers.
type LedgerDataGateway interface {
	// GetBalance returns zero for unknown accounts.
	GetBalance(ctx context.Context, account common.Address) (uint128.Uint128, error)
	Credit(ctx context.Context, account common.Address, amount uint128.Uint128) error
	// Transfer moves amount from one account to another. It returns errs.InsufficientFunds if the sender can't cover it.
	Transfer(ctx context.Context, from common.Address, to common.Address, amount uint128.Uint128) error
}
