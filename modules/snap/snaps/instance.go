package snaps

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
)

// MaxFeeBasisPoints is 100% expressed in basis points.
const MaxFeeBasisPoints = 10_000

// Instance is a single snap collection and its lifecycle engine.
// Mutating operations are serialized per instance and sample the clock once.
type Instance struct {
	// record is immutable after construction.
	record entity.Instance

	mu         sync.Mutex
	items      map[uint64]common.Address
	lastItemId uint64

	dg       datagateway.SnapDataGateway
	clock    Clock
	notifier Notifier
}

func newInstance(record entity.Instance, items []*entity.Item, dg datagateway.SnapDataGateway, clock Clock, notifier Notifier) (*Instance, error) {
	if record.Descriptor.SellerFeeBasisPoints > MaxFeeBasisPoints {
		return nil, errors.Wrapf(ErrInvalidFeeBasisPoints, "got %d", record.Descriptor.SellerFeeBasisPoints)
	}
	if record.MintWindow <= 0 || record.VisibilityWindow <= record.MintWindow {
		return nil, errors.Wrapf(errs.InvalidArgument, "mint window (%s) must be positive and shorter than visibility window (%s)", record.MintWindow, record.VisibilityWindow)
	}

	instance := &Instance{
		record:     record,
		items:      make(map[uint64]common.Address, len(items)),
		lastItemId: record.LastItemId,
		dg:         dg,
		clock:      clock,
		notifier:   notifier,
	}
	for _, item := range items {
		if item.ItemId == 0 || item.ItemId > record.LastItemId {
			return nil, errors.Wrapf(errs.SomethingWentWrong, "item #%d is outside allocated range of %s", item.ItemId, record.Id)
		}
		instance.items[item.ItemId] = item.Holder
	}
	return instance, nil
}

type MintParams struct {
	// Caller pays the mint fee.
	Caller  common.Address
	To      common.Address
	Payment uint128.Uint128
}

// Mint creates the next item for params.To. The payment must match the mint fee exactly
// and is forwarded to the fee recipient.
func (i *Instance) Mint(ctx context.Context, params MintParams) (uint64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.clock.Now()
	if !i.phaseAt(now).IsActive() {
		return 0, errors.Wrapf(ErrMintingEnded, "minting of %s ended at %s", i.record.Id, i.MintDeadline().Format(time.RFC3339))
	}
	switch cmp := params.Payment.Cmp(i.record.MintFee); {
	case cmp < 0:
		return 0, errors.Wrapf(ErrInsufficientPayment, "paid %s, mint fee is %s", params.Payment, i.record.MintFee)
	case cmp > 0:
		return 0, errors.Wrapf(ErrExcessPayment, "paid %s, mint fee is %s", params.Payment, i.record.MintFee)
	}
	if params.To == (common.Address{}) {
		return 0, errors.Wrap(ErrInvalidRecipient, "can't mint to the zero address")
	}

	itemId := i.lastItemId + 1
	event := entity.Event{
		Instance: i.record.Id,
		Kind:     entity.EventKindMinted,
		ItemId:   itemId,
		Actor:    params.Caller,
		Data: map[string]string{
			"to":      params.To.Hex(),
			"payment": params.Payment.String(),
		},
		Timestamp: now,
	}
	err := withTx(ctx, i.dg, func(tx datagateway.SnapDataGatewayWithTx) error {
		if !params.Payment.IsZero() {
			if err := tx.Transfer(ctx, params.Caller, i.FeeRecipient(), params.Payment); err != nil {
				return errors.Wrap(err, "failed to transfer mint fee")
			}
		}
		if err := tx.CreateItem(ctx, &entity.Item{
			Instance: i.record.Id,
			ItemId:   itemId,
			Holder:   params.To,
			MintedAt: now,
		}); err != nil {
			return errors.Wrap(err, "failed to create item")
		}
		if err := tx.SetLastItemId(ctx, i.record.Id, itemId); err != nil {
			return errors.Wrap(err, "failed to set last item id")
		}
		if err := tx.CreateEvent(ctx, &event); err != nil {
			return errors.Wrap(err, "failed to create mint event")
		}
		return nil
	})
	if err != nil {
		return 0, errors.WithStack(err)
	}

	i.items[itemId] = params.To
	i.lastItemId = itemId
	i.notifier.Notify(ctx, event)
	return itemId, nil
}

type BurnParams struct {
	Caller common.Address
	ItemId uint64
}

// Burn destroys an item. While the collection is visible only the owner may burn,
// afterwards anyone may.
func (i *Instance) Burn(ctx context.Context, params BurnParams) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.clock.Now()
	holder, ok := i.items[params.ItemId]
	if !ok {
		return errors.Wrapf(ErrItemNotFound, "item #%d of %s", params.ItemId, i.record.Id)
	}
	if !CanBurn(i.phaseAt(now), params.Caller, i.record.Owner) {
		return errors.Wrapf(ErrUnauthorizedBurn, "%s is not the owner of %s", params.Caller, i.record.Id)
	}

	event := entity.Event{
		Instance:  i.record.Id,
		Kind:      entity.EventKindBurned,
		ItemId:    params.ItemId,
		Actor:     params.Caller,
		Data:      map[string]string{"holder": holder.Hex()},
		Timestamp: now,
	}
	err := withTx(ctx, i.dg, func(tx datagateway.SnapDataGatewayWithTx) error {
		if err := tx.DeleteItem(ctx, i.record.Id, params.ItemId); err != nil {
			return errors.Wrap(err, "failed to delete item")
		}
		if err := tx.CreateEvent(ctx, &event); err != nil {
			return errors.Wrap(err, "failed to create burn event")
		}
		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	delete(i.items, params.ItemId)
	i.notifier.Notify(ctx, event)
	return nil
}

// Name returns the collection name while visible, ExpiredName afterwards.
func (i *Instance) Name() string {
	return i.nameAt(i.clock.Now())
}

func (i *Instance) nameAt(now time.Time) string {
	if !i.phaseAt(now).IsVisible() {
		return ExpiredName
	}
	return i.record.CollectionName
}

func (i *Instance) Phase() Phase {
	return i.phaseAt(i.clock.Now())
}

func (i *Instance) phaseAt(now time.Time) Phase {
	return PhaseAt(now, i.record.CreatedAt, i.record.MintWindow, i.record.VisibilityWindow)
}

// OwnerOf returns the holder of an existing item.
func (i *Instance) OwnerOf(itemId uint64) (common.Address, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	holder, ok := i.items[itemId]
	if !ok {
		return common.Address{}, errors.Wrapf(ErrItemNotFound, "item #%d of %s", itemId, i.record.Id)
	}
	return holder, nil
}

func (i *Instance) TotalSupply() uint64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return uint64(len(i.items))
}

// ItemIds returns the ids of all existing items in ascending order.
func (i *Instance) ItemIds() []uint64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	ids := make([]uint64, 0, len(i.items))
	for id := range i.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// FeeRecipient is where mint fees go: the descriptor's fee recipient, or the creator if unset.
func (i *Instance) FeeRecipient() common.Address {
	if i.record.Descriptor.FeeRecipient == (common.Address{}) {
		return i.record.Creator
	}
	return i.record.Descriptor.FeeRecipient
}

func (i *Instance) Id() common.Address            { return i.record.Id }
func (i *Instance) Nonce() uint64                 { return i.record.Nonce }
func (i *Instance) CollectionName() string        { return i.record.CollectionName }
func (i *Instance) Symbol() string                { return i.record.Symbol }
func (i *Instance) Descriptor() entity.Descriptor { return i.record.Descriptor }
func (i *Instance) ImageURI() string              { return i.record.ImageURI }
func (i *Instance) MetadataURI() string           { return i.record.MetadataURI }
func (i *Instance) MintFee() uint128.Uint128      { return i.record.MintFee }
func (i *Instance) SalePrice() uint128.Uint128    { return i.record.SalePrice }
func (i *Instance) Owner() common.Address         { return i.record.Owner }
func (i *Instance) Creator() common.Address       { return i.record.Creator }
func (i *Instance) CreatedAt() time.Time          { return i.record.CreatedAt }
func (i *Instance) MintDeadline() time.Time       { return i.record.CreatedAt.Add(i.record.MintWindow) }
func (i *Instance) VisibilityDeadline() time.Time {
	return i.record.CreatedAt.Add(i.record.VisibilityWindow)
}
func (i *Instance) MintWindow() time.Duration       { return i.record.MintWindow }
func (i *Instance) VisibilityWindow() time.Duration { return i.record.VisibilityWindow }

// Info is a point-in-time view of an instance.
type Info struct {
	Id                 common.Address
	Name               string
	Symbol             string
	Phase              Phase
	TotalSupply        uint64
	LastItemId         uint64
	Now                time.Time
	MintDeadline       time.Time
	VisibilityDeadline time.Time
}

// Info samples the clock once and returns a consistent view of the instance.
func (i *Instance) Info() Info {
	i.mu.Lock()
	defer i.mu.Unlock()
	now := i.clock.Now()
	return Info{
		Id:                 i.record.Id,
		Name:               i.nameAt(now),
		Symbol:             i.record.Symbol,
		Phase:              i.phaseAt(now),
		TotalSupply:        uint64(len(i.items)),
		LastItemId:         i.lastItemId,
		Now:                now,
		MintDeadline:       i.MintDeadline(),
		VisibilityDeadline: i.VisibilityDeadline(),
	}
}

func withTx(ctx context.Context, dg datagateway.SnapDataGateway, fn func(tx datagateway.SnapDataGatewayWithTx) error) error {
	tx, err := dg.BeginSnapTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			logger.WarnContext(ctx, "failed to rollback transaction", slogx.Error(err))
		}
	}()

	if err := fn(tx); err != nil {
		return errors.WithStack(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}
	return nil
}
