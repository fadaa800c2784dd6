package snaps

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultMintWindow       = 24 * time.Hour
	DefaultVisibilityWindow = 48 * time.Hour

	loadConcurrency = 8
)

type RegistryConfig struct {
	// Address is the identity of the registry. Instance ids are derived from it.
	Address          common.Address
	MintFeeFloor     uint128.Uint128
	MintWindow       time.Duration
	VisibilityWindow time.Duration
	Clock            Clock
	Notifier         Notifier
}

// Registry is the factory and append-only directory of snap instances.
type Registry struct {
	config   RegistryConfig
	dg       datagateway.SnapDataGateway
	clock    Clock
	notifier Notifier

	// createMu serializes instance creation. Readers use the published directory.
	createMu  sync.Mutex
	directory atomic.Pointer[directory]
}

type directory struct {
	ids       []common.Address
	instances map[common.Address]*Instance
}

func (d *directory) with(instance *Instance) *directory {
	instances := make(map[common.Address]*Instance, len(d.instances)+1)
	for id, i := range d.instances {
		instances[id] = i
	}
	instances[instance.Id()] = instance
	ids := make([]common.Address, len(d.ids), len(d.ids)+1)
	copy(ids, d.ids)
	return &directory{ids: append(ids, instance.Id()), instances: instances}
}

func NewRegistry(dg datagateway.SnapDataGateway, config RegistryConfig) (*Registry, error) {
	config.MintWindow = utils.Default(config.MintWindow, DefaultMintWindow)
	config.VisibilityWindow = utils.Default(config.VisibilityWindow, DefaultVisibilityWindow)
	if config.MintWindow < 0 || config.VisibilityWindow <= config.MintWindow {
		return nil, errors.Wrapf(errs.InvalidArgument, "mint window (%s) must be shorter than visibility window (%s)", config.MintWindow, config.VisibilityWindow)
	}
	if config.Clock == nil {
		config.Clock = NewSystemClock()
	}

	r := &Registry{
		config:   config,
		dg:       dg,
		clock:    config.Clock,
		notifier: Notifiers(config.Notifier),
	}
	r.directory.Store(&directory{instances: map[common.Address]*Instance{}})
	return r, nil
}

func (r *Registry) Address() common.Address         { return r.config.Address }
func (r *Registry) MintFeeFloor() uint128.Uint128   { return r.config.MintFeeFloor }
func (r *Registry) MintWindow() time.Duration       { return r.config.MintWindow }
func (r *Registry) VisibilityWindow() time.Duration { return r.config.VisibilityWindow }

type CreateSnapParams struct {
	Caller common.Address
	// Creator defaults to Caller when zero.
	Creator        common.Address
	CollectionName string
	Symbol         string
	Descriptor     entity.Descriptor
	ImageURI       string
	MetadataURI    string
	MintFee        uint128.Uint128
	Owner          common.Address
	SalePrice      uint128.Uint128
}

// CreateSnap deploys a new instance and appends it to the directory.
func (r *Registry) CreateSnap(ctx context.Context, params CreateSnapParams) (common.Address, error) {
	if params.MintFee.Cmp(r.config.MintFeeFloor) < 0 {
		return common.Address{}, errors.Wrapf(ErrMintFeeTooLow, "mint fee %s is below floor %s", params.MintFee, r.config.MintFeeFloor)
	}

	r.createMu.Lock()
	defer r.createMu.Unlock()

	creator := params.Creator
	if creator == (common.Address{}) {
		creator = params.Caller
	}

	dir := r.directory.Load()
	nonce := uint64(len(dir.ids))
	// storage keeps microsecond precision
	now := r.clock.Now().Truncate(time.Microsecond)
	record := entity.Instance{
		Id:               crypto.CreateAddress(r.config.Address, nonce),
		Nonce:            nonce,
		CollectionName:   params.CollectionName,
		Symbol:           params.Symbol,
		Descriptor:       params.Descriptor,
		ImageURI:         params.ImageURI,
		MetadataURI:      params.MetadataURI,
		MintFee:          params.MintFee,
		Creator:          creator,
		Owner:            params.Owner,
		SalePrice:        params.SalePrice,
		CreatedAt:        now,
		MintWindow:       r.config.MintWindow,
		VisibilityWindow: r.config.VisibilityWindow,
	}
	instance, err := newInstance(record, nil, r.dg, r.clock, r.notifier)
	if err != nil {
		return common.Address{}, errors.WithStack(err)
	}

	event := entity.Event{
		Instance: record.Id,
		Kind:     entity.EventKindSnapMade,
		Actor:    params.Caller,
		Data: map[string]string{
			"creator": creator.Hex(),
			"owner":   params.Owner.Hex(),
		},
		Timestamp: now,
	}
	err = withTx(ctx, r.dg, func(tx datagateway.SnapDataGatewayWithTx) error {
		if err := tx.CreateInstance(ctx, &record); err != nil {
			return errors.Wrap(err, "failed to create instance")
		}
		if err := tx.CreateEvent(ctx, &event); err != nil {
			return errors.Wrap(err, "failed to create snap made event")
		}
		return nil
	})
	if err != nil {
		return common.Address{}, errors.WithStack(err)
	}

	r.directory.Store(dir.with(instance))
	logger.InfoContext(ctx, "snap created",
		slogx.Stringer("instance", record.Id),
		slogx.Uint64("nonce", nonce),
		slogx.Stringer("creator", creator),
	)
	r.notifier.Notify(ctx, event)
	return record.Id, nil
}

// GetSnap returns the instance created by this registry under id.
func (r *Registry) GetSnap(id common.Address) (*Instance, error) {
	instance, ok := r.directory.Load().instances[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownInstance, "%s", id)
	}
	return instance, nil
}

// GetSnaps returns all instance ids in creation order.
func (r *Registry) GetSnaps() []common.Address {
	ids := r.directory.Load().ids
	return append(make([]common.Address, 0, len(ids)), ids...)
}

// Instances returns all instances in creation order.
func (r *Registry) Instances() []*Instance {
	dir := r.directory.Load()
	return lo.Map(dir.ids, func(id common.Address, _ int) *Instance {
		return dir.instances[id]
	})
}

// GetActiveSnaps returns the ids, in creation order, of instances still open for minting.
func (r *Registry) GetActiveSnaps() []common.Address {
	return r.filter(Phase.IsActive)
}

// GetVisibleSnaps returns the ids, in creation order, of instances not yet expired.
func (r *Registry) GetVisibleSnaps() []common.Address {
	return r.filter(Phase.IsVisible)
}

func (r *Registry) filter(predicate func(Phase) bool) []common.Address {
	now := r.clock.Now()
	dir := r.directory.Load()
	return lo.Filter(dir.ids, func(id common.Address, _ int) bool {
		return predicate(dir.instances[id].phaseAt(now))
	})
}

func (r *Registry) IsActive(id common.Address) (bool, error) {
	instance, err := r.GetSnap(id)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return instance.Phase().IsActive(), nil
}

func (r *Registry) IsVisible(id common.Address) (bool, error) {
	instance, err := r.GetSnap(id)
	if err != nil {
		return false, errors.WithStack(err)
	}
	return instance.Phase().IsVisible(), nil
}

// Load restores the directory from the datagateway. It must be called before any instance is created.
func (r *Registry) Load(ctx context.Context) error {
	r.createMu.Lock()
	defer r.createMu.Unlock()

	if len(r.directory.Load().ids) > 0 {
		return errors.Wrap(errs.Conflict, "registry is already loaded")
	}

	records, err := r.dg.GetInstances(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get instances")
	}
	for nonce, record := range records {
		if record.Nonce != uint64(nonce) {
			return errors.Wrapf(errs.SomethingWentWrong, "instance %s has nonce %d, expected %d", record.Id, record.Nonce, nonce)
		}
		if expected := crypto.CreateAddress(r.config.Address, record.Nonce); record.Id != expected {
			return errors.Wrapf(errs.SomethingWentWrong, "instance %s wasn't created by registry %s, expected id %s", record.Id, r.config.Address, expected)
		}
	}

	instances := make([]*Instance, len(records))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(loadConcurrency)
	for idx, record := range records {
		idx, record := idx, record
		eg.Go(func() error {
			items, err := r.dg.GetItemsByInstance(ectx, record.Id)
			if err != nil {
				return errors.Wrapf(err, "failed to get items of %s", record.Id)
			}
			instance, err := newInstance(*record, items, r.dg, r.clock, r.notifier)
			if err != nil {
				return errors.Wrapf(err, "failed to restore instance %s", record.Id)
			}
			instances[idx] = instance
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.WithStack(err)
	}

	dir := &directory{
		ids:       make([]common.Address, 0, len(instances)),
		instances: make(map[common.Address]*Instance, len(instances)),
	}
	for _, instance := range instances {
		dir.ids = append(dir.ids, instance.Id())
		dir.instances[instance.Id()] = instance
	}
	r.directory.Store(dir)

	logger.InfoContext(ctx, "snap registry loaded", slogx.Int("instances", len(instances)))
	return nil
}
