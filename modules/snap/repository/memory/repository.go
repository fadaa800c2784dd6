package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/uint128"
	"github.com/samber/lo"
)

var _ datagateway.SnapDataGateway = (*Repository)(nil)

// Repository keeps snap state in process memory. A transaction holds the store
// lock until it is committed or rolled back and works on a private copy of the state.
type Repository struct {
	store *store
	// state is set for transactional repositories only.
	state *state
}

type store struct {
	mu    sync.Mutex
	state *state
}

func NewRepository() *Repository {
	return &Repository{store: &store{state: newState()}}
}

func (r *Repository) BeginSnapTx(ctx context.Context) (datagateway.SnapDataGatewayWithTx, error) {
	if r.state != nil {
		return nil, errors.Wrap(errs.Unsupported, "nested transactions are not supported")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	r.store.mu.Lock()
	return &Repository{store: r.store, state: r.store.state.clone()}, nil
}

func (r *Repository) Commit(context.Context) error {
	if r.state == nil {
		return nil
	}
	if r.state.done {
		return errors.Wrap(errs.Conflict, "transaction already closed")
	}
	r.state.done = true
	committed := r.state.clone()
	r.store.state = committed
	r.store.mu.Unlock()
	return nil
}

// Rollback discards the transaction. It is a no-op after Commit.
func (r *Repository) Rollback(context.Context) error {
	if r.state == nil {
		return nil
	}
	if r.state.done {
		return nil
	}
	r.state.done = true
	r.store.mu.Unlock()
	return nil
}

// view runs fn against the state visible to this repository.
func (r *Repository) view(fn func(s *state) error) error {
	if r.state != nil {
		if r.state.done {
			return errors.Wrap(errs.Conflict, "transaction already closed")
		}
		return fn(r.state)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store.state)
}

func (r *Repository) GetInstances(_ context.Context) ([]*entity.Instance, error) {
	var result []*entity.Instance
	err := r.view(func(s *state) error {
		result = make([]*entity.Instance, 0, len(s.instances))
		for _, instance := range s.instances {
			instance := *instance
			result = append(result, &instance)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Nonce < result[j].Nonce })
	return result, errors.WithStack(err)
}

func (r *Repository) GetItemsByInstance(_ context.Context, instance common.Address) ([]*entity.Item, error) {
	var result []*entity.Item
	err := r.view(func(s *state) error {
		items := s.items[instance]
		result = make([]*entity.Item, 0, len(items))
		for _, item := range items {
			item := *item
			result = append(result, &item)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ItemId < result[j].ItemId })
	return result, errors.WithStack(err)
}

func (r *Repository) GetEventsByInstance(_ context.Context, instance common.Address, limit int32, offset int32) ([]*entity.Event, error) {
	var result []*entity.Event
	err := r.view(func(s *state) error {
		events := s.events[instance]
		// newest first
		for i := len(events) - 1 - int(offset); i >= 0 && (limit <= 0 || len(result) < int(limit)); i-- {
			event := *events[i]
			event.Data = lo.Assign(events[i].Data)
			result = append(result, &event)
		}
		return nil
	})
	return result, errors.WithStack(err)
}

func (r *Repository) CreateInstance(_ context.Context, instance *entity.Instance) error {
	return r.view(func(s *state) error {
		if _, ok := s.instances[instance.Id]; ok {
			return errors.Wrapf(errs.Conflict, "instance %s already exists", instance.Id)
		}
		for _, existing := range s.instances {
			if existing.Nonce == instance.Nonce {
				return errors.Wrapf(errs.Conflict, "nonce %d is already used by %s", instance.Nonce, existing.Id)
			}
		}
		record := *instance
		s.instances[instance.Id] = &record
		return nil
	})
}

func (r *Repository) SetLastItemId(_ context.Context, instance common.Address, itemId uint64) error {
	return r.view(func(s *state) error {
		record, ok := s.instances[instance]
		if !ok {
			return errors.Wrapf(errs.NotFound, "instance %s", instance)
		}
		record.LastItemId = itemId
		return nil
	})
}

func (r *Repository) CreateItem(_ context.Context, item *entity.Item) error {
	return r.view(func(s *state) error {
		if _, ok := s.instances[item.Instance]; !ok {
			return errors.Wrapf(errs.NotFound, "instance %s", item.Instance)
		}
		items, ok := s.items[item.Instance]
		if !ok {
			items = make(map[uint64]*entity.Item)
			s.items[item.Instance] = items
		}
		if _, ok := items[item.ItemId]; ok {
			return errors.Wrapf(errs.Conflict, "item #%d of %s already exists", item.ItemId, item.Instance)
		}
		record := *item
		items[item.ItemId] = &record
		return nil
	})
}

func (r *Repository) DeleteItem(_ context.Context, instance common.Address, itemId uint64) error {
	return r.view(func(s *state) error {
		if _, ok := s.items[instance][itemId]; !ok {
			return errors.Wrapf(errs.NotFound, "item #%d of %s", itemId, instance)
		}
		delete(s.items[instance], itemId)
		return nil
	})
}

func (r *Repository) CreateEvent(_ context.Context, event *entity.Event) error {
	return r.view(func(s *state) error {
		record := *event
		record.Data = lo.Assign(event.Data)
		s.events[event.Instance] = append(s.events[event.Instance], &record)
		return nil
	})
}

func (r *Repository) GetBalance(_ context.Context, account common.Address) (uint128.Uint128, error) {
	var balance uint128.Uint128
	err := r.view(func(s *state) error {
		balance = s.balances[account]
		return nil
	})
	return balance, errors.WithStack(err)
}

func (r *Repository) Credit(_ context.Context, account common.Address, amount uint128.Uint128) error {
	return r.view(func(s *state) error {
		balance, overflow := s.balances[account].AddOverflow(amount)
		if overflow {
			return errors.Wrapf(errs.OverflowUint128, "balance of %s", account)
		}
		s.balances[account] = balance
		return nil
	})
}

func (r *Repository) Transfer(_ context.Context, from common.Address, to common.Address, amount uint128.Uint128) error {
	return r.view(func(s *state) error {
		fromBalance := s.balances[from]
		if fromBalance.Cmp(amount) < 0 {
			return errors.Wrapf(errs.InsufficientFunds, "%s can't cover %s", from, amount)
		}
		if from == to {
			return nil
		}
		toBalance, overflow := s.balances[to].AddOverflow(amount)
		if overflow {
			return errors.Wrapf(errs.OverflowUint128, "balance of %s", to)
		}
		s.balances[from] = fromBalance.Sub(amount)
		s.balances[to] = toBalance
		return nil
	})
}
