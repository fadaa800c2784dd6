package memory

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/uint128"
)

type state struct {
	instances map[common.Address]*entity.Instance
	items     map[common.Address]map[uint64]*entity.Item
	// events are kept in insertion order per instance.
	events   map[common.Address][]*entity.Event
	balances map[common.Address]uint128.Uint128

	// done marks a closed transaction.
	done bool
}

func newState() *state {
	return &state{
		instances: make(map[common.Address]*entity.Instance),
		items:     make(map[common.Address]map[uint64]*entity.Item),
		events:    make(map[common.Address][]*entity.Event),
		balances:  make(map[common.Address]uint128.Uint128),
	}
}

// clone copies everything a transaction may mutate. Stored records are
// copied on write by the repository, so sharing pointers to them is safe
// except for instances, whose last item id is updated in place.
func (s *state) clone() *state {
	c := &state{
		instances: make(map[common.Address]*entity.Instance, len(s.instances)),
		items:     make(map[common.Address]map[uint64]*entity.Item, len(s.items)),
		events:    make(map[common.Address][]*entity.Event, len(s.events)),
		balances:  make(map[common.Address]uint128.Uint128, len(s.balances)),
	}
	for id, instance := range s.instances {
		record := *instance
		c.instances[id] = &record
	}
	for id, items := range s.items {
		copied := make(map[uint64]*entity.Item, len(items))
		for itemId, item := range items {
			copied[itemId] = item
		}
		c.items[id] = copied
	}
	for id, events := range s.events {
		c.events[id] = events[:len(events):len(events)]
	}
	for account, balance := range s.balances {
		c.balances[account] = balance
	}
	return c
}
