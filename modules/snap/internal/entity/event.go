package entity

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type EventKind string

const (
	EventKindSnapMade     EventKind = "snap_made"
	EventKindMinted       EventKind = "minted"
	EventKindBurned       EventKind = "burned"
	EventKindPhaseChanged EventKind = "phase_changed"
)

func (k EventKind) String() string {
	return string(k)
}

// Event is a notification emitted for off-chain consumers.
type Event struct {
	Instance common.Address
	Kind     EventKind
	// ItemId is zero for collection-level events.
	ItemId    uint64
	Actor     common.Address
	Data      map[string]string
	Timestamp time.Time
}
