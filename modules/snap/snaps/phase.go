package snaps

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Phase is the position of an instance in its time-driven lifecycle.
// It is never stored, every operation derives it from the clock.
type Phase uint8

const (
	// PhaseMintingOpen: minting allowed, burn restricted to the owner.
	PhaseMintingOpen Phase = iota
	// PhaseClosedVisible: minting closed, name still canonical, burn restricted to the owner.
	PhaseClosedVisible
	// PhaseExpired is terminal: expired name, anyone may burn.
	PhaseExpired
)

var phaseNames = map[Phase]string{
	PhaseMintingOpen:   "minting_open",
	PhaseClosedVisible: "minting_closed_visible",
	PhaseExpired:       "expired",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// IsActive reports whether minting is still possible.
func (p Phase) IsActive() bool {
	return p == PhaseMintingOpen
}

// IsVisible reports whether the collection still shows its canonical name.
func (p Phase) IsVisible() bool {
	return p == PhaseMintingOpen || p == PhaseClosedVisible
}

// PhaseAt computes the phase of an instance created at createdAt.
// Both windows are measured from createdAt and mintWindow < visibilityWindow.
func PhaseAt(now time.Time, createdAt time.Time, mintWindow time.Duration, visibilityWindow time.Duration) Phase {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < mintWindow:
		return PhaseMintingOpen
	case elapsed < visibilityWindow:
		return PhaseClosedVisible
	default:
		return PhaseExpired
	}
}

// CanBurn reports whether caller may destroy an item of a collection owned by owner.
func CanBurn(phase Phase, caller common.Address, owner common.Address) bool {
	return phase == PhaseExpired || caller == owner
}
