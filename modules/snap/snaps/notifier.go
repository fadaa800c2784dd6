package snaps

import (
	"context"

	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
)

// Notifier receives events after the state change that produced them is committed.
type Notifier interface {
	Notify(ctx context.Context, event entity.Event)
}

type NotifierFunc func(ctx context.Context, event entity.Event)

func (f NotifierFunc) Notify(ctx context.Context, event entity.Event) {
	f(ctx, event)
}

type notifiers []Notifier

func (ns notifiers) Notify(ctx context.Context, event entity.Event) {
	for _, n := range ns {
		n.Notify(ctx, event)
	}
}

// Notifiers fans events out to all given notifiers, skipping nils.
func Notifiers(ns ...Notifier) Notifier {
	result := make(notifiers, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			result = append(result, n)
		}
	}
	return result
}
