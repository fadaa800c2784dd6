package watcher

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
)

// DefaultInterval is the default polling interval of the phase watcher.
const DefaultInterval = 15 * time.Second

type Directory interface {
	Instances() []*snaps.Instance
}

type EventWriter interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
}

// Observer receives the phase counts of every scan.
type Observer interface {
	ObserveDirectory(total, active, visible int, liveItems uint64)
}

type Config struct {
	Interval time.Duration
	Events   EventWriter
	Notifier snaps.Notifier
	Observer Observer
}

// Watcher polls the registry and reports lifecycle transitions. Phases are never
// stored, so the watcher only compares consecutive observations.
type Watcher struct {
	directory Directory
	config    Config
	phases    map[common.Address]snaps.Phase

	running  atomic.Bool
	quitOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

func New(directory Directory, config Config) *Watcher {
	config.Interval = utils.Default(config.Interval, DefaultInterval)
	config.Notifier = snaps.Notifiers(config.Notifier)
	return &Watcher{
		directory: directory,
		config:    config,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (w *Watcher) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *Watcher) ShutdownWithTimeout(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.ShutdownWithContext(ctx)
}

func (w *Watcher) ShutdownWithContext(ctx context.Context) (err error) {
	w.quitOnce.Do(func() {
		close(w.quit)
		if !w.running.Load() {
			return
		}
		select {
		case <-w.done:
		case <-time.After(w.config.Interval + 30*time.Second):
			err = errors.Wrap(errs.Timeout, "phase watcher shutdown timeout")
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "phase watcher shutdown context canceled")
		}
	})
	return
}

func (w *Watcher) Run(ctx context.Context) error {
	if !w.running.CompareAndSwap(false, true) {
		return errors.New("phase watcher is already running")
	}
	defer close(w.done)

	ctx = logger.WithContext(ctx, slog.String("package", "watcher"))

	w.scan(ctx)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-w.quit:
			logger.InfoContext(ctx, "Got quit signal, stopping phase watcher")
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

// scan observes every instance once. The first observation of an instance seen at
// start-up is taken as its baseline; instances created later start from minting.
func (w *Watcher) scan(ctx context.Context) {
	initial := w.phases == nil
	if initial {
		w.phases = make(map[common.Address]snaps.Phase)
	}

	var (
		active, visible int
		liveItems       uint64
	)
	instances := w.directory.Instances()
	for _, instance := range instances {
		info := instance.Info()
		liveItems += info.TotalSupply
		if info.Phase.IsActive() {
			active++
		}
		if info.Phase.IsVisible() {
			visible++
		}

		previous, ok := w.phases[info.Id]
		w.phases[info.Id] = info.Phase
		if !ok {
			if initial {
				continue
			}
			previous = snaps.PhaseMintingOpen
		}
		if previous == info.Phase {
			continue
		}
		w.report(ctx, info, previous)
	}

	if w.config.Observer != nil {
		w.config.Observer.ObserveDirectory(len(instances), active, visible, liveItems)
	}
}

func (w *Watcher) report(ctx context.Context, info snaps.Info, previous snaps.Phase) {
	event := entity.Event{
		Instance: info.Id,
		Kind:     entity.EventKindPhaseChanged,
		Data: map[string]string{
			"phase":    info.Phase.String(),
			"previous": previous.String(),
		},
		Timestamp: info.Now,
	}
	if w.config.Events != nil {
		if err := w.config.Events.CreateEvent(ctx, &event); err != nil {
			logger.ErrorContext(ctx, "failed to record phase change", err, slogx.Stringer("instance", info.Id))
		}
	}
	logger.InfoContext(ctx, "snap phase changed",
		slogx.Stringer("instance", info.Id),
		slogx.Stringer("phase", info.Phase),
		slogx.Stringer("previous", previous),
	)
	w.config.Notifier.Notify(ctx, event)
}
