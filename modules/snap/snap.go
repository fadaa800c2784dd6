package snap

import (
	"context"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/core"
	"github.com/gaze-network/nft-snap/internal/config"
	"github.com/gaze-network/nft-snap/internal/postgres"
	"github.com/gaze-network/nft-snap/modules/snap/api/httphandler"
	"github.com/gaze-network/nft-snap/modules/snap/datagateway"
	"github.com/gaze-network/nft-snap/modules/snap/internal/entity"
	"github.com/gaze-network/nft-snap/modules/snap/metrics"
	"github.com/gaze-network/nft-snap/modules/snap/repository/memory"
	pgrepository "github.com/gaze-network/nft-snap/modules/snap/repository/postgres"
	"github.com/gaze-network/nft-snap/modules/snap/snaps"
	"github.com/gaze-network/nft-snap/modules/snap/watcher"
	"github.com/gaze-network/nft-snap/modules/snap/webhook"
	"github.com/gaze-network/nft-snap/pkg/decimals"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/do/v2"
	"golang.org/x/sync/errgroup"
)

func New(injector do.Injector) (core.Worker, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)
	snapConfig := conf.Modules.Snap

	registryAddress := defaultRegistryAddress
	if snapConfig.RegistryAddress != "" {
		if !common.IsHexAddress(snapConfig.RegistryAddress) {
			return nil, errors.Wrapf(errs.InvalidArgument, "invalid registry address %q", snapConfig.RegistryAddress)
		}
		registryAddress = common.HexToAddress(snapConfig.RegistryAddress)
	}
	floor, err := decimals.ParseEther(utils.Default(snapConfig.MintFeeFloor, defaultMintFeeFloor))
	if err != nil {
		return nil, errors.Wrap(err, "invalid mint fee floor")
	}

	var (
		dg           datagateway.SnapDataGateway
		cleanupFuncs []func(context.Context) error
	)
	switch datasource := strings.ToLower(utils.Default(snapConfig.Datasource, DatasourcePostgres)); datasource {
	case DatasourcePostgres:
		pg, err := postgres.NewPool(ctx, snapConfig.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "can't create postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		dg = pgrepository.NewRepository(pg)
	case DatasourceMemory:
		logger.WarnContext(ctx, "Using in-memory datasource, state will be lost on restart")
		dg = memory.NewRepository()
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q datasource is not supported", datasource)
	}

	m := metrics.New(do.MustInvoke[prometheus.Registerer](injector))
	notifiers := []snaps.Notifier{m, snaps.NotifierFunc(logEvent)}
	var runners []runner

	if snapConfig.Webhook.Enabled() {
		hook, err := webhook.New(snapConfig.Webhook, m)
		if err != nil {
			return nil, errors.Wrap(err, "can't create webhook notifier")
		}
		notifiers = append(notifiers, hook)
		runners = append(runners, hook)
		logger.InfoContext(ctx, "Delivering snap events to webhook", slogx.String("url", snapConfig.Webhook.URL))
	}

	registry, err := snaps.NewRegistry(dg, snaps.RegistryConfig{
		Address:          registryAddress,
		MintFeeFloor:     floor,
		MintWindow:       snapConfig.MintWindow,
		VisibilityWindow: snapConfig.VisibilityWindow,
		Notifier:         snaps.Notifiers(notifiers...),
	})
	if err != nil {
		return nil, errors.Wrap(err, "invalid registry configuration")
	}
	if err := registry.Load(ctx); err != nil {
		return nil, errors.Wrap(err, "can't load snap registry")
	}

	httpServer := do.MustInvoke[*fiber.App](injector)
	snapHandler := httphandler.New(registry, dg, snapConfig.Faucet)
	if err := snapHandler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount snap API")
	}
	logger.InfoContext(ctx, "Mounted snap HTTP handler", slogx.Bool("faucet", snapConfig.Faucet))

	// phase changes reach the same sinks as lifecycle events
	w := watcher.New(registry, watcher.Config{
		Interval: snapConfig.WatchInterval,
		Events:   dg,
		Notifier: snaps.Notifiers(notifiers...),
		Observer: m,
	})
	runners = append([]runner{w}, runners...)
	logger.InfoContext(ctx, "Snap module started.",
		slogx.Stringer("registry", registryAddress),
		slogx.String("mintFeeFloor", decimals.FormatEther(floor)),
	)
	return &worker{runners: runners, cleanupFuncs: cleanupFuncs}, nil
}

func logEvent(ctx context.Context, event entity.Event) {
	logger.DebugContext(ctx, "snap event",
		slogx.Stringer("kind", event.Kind),
		slogx.Stringer("instance", event.Instance),
		slogx.Uint64("itemId", event.ItemId),
		slogx.Stringer("actor", event.Actor),
	)
}

type runner interface {
	Run(ctx context.Context) error
	ShutdownWithContext(ctx context.Context) error
}

// worker runs the phase watcher and the webhook notifier, and releases the
// module's resources on shutdown.
type worker struct {
	runners      []runner
	cleanupFuncs []func(context.Context) error
}

func (w *worker) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range w.runners {
		g.Go(func() error { return errors.WithStack(r.Run(ctx)) })
	}
	return errors.WithStack(g.Wait())
}

func (w *worker) Shutdown() error {
	return w.ShutdownWithContext(context.Background())
}

func (w *worker) ShutdownWithContext(ctx context.Context) error {
	var errList []error
	for _, r := range w.runners {
		if err := r.ShutdownWithContext(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	for _, cleanup := range w.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.WithStack(errors.Join(errList...))
}
