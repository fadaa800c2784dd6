package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/core"
	"github.com/gaze-network/nft-snap/internal/config"
	"github.com/gaze-network/nft-snap/modules/snap"
	"github.com/gaze-network/nft-snap/pkg/automaxprocs"
	"github.com/gaze-network/nft-snap/pkg/errorhandler"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/gaze-network/nft-snap/pkg/middleware/requestcontext"
	"github.com/gaze-network/nft-snap/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// Modules maps each name accepted by --modules to its constructor.
var Modules = do.Package(
	do.LazyNamed("snap", snap.New),
)

const shutdownTimeout = 60 * time.Second

func NewRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start nftsnap service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return run(cmd.Context(), config.Load())
		},
	}

	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Serve the API without starting module workers")
	flags.String("modules", "", "Enable specific modules to run. E.g. `snap`")

	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("enable_modules", flags.Lookup("modules"))

	return runCmd
}

func run(parent context.Context, conf config.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	injector := do.New(Modules)
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.ProvideValue[prometheus.Registerer](injector, promRegistry)
	do.Provide(injector, func(do.Injector) (*fiber.App, error) {
		return newHTTPServer(conf.HTTPServer, promRegistry), nil
	})

	// workers outlive the signal context so they can drain during shutdown
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	workers, err := initModules(injector, conf.EnableModules)
	if err != nil {
		return errors.WithStack(err)
	}
	if !conf.APIOnly {
		for name, worker := range workers {
			go runWorker(logger.WithContext(ctxWorker, slogx.String("module", name)), worker, stop)
		}
	}

	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "NFT Snap started", slog.Any("modules", lo.Keys(workers)), slog.Bool("apiOnly", conf.APIOnly))
	<-ctx.Done()

	go forceExitAfter(shutdownTimeout + 15*time.Second)

	if err := httpServer.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.ErrorContext(ctx, "Error during shutdown HTTP server", err)
	}
	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}
	return nil
}

// initModules resolves every enabled module, which also mounts its HTTP routes.
func initModules(injector do.Injector, enabled []string) (map[string]core.Worker, error) {
	names := lo.Map(enabled, func(item string, _ int) string { return strings.TrimSpace(item) })
	names = lo.Uniq(lo.Filter(names, func(item string, _ int) bool { return item != "" }))

	workers := make(map[string]core.Worker, len(names))
	for _, name := range names {
		worker, err := do.InvokeNamed[core.Worker](injector, name)
		if err != nil {
			if errors.Is(err, do.ErrServiceNotFound) {
				return nil, errors.Errorf("Module %q is not supported", name)
			}
			return nil, errors.Wrapf(err, "can't init module %q", name)
		}
		workers[name] = worker
	}
	return workers, nil
}

// runWorker stops the process once the worker returns.
func runWorker(ctx context.Context, worker core.Worker, stop context.CancelFunc) {
	defer stop()

	logger.InfoContext(ctx, "Starting worker")
	if err := worker.Run(ctx); err != nil {
		logger.PanicContext(ctx, "Something went wrong, error during running worker", slogx.Error(err))
	}
	logger.InfoContext(ctx, "Worker stopped. Stopping application...")
}

// forceExitAfter exits on a second signal or when graceful shutdown takes longer than timeout.
func forceExitAfter(timeout time.Duration) {
	defer os.Exit(1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
	case <-time.After(timeout):
		logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
	}
}

func newHTTPServer(conf config.HTTPServerConfig, gatherer prometheus.Gatherer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "NFT Snap",
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithClientIP(conf.RequestIP),
		)).
		Use(requestlogger.New(conf.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 4096)
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", errors.Newf("panic: %v", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return app
}
