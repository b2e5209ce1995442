package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/static-server/internal/banner"
	"github.com/zestagio/static-server/internal/buildinfo"
	"github.com/zestagio/static-server/internal/config"
	"github.com/zestagio/static-server/internal/devserver"
	"github.com/zestagio/static-server/internal/launcher"
	"github.com/zestagio/static-server/internal/logger"
	serverdebug "github.com/zestagio/static-server/internal/server-debug"
	"github.com/zestagio/static-server/internal/staticfs"
)

var configPath = flag.String("config", "", "Path to an optional TOML config file")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() (errReturned error) {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer multierr.AppendInvoke(&errReturned, multierr.Invoke(logger.Sync))

	lg := zap.L().Named("main")

	staticCfg := cfg.Servers.Static

	fsys, err := staticfs.New(staticCfg.Root)
	if err != nil {
		return fmt.Errorf("open root: %v", err)
	}
	if err := os.Chdir(fsys.Root()); err != nil {
		return fmt.Errorf("change working directory: %v", err)
	}

	lg.Info("starting",
		zap.String("version", buildinfo.Version()),
		zap.String("root", fsys.Root()),
		zap.String("addr", staticCfg.Addr),
	)

	// Servers.
	srvStatic, err := initServerStatic(
		cfg.Global.IsProduction(),
		staticCfg.Addr,
		fsys,
		staticCfg.DirectoryListing,
	)
	if err != nil {
		return fmt.Errorf("init static server: %v", err)
	}

	runner, err := devserver.New(devserver.NewOptions(
		zap.L().Named("devserver"),
		srvStatic,
		launcher.NewBrowser(),
		banner.New(os.Stdout),
		fsys.Root(),
		devserver.WithOpenBrowser(staticCfg.OpenBrowser),
	))
	if err != nil {
		return fmt.Errorf("init dev server: %v", err)
	}

	var srvDebug *serverdebug.Server
	if cfg.Servers.Debug.Enabled() {
		srvDebug, err = serverdebug.New(serverdebug.NewOptions(cfg.Servers.Debug.Addr, fsys.Root()))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)

	// Run servers.
	eg.Go(func() error { return runner.Run(ctx) })
	if srvDebug != nil {
		eg.Go(func() error { return srvDebug.Run(ctx) })
	}

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
