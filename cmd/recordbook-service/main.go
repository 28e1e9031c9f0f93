// Copyright 2026 The Recordbook Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/recordbook/recordbook/lib/clock"
	"github.com/recordbook/recordbook/lib/config"
	"github.com/recordbook/recordbook/lib/process"
	"github.com/recordbook/recordbook/lib/recordstore"
	"github.com/recordbook/recordbook/lib/service"
	"github.com/recordbook/recordbook/lib/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		process.Fatal(err)
	}
}

type serviceFlags struct {
	configPath   string
	socketPath   string
	databasePath string
	seedFile     string
	watchSeed    bool
	showVersion  bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var flags serviceFlags
	flagSet := pflag.NewFlagSet("recordbook-service", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&flags.configPath, "config", "c", "", "path to recordbook.yaml (default: $RECORDBOOK_CONFIG, then built-in defaults)")
	flagSet.StringVar(&flags.socketPath, "socket", "", "Unix socket to listen on (overrides service.socket_path)")
	flagSet.StringVar(&flags.databasePath, "database", "", "SQLite database file (overrides service.database_path)")
	flagSet.StringVar(&flags.seedFile, "seed", "", "JSONC file of records to upsert at startup (overrides service.seed_file)")
	flagSet.BoolVar(&flags.watchSeed, "watch-seed", false, "re-apply the seed file whenever it changes (overrides service.watch_seed)")
	flagSet.BoolVar(&flags.showVersion, "version", false, "print version information and exit")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}
	if flags.showVersion {
		version.Print(stdout, "recordbook-service")
		return nil
	}

	cfg, err := config.Resolve(flags.configPath)
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsureServiceDirectories(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return serve(ctx, cfg, clock.Real(), logger)
}

func (flags *serviceFlags) apply(cfg *config.Config) {
	if flags.socketPath != "" {
		cfg.Service.SocketPath = flags.socketPath
	}
	if flags.databasePath != "" {
		cfg.Service.DatabasePath = flags.databasePath
	}
	if flags.seedFile != "" {
		cfg.Service.SeedFile = flags.seedFile
	}
	if flags.watchSeed {
		cfg.Service.WatchSeed = true
	}
}

// serve opens the store, applies the seed file, and serves the socket
// until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, clk clock.Clock, logger *slog.Logger) error {
	store, err := recordstore.Open(recordstore.Config{
		Path:     cfg.Service.DatabasePath,
		PoolSize: cfg.Service.PoolSize,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Service.SeedFile != "" {
		seeded, err := seedStore(ctx, store, cfg.Service.SeedFile)
		if err != nil {
			return err
		}
		logger.Info("seed file applied", "path", cfg.Service.SeedFile, "records", len(seeded))

		if cfg.Service.WatchSeed {
			watchContext, stopWatch := context.WithCancel(ctx)
			watchDone, err := startSeedWatch(watchContext, &seedWatcher{
				store:  store,
				path:   cfg.Service.SeedFile,
				logger: logger,
			}, seeded)
			if err != nil {
				stopWatch()
				return err
			}
			// The store must outlive the watcher's last write.
			defer func() {
				stopWatch()
				<-watchDone
			}()
		}
	}

	recordService := newRecordService(store, clk, logger)
	socketServer := service.NewSocketServer(cfg.Service.SocketPath, logger)
	recordService.registerActions(socketServer)

	socketDone := make(chan error, 1)
	go func() {
		socketDone <- socketServer.Serve(ctx)
	}()

	logger.Info("record service running",
		"socket", cfg.Service.SocketPath,
		"database", cfg.Service.DatabasePath,
	)

	select {
	case err := <-socketDone:
		// Serve only returns early when the listener could not start.
		if err != nil {
			return fmt.Errorf("socket server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	if err := <-socketDone; err != nil {
		logger.Error("socket server error", "error", err)
		return err
	}
	return nil
}
