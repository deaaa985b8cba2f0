// Command lobsterd serves creature renders over HTTP.
//
// Configuration comes from the YAML file given by -config, overridden by
// LOBSTER_ADDR, LOBSTER_DB and LOBSTER_LOG_LEVEL.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/internal/config"
	"github.com/gogpu/lobster/internal/seedstore"
	"github.com/gogpu/lobster/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		noStore    = flag.Bool("no-store", false, "run without the token seed cache")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	lobster.SetLogger(logger)
	logger.Info("config loaded",
		"addr", cfg.Server.Addr,
		"store", cfg.Store.Path,
		"svg_scale", cfg.Render.SVGScale,
		"png_scale", cfg.Render.PNGScale,
		"workers", cfg.Render.Workers,
		"total_ttl", cfg.Store.TotalTTL,
	)

	var store *seedstore.Store
	if !*noStore {
		store, err = seedstore.Open(cfg.Store.Path, seedstore.WithTotalTTL(cfg.Store.TotalTTL))
		if err != nil {
			logger.Error("open seed store", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, store).ListenAndServe(ctx); err != nil {
		logger.Error("server", "error", err)
		stop()
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
