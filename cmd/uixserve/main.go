// cmd/uixserve runs the layout preview server.
//
// It generates layouts once at startup, serves them as JSON under /v1, and
// watches the resource and layout source directories so edits regenerate the
// trees and push a reload event to /live WebSocket subscribers.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/wadvanced/aurora-uix/internal/config"
	"github.com/wadvanced/aurora-uix/internal/gen"
	"github.com/wadvanced/aurora-uix/internal/server"
)

func main() {
	configPath := flag.String("config", "uix.toml", "project configuration file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
		Prefix:          "uixserve",
	})

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	result, err := gen.Run(cfg)
	if err != nil {
		logger.Fatal("initial generation failed", "err", err)
	}
	logger.Info("layouts generated", "resources", len(result.Trees))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, logger, result).Run(ctx); err != nil {
		logger.Fatal("server failed", "err", err)
	}
}
