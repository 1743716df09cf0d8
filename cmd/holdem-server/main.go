package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/cardroom/holdem/internal/game"
	"github.com/cardroom/holdem/internal/randutil"
	"github.com/cardroom/holdem/internal/server"
)

var CLI struct {
	Config   string `short:"c" default:"holdem.hcl" help:"Path to HCL configuration file"`
	Addr     string `short:"a" help:"Listen address (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	Seed     int64  `hidden:"" help:"Fixed deck seed for reproducing hands"`
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := server.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		kctx.Exit(1)
	}
	if CLI.LogLevel != "" {
		cfg.Server.LogLevel = CLI.LogLevel
	}

	logger := log.New(os.Stderr)
	switch cfg.Server.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	addr := cfg.ListenAddr()
	if CLI.Addr != "" {
		addr = CLI.Addr
	}

	rng := randutil.NewUnpredictable()
	if CLI.Seed != 0 {
		logger.Warn("using fixed deck seed, hands are predictable", "seed", CLI.Seed)
		rng = randutil.New(CLI.Seed)
	}

	table := game.NewTable(cfg.TableConfig(), rng, quartz.NewReal(), logger)
	srv := server.New(addr, table, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting holdem server",
		"addr", addr,
		"bigBlind", cfg.Table.BigBlind,
		"startingChips", cfg.Table.StartingChips)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", "error", err)
		kctx.Exit(1)
	}
}
