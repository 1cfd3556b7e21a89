package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rovshanmuradov/tokenboard/internal/config"
	"github.com/rovshanmuradov/tokenboard/internal/feed"
	"github.com/rovshanmuradov/tokenboard/internal/logger"
	"github.com/rovshanmuradov/tokenboard/internal/ui"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const busSize = 64

func main() {
	configPath := flag.String("config", "", "Path to config file (JSON or YAML)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	console, err := logger.CreatePrettyLogger(cfg.DebugLogging)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = console.Sync()
	}()

	console.Info("Starting tokenboard")
	console.Info("Config loaded", zap.String("path", *configPath))

	if err := run(cfg, console); err != nil {
		console.Error("TUI application failed", zap.Error(err))
		log.Fatal(err)
	}
	console.Info("Shutting down")
}

func run(cfg *config.Config, console *zap.Logger) error {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink, err := logger.NewSafeFileWriter(cfg.LogPath, time.Second, console)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer sink.Close()
	console.Info("Logging to file", zap.String("path", cfg.LogPath))

	appLogger, err := logger.CreateTUILogger(cfg.DebugLogging, sink)
	if err != nil {
		return fmt.Errorf("create TUI logger: %w", err)
	}
	appLogger = appLogger.With(zap.String("session_id", uuid.NewString()))
	defer func() {
		_ = appLogger.Sync()
	}()

	bus := make(chan tea.Msg, busSize)
	sender := ui.NewUpdateSender(bus, appLogger)
	defer sender.Close()

	source := feed.NewFileSource(cfg.SnapshotPath)
	poller := feed.NewPoller(source, sender, feed.PollerConfig{
		Interval: cfg.Feed.Interval(),
		MaxRetry: cfg.Feed.MaxRetry(),
	}, appLogger)
	// Without a watcher the poller still picks up changes on its interval.
	watcher, err := feed.NewWatcher(source.Path(), appLogger)
	if err != nil {
		appLogger.Warn("Snapshot watcher unavailable", zap.Error(err))
	} else {
		poller.WakeOn(watcher.Changes())
	}
	console.Info("Snapshot feed started",
		zap.String("path", source.Path()),
		zap.Duration("interval", cfg.Feed.Interval()))

	g, ctx := errgroup.WithContext(rootCtx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		ui.NewSafeModel(NewAppModel(cfg, bus, appLogger), appLogger),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	g.Go(func() error {
		// Quitting the TUI stops the feed.
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run TUI: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return poller.Run(ctx)
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}

	return g.Wait()
}
