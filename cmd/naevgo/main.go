package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/stardrifter/naevgo/internal/claim"
	"github.com/stardrifter/naevgo/internal/clock"
	"github.com/stardrifter/naevgo/internal/config"
	"github.com/stardrifter/naevgo/internal/console"
	"github.com/stardrifter/naevgo/internal/content"
	"github.com/stardrifter/naevgo/internal/game"
	"github.com/stardrifter/naevgo/internal/gfx"
	"github.com/stardrifter/naevgo/internal/hook"
	"github.com/stardrifter/naevgo/internal/input"
	"github.com/stardrifter/naevgo/internal/outfit"
	"github.com/stardrifter/naevgo/internal/player"
	"github.com/stardrifter/naevgo/internal/plugin"
	"github.com/stardrifter/naevgo/internal/script"
	"github.com/stardrifter/naevgo/internal/sfx"
	"github.com/stardrifter/naevgo/internal/version"
)

const ConfigPath = "config/naevgo.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Optional .env for local development overrides.
	_ = godotenv.Load()

	cfgPath := ConfigPath
	if p := os.Getenv("NAEVGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("naevgo starting", "version", version.Version, "log_level", cfg.LogLevel, "data", cfg.Data)

	gm := gfx.NewManager()
	sr := sfx.Defaults()

	// Load the static game data in parallel.
	var (
		catalog  *outfit.Catalog
		missions *content.Registry
		events   *content.Registry
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		catalog, err = outfit.Load(filepath.Join(cfg.Data, "outfit.xml"), gm, sr)
		return err
	})
	g.Go(func() error {
		var err error
		missions, err = content.LoadDir("mission", filepath.Join(cfg.Data, "missions"))
		return err
	})
	g.Go(func() error {
		var err error
		events, err = content.LoadDir("event", filepath.Join(cfg.Data, "events"))
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("loading game data: %w", err)
	}
	defer catalog.Close()
	defer gm.Close()

	plugins := plugin.NewRegistry()
	for _, p := range cfg.Plugins {
		plugins.Register(plugin.Plugin{
			Name:            p.Name,
			Author:          p.Author,
			Version:         p.Version,
			Description:     p.Description,
			Compatibility:   p.Compatibility,
			Mountpoint:      p.Mountpoint,
			Priority:        p.Priority,
			Compatible:      p.Compatible,
			TotalConversion: p.TotalConversion,
		})
	}

	clk := clock.New()
	hooks := hook.NewManager()
	claims := claim.NewRegistry(cfg.Universe.Systems)
	bindings := input.Defaults()
	rec := player.NewRecord(time.Now())

	rt := script.New(script.Deps{
		Version:  version.Version,
		Config:   &cfg,
		Clock:    clk,
		Input:    bindings,
		Hooks:    hooks,
		Claims:   claims,
		Plugins:  plugins,
		Missions: missions,
		Events:   events,
		Player:   rec,
		Gfx:      gm,
	})
	defer rt.Close()

	loop := game.NewLoop(clk, hooks, 100*time.Millisecond, 5*time.Second)

	runGroup, runCtx := errgroup.WithContext(ctx)
	runGroup.Go(func() error { return loop.Run(runCtx) })
	if cfg.Console.Enabled {
		cons := console.NewServer(cfg.Console.Addr, rt)
		runGroup.Go(func() error { return cons.Run(runCtx) })
	}

	slog.Info("engine running",
		"outfits", catalog.Len(),
		"missions", missions.Len(),
		"events", events.Len(),
		"plugins", len(plugins.List()))

	return runGroup.Wait()
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
