//go:build ebiten

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	"infoca/internal/app"
	"infoca/internal/core"
	"infoca/internal/logging"
	_ "infoca/internal/sims/elementary"
)

func main() {
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Service: "ca"})
	slog.SetDefault(logger)

	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error("unknown sim", "sim", cfg.Sim, "available", core.Names())
		os.Exit(2)
	}

	sim, err := factory(cfg.SimConfig())
	if err != nil {
		logger.Error("create sim", "sim", cfg.Sim, "error", err)
		os.Exit(2)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("infoca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "error", err)
		os.Exit(1)
	}
}
