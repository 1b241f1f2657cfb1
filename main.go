package main

import (
	"errors"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rocket-mass-visualization/internal/config"
	"github.com/iburimskiy/rocket-mass-visualization/internal/game"
	"github.com/iburimskiy/rocket-mass-visualization/internal/logging"
	"github.com/iburimskiy/rocket-mass-visualization/internal/sound"
)

func main() {
	logger, _ := logging.New(os.Stderr, "info")

	cfg, err := config.Load("")
	if err != nil {
		fatal(logger, nil, err)
	}
	l, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		fatal(logger, nil, err)
	}
	logger = l
	level.Info(logger).Log("msg", "starting",
		"exhaust_velocity", cfg.Physics.ExhaustVelocity,
		"dry_mass", cfg.Physics.DryMass,
		"delta_v", cfg.Physics.DeltaV,
		"easing", cfg.Animation.Easing,
		"audio", cfg.Audio.Enabled)

	// No audio device is not fatal; the sliders just stay silent.
	player, err := sound.NewPlayer(cfg.Audio, kitlog.With(logger, "component", "sound"))
	if err != nil {
		level.Warn(logger).Log("msg", "audio disabled", "err", err)
		player = nil
	}
	defer player.Close()

	g, err := game.New(cfg, logger, game.WithPlayer(player))
	if err != nil {
		fatal(logger, player, err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Animation.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(logger, player, err)
	}
	level.Info(logger).Log("msg", "bye")
}

// fatal exits non-zero. os.Exit skips deferred calls, so the player is
// closed here.
func fatal(logger kitlog.Logger, player *sound.Player, err error) {
	player.Close()
	level.Error(logger).Log("msg", "fatal", "err", err)
	_ = zenity.Error(err.Error(), zenity.Title("Rocket Equation"), zenity.ErrorIcon)
	os.Exit(1)
}
