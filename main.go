package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"wheel-picker/config"
	"wheel-picker/game"
	"wheel-picker/game/confetti"
	"wheel-picker/game/types"
	"wheel-picker/game/wheel"
	"wheel-picker/ui"

	logger "wheel-picker/pkg/zap"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config (defaults to $PICKER_CONFIG, then built-in)")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log := logger.NewZapLogger(&logger.Config{Level: "info", App: "picker"})
		log.Error("load config", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log := logger.NewZapLogger(&logger.Config{
		Level: cfg.Log.Level,
		App:   "picker",
		Dir:   cfg.Log.Dir,
		File:  cfg.Log.File,
	})
	defer log.Sync()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.FPS))

	renderer := ui.NewRenderer()

	picker, err := game.NewPicker(game.Options{
		Items: cfg.Restaurants,
		Wheel: wheel.Config{
			Spins:    cfg.Wheel.Spins,
			Duration: cfg.Wheel.Duration,
		},
		Grid: types.Grid{Width: cfg.Snake.Grid, Height: cfg.Snake.Grid},
		Tick: cfg.Snake.Tick,
		Confetti: confetti.Config{
			Count:     cfg.Confetti.Count,
			Duration:  cfg.Confetti.Duration,
			Gravity:   cfg.Confetti.Gravity,
			TimeScale: cfg.Confetti.TimeScale,
			MinSpeed:  cfg.Confetti.MinSpeed,
			MaxSpeed:  cfg.Confetti.MaxSpeed,
		},
		Screen: renderer.Screen(),
		Seed:   *seed,
	}, log)
	if err != nil {
		log.Error("create picker", zap.Error(err))
		_ = log.Sync()
		rl.CloseWindow()
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
			picker.SetScreen(renderer.Screen())
		}

		now := time.Now()
		renderer.HandleInput(picker, now)
		picker.Update(now)
		renderer.Draw(picker, now)
	}

	log.Info("bye",
		zap.Int("spins", picker.Stats.SpinCount()),
		zap.Int("snake_best", picker.Stats.GetMaxScore()))
}
