package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/pong/internal/config"
	"github.com/l1jgo/pong/internal/data"
	"github.com/l1jgo/pong/internal/input"
	"github.com/l1jgo/pong/internal/render"
	"github.com/l1jgo/pong/internal/system"
	"github.com/l1jgo/pong/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/pong.toml"
	if p := os.Getenv("PONG_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	keys, err := cfg.Controls.Bindings()
	if err != nil {
		return fmt.Errorf("controls: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("match", uuid.NewString()))

	// 3. Load court and build the world
	court, err := data.LoadCourt(cfg.Game.Court)
	if err != nil {
		return fmt.Errorf("load court: %w", err)
	}
	ws, err := world.Build(court, cfg)
	if err != nil {
		return err
	}
	log.Info("world built",
		zap.Int("entities", ws.ECS.EntityCount()),
		zap.Float64("width", court.Width),
		zap.Float64("height", court.Height))

	// 4. Input device and stage pipeline
	kbd := input.NewTerminal(cfg.Input.HoldWindow, cfg.Input.RepeatGrace)
	runner, err := system.NewPipeline(ws, cfg, kbd, log)
	if err != nil {
		return err
	}

	// 5. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	renderer := render.NewTerminal(screen, court.Colors)
	ws.Score.Watch(renderer.ScoreChanged)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	// 6. Frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.FrameRate)
	defer ticker.Stop()
	log.Info("frame loop started", zap.Duration("frame_rate", cfg.Game.FrameRate))

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || kbd.HandleEvent(ev) == keys.Quit {
					log.Info("quit", zap.Ints("score", scoreInts(ws)))
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			kbd.Expire(now)
			runner.Tick(now.Sub(last))
			last = now
			renderer.Draw(ws.Snapshot())
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()), zap.Ints("score", scoreInts(ws)))
			return nil
		}
	}
}

func scoreInts(ws *world.State) []int {
	s := ws.Score.Snapshot()
	return s[:]
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// Keep log output off the game screen.
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
