package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/serpent/audio"
	"github.com/lixenwraith/serpent/config"
	"github.com/lixenwraith/serpent/engine"
	"github.com/lixenwraith/serpent/input"
	"github.com/lixenwraith/serpent/parameter"
	"github.com/lixenwraith/serpent/render"
	"github.com/lixenwraith/serpent/session"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "serpent: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger constructs the zap logger from config. Logs go to a file
// because tcell owns the terminal.
func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}
	return zapCfg.Build()
}

// game bundles the per-run state that a restart recreates
type game struct {
	loop  *engine.Loop
	snake *engine.Snake
}

func newGame(rng *rand.Rand, clock engine.TimeProvider, logger *zap.Logger) *game {
	world := engine.NewWorld(rng, logger)
	snake := engine.NewSnake(rng)
	world.AddEntity(snake)
	return &game{
		loop:  engine.NewLoop(world, clock),
		snake: snake,
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	player, err := audio.NewPlayer(cfg.Audio.Enabled)
	if err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio unavailable", zap.Error(err))
	}
	defer player.Close()

	sess := session.New(cfg.Session.DataDir)
	defer func() {
		if err := sess.Save(); err != nil {
			logger.Warn("session save failed", zap.Error(err))
		}
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	clock := engine.NewMonotonicTimeProvider()
	g := newGame(rng, clock, logger)
	renderer := render.New(screen)

	logger.Info("session started",
		zap.Int("high_score", sess.HighScore()))

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	lastScore := 0
	wasDead := false
	renderer.Draw(g.loop, player.Muted())

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				renderer.HandleResize()
				renderer.Draw(g.loop, player.Muted())
				continue
			}

			switch cmd := input.Translate(ev); cmd.Action {
			case input.ActionQuit:
				return nil
			case input.ActionTurn:
				g.snake.QueueDirectionChange(cmd.Direction)
			case input.ActionTogglePause:
				g.loop.TogglePause()
				renderer.Draw(g.loop, player.Muted())
			case input.ActionToggleMute:
				player.ToggleMute()
				renderer.Draw(g.loop, player.Muted())
			case input.ActionRestart:
				if g.snake.IsDead() {
					g = newGame(rng, clock, logger)
					lastScore = 0
					wasDead = false
					renderer.Draw(g.loop, player.Muted())
				}
			}

		case <-ticker.C:
			changed := g.loop.Tick()

			if score := g.snake.Score(); score > lastScore {
				lastScore = score
				player.Eat()
			}
			if g.snake.IsDead() && !wasDead {
				wasDead = true
				player.Death()
				sess.RecordGame(g.snake.Score())
				logger.Info("game over",
					zap.Int("score", g.snake.Score()),
					zap.Int("games_played", sess.GamesPlayed()))
			}

			if changed {
				renderer.Draw(g.loop, player.Muted())
			}
		}
	}
}
