package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/musclebrain/internal/config"
	"github.com/vovakirdan/musclebrain/internal/core"
	"github.com/vovakirdan/musclebrain/internal/games"
	"github.com/vovakirdan/musclebrain/internal/leaderboard"
	"github.com/vovakirdan/musclebrain/internal/platform/tui"
	"github.com/vovakirdan/musclebrain/internal/scores"
	"github.com/vovakirdan/musclebrain/internal/storage"
)

// app carries what every command needs once flags and config are merged.
type app struct {
	cfg     config.Config
	preset  config.DifficultyPreset
	logger  *log.Logger
	logFile *os.File

	store    *storage.Store
	board    *leaderboard.Board
	recorder *scores.Recorder
}

// logTarget says where logs go. Interactive commands must not write to the
// terminal they draw on.
type logTarget int

const (
	logToStderr logTarget = iota
	logToFile
)

// setup loads config, applies flags and the difficulty preset, tunes the
// games and builds the logger.
func setup(target logTarget) *app {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyPreset(&cfg, preset)
	games.Configure(cfg)

	if flagFPS > 0 {
		cfg.App.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.App.DBPath = flagDBPath
	}
	if flagRedisURL != "" {
		cfg.App.RedisURL = flagRedisURL
	}
	if flagLogLevel != "" {
		cfg.App.LogLevel = flagLogLevel
	}

	a := &app{cfg: cfg, preset: preset}
	a.logger = a.newLogger(target)
	return a
}

func (a *app) newLogger(target logTarget) *log.Logger {
	var w io.Writer = os.Stderr
	if target == logToFile {
		w = io.Discard
		if dir, err := config.DataDir(); err == nil {
			f, err := os.OpenFile(filepath.Join(dir, "musclebrain.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				a.logFile = f
				w = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "musclebrain",
	})
	level, err := log.ParseLevel(a.cfg.App.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the database. A failure is logged and play continues
// without saving.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.App.DBPath)
	if err != nil {
		a.logger.Warn("could not open scores database, scores will not be saved", "path", a.cfg.App.DBPath, "error", err)
		return nil
	}
	a.store = store
	return store
}

// openBoard connects to Redis when configured.
func (a *app) openBoard(ctx context.Context) *leaderboard.Board {
	if a.cfg.App.RedisURL == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	board, err := leaderboard.Connect(ctx, a.cfg.App.RedisURL)
	if err != nil {
		a.logger.Warn("leaderboard cache unavailable", "error", err)
		return nil
	}
	a.board = board
	return board
}

// services wires persistence for the TUI.
func (a *app) services(ctx context.Context) *tui.Services {
	tutorials, err := config.LoadTutorials()
	if err != nil {
		a.logger.Warn("could not load tutorials", "error", err)
	}

	svc := &tui.Services{Tutorials: tutorials, Logger: a.logger, Practice: !a.preset.Ranked()}
	if svc.Practice {
		a.logger.Info("practice mode, scores stay off the leaderboards", "difficulty", a.preset)
	}
	if store := a.openStore(); store != nil {
		var ranker scores.Ranker
		if board := a.openBoard(ctx); board != nil {
			ranker = board
		}
		a.recorder = scores.NewRecorder(store, ranker, a.logger, 64)
		svc.Store = store
		svc.Recorder = a.recorder
	}
	return svc
}

// runtimeConfig sizes the game to the local terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = a.cfg.App.TickRate
	cfg.Seed = flagSeed
	return cfg
}

// close flushes pending scores and releases everything, in that order.
func (a *app) close() {
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.board != nil {
		a.board.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
