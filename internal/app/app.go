// Package app wires the catalog, clock, store and session together and
// exposes them to the view as a ui.Controller.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dyele/internal/catalog"
	"dyele/internal/daily"
	"dyele/internal/game"
	"dyele/internal/state"
	"dyele/internal/telemetry"
	"dyele/internal/ui"
)

const opTimeout = 5 * time.Second

type App struct {
	cfg Config

	logger    *log.Logger
	logCloser io.Closer
	store     state.Store
	cat       *catalog.Catalog
	clock     *daily.Clock
	session   *game.Session

	sessionID string
}

func New(cfg Config) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	logger, closer, err := telemetry.NewLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	store, err := state.NewSQLite(filepath.Join(cfg.DataDir, "dyele.db"))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		_ = closer.Close()
		return nil, err
	}
	if migrated, err := store.MigrateLegacyHistory(ctx); err != nil {
		logger.Error("history.migrate_failed", "error", err)
	} else if migrated > 0 {
		logger.Info("history.migrated", "entries", migrated)
	}

	cat, err := catalog.Load()
	if err != nil {
		_ = store.Close()
		_ = closer.Close()
		return nil, err
	}

	clock, err := daily.NewClock()
	if err != nil {
		_ = store.Close()
		_ = closer.Close()
		return nil, err
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		logCloser: closer,
		store:     store,
		cat:       cat,
		clock:     clock,
		sessionID: uuid.NewString(),
	}
	a.session = game.NewSession(game.SessionOptions{
		Catalog: cat,
		Store:   store,
		OnWin: func() {
			logger.Info("game.won", "session", a.sessionID, "day", a.session.DayKey())
		},
	})
	return a, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info("app.start", "session", a.sessionID, "mode", a.cfg.Mode, "dyes", a.cat.Len())

	if a.cfg.Mode == "practice" {
		a.session.StartPractice()
	} else if err := a.session.StartDaily(ctx, a.clock.DayKey()); err != nil {
		return err
	}

	model := ui.New(a, a.cat.Names())
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

func (a *App) Close() {
	_ = a.store.Close()
	_ = a.logCloser.Close()
}

// Store exposes the underlying store for maintenance subcommands.
func (a *App) Store() state.Store { return a.store }

// Clock exposes the puzzle clock for maintenance subcommands.
func (a *App) Clock() *daily.Clock { return a.clock }

// Logger exposes the process logger for maintenance subcommands.
func (a *App) Logger() *log.Logger { return a.logger }
