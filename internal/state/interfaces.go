package state

import (
	"context"

	"dyele/internal/game"
)

// Store is the durable per-day state and history ledger, keyed by day key.
type Store interface {
	EnsureSchema(ctx context.Context) error
	LoadState(ctx context.Context, dayKey string) (*game.GameState, error)
	SaveState(ctx context.Context, state game.GameState) error
	ClearState(ctx context.Context, dayKey string) error
	LoadAllStates(ctx context.Context) ([]game.GameState, error)
	LoadHistory(ctx context.Context) ([]game.HistoryEntry, error)
	SaveHistory(ctx context.Context, entries []game.HistoryEntry) error
	UpsertHistoryEntry(ctx context.Context, entry game.HistoryEntry) ([]game.HistoryEntry, error)
	MigrateLegacyHistory(ctx context.Context) (int, error)
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	Close() error
}

// Settings keys.
const (
	SettingIntroDismissed = "intro_dismissed"
)
