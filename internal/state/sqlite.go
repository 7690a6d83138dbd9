package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"

	"dyele/internal/game"
)

// SQLiteStore keeps per-day game states, the history ledger and app settings
// in one local database file. It is the only durable storage the game has.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_states (
			day_key TEXT PRIMARY KEY,
			state_json TEXT NOT NULL,
			updated_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			day_key TEXT PRIMARY KEY,
			status TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			share_grid TEXT NOT NULL,
			practice INTEGER NOT NULL DEFAULT 0,
			created_ts TEXT NOT NULL DEFAULT (datetime('now'))
		);`,
		`CREATE TABLE IF NOT EXISTS app_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// LoadState returns the saved state for dayKey, or nil when absent. A stored
// record that no longer parses is treated as absent rather than fatal.
func (s *SQLiteStore) LoadState(ctx context.Context, dayKey string) (*game.GameState, error) {
	row := s.db.QueryRowContext(ctx, `SELECT state_json FROM daily_states WHERE day_key = ?`, dayKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	var state game.GameState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

func (s *SQLiteStore) SaveState(ctx context.Context, state game.GameState) error {
	dayKey := strings.TrimSpace(state.DayKey)
	if dayKey == "" {
		return fmt.Errorf("save state: empty day key")
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state %s: %w", dayKey, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO daily_states(day_key, state_json, updated_ts) VALUES(?, ?, datetime('now'))
		ON CONFLICT(day_key) DO UPDATE SET
			state_json = excluded.state_json,
			updated_ts = excluded.updated_ts
	`, dayKey, string(raw))
	return err
}

func (s *SQLiteStore) ClearState(ctx context.Context, dayKey string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM daily_states WHERE day_key = ?`, dayKey)
	return err
}

// LoadAllStates enumerates every persisted per-day state, skipping rows that
// no longer parse. Used by the legacy history migration.
func (s *SQLiteStore) LoadAllStates(ctx context.Context) ([]game.GameState, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state_json FROM daily_states ORDER BY day_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []game.GameState
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var state game.GameState
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			continue
		}
		out = append(out, state)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadHistory returns the ledger, newest day key first.
func (s *SQLiteStore) LoadHistory(ctx context.Context) ([]game.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day_key, status, attempts, share_grid, practice
		FROM history
		ORDER BY day_key DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []game.HistoryEntry
	for rows.Next() {
		var (
			entry    game.HistoryEntry
			practice int
		)
		if err := rows.Scan(&entry.DayKey, &entry.Status, &entry.Attempts, &entry.ShareGrid, &practice); err != nil {
			return nil, err
		}
		entry.Practice = practice == 1
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveHistory replaces the whole ledger.
func (s *SQLiteStore) SaveHistory(ctx context.Context, entries []game.HistoryEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if _, err = tx.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return err
	}
	for _, entry := range entries {
		if err = upsertHistoryTx(ctx, tx, entry); err != nil {
			return err
		}
	}
	err = tx.Commit()
	return err
}

// UpsertHistoryEntry replaces any ledger row with the same day key and
// returns the new full ledger.
func (s *SQLiteStore) UpsertHistoryEntry(ctx context.Context, entry game.HistoryEntry) ([]game.HistoryEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := upsertHistoryTx(ctx, tx, entry); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return s.LoadHistory(ctx)
}

func upsertHistoryTx(ctx context.Context, tx *sql.Tx, entry game.HistoryEntry) error {
	dayKey := strings.TrimSpace(entry.DayKey)
	if dayKey == "" {
		return fmt.Errorf("history entry: empty day key")
	}
	practice := 0
	if entry.Practice {
		practice = 1
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO history(day_key, status, attempts, share_grid, practice) VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(day_key) DO UPDATE SET
			status = excluded.status,
			attempts = excluded.attempts,
			share_grid = excluded.share_grid,
			practice = excluded.practice
	`, dayKey, string(entry.Status), entry.Attempts, entry.ShareGrid, practice)
	return err
}

// MigrateLegacyHistory builds the initial ledger from per-day states saved
// before the ledger existed: every terminal state with at least one guess
// becomes an entry with a recomputed share grid, newest first. A non-empty
// ledger makes this a no-op, so repeat runs never duplicate entries. Returns
// the number of migrated entries.
func (s *SQLiteStore) MigrateLegacyHistory(ctx context.Context) (int, error) {
	var existing int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}
	states, err := s.LoadAllStates(ctx)
	if err != nil {
		return 0, err
	}
	var entries []game.HistoryEntry
	for _, st := range states {
		if !st.Status.Terminal() || len(st.Guesses) == 0 {
			continue
		}
		entries = append(entries, game.HistoryEntry{
			DayKey:    st.DayKey,
			Status:    st.Status,
			Attempts:  len(st.Guesses),
			ShareGrid: game.ShareGrid(st.Guesses),
		})
	}
	if len(entries) == 0 {
		return 0, nil
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].DayKey > entries[j].DayKey })
	if err := s.SaveHistory(ctx, entries); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *SQLiteStore) GetSetting(ctx context.Context, key string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_settings WHERE key = ?`, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) SetSetting(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_settings(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
