package devtools

import (
	"context"
	"fmt"
	mathrand "math/rand/v2"
	"strings"

	"dyele/internal/daily"
	"dyele/internal/game"
	"dyele/internal/state"
)

// Manager implements Admin against the persistence store directly, for use
// from the debug CLI while no session is running.
type Manager struct {
	store state.Store
	clock *daily.Clock
}

func NewManager(store state.Store, clock *daily.Clock) *Manager {
	return &Manager{store: store, clock: clock}
}

// ResetDaily discards today's saved state. History is untouched.
func (m *Manager) ResetDaily(ctx context.Context) error {
	return m.store.ClearState(ctx, m.clock.DayKey())
}

// SeedHistory fills the ledger with plausible results for the previous `days`
// days. Existing entries for those day keys are replaced; everything else is
// left alone.
func (m *Manager) SeedHistory(ctx context.Context, days int) error {
	if days <= 0 {
		return fmt.Errorf("seed history: days must be positive")
	}
	symbols := []string{"🟩", "🟨", "⬜"}
	visible := len(game.VisibleAttributes())
	for i := 1; i <= days; i++ {
		attempts := mathrand.IntN(game.MaxAttempts) + 1
		rows := make([]string, attempts)
		for r := range rows {
			var row strings.Builder
			for c := 0; c < visible; c++ {
				row.WriteString(symbols[mathrand.IntN(len(symbols))])
			}
			rows[r] = row.String()
		}
		status := game.StatusWon
		if mathrand.IntN(4) == 0 {
			status = game.StatusLost
		}
		entry := game.HistoryEntry{
			DayKey:    m.clock.DayKeyOffset(i),
			Status:    status,
			Attempts:  attempts,
			ShareGrid: strings.Join(rows, "\n"),
		}
		if _, err := m.store.UpsertHistoryEntry(ctx, entry); err != nil {
			return fmt.Errorf("seed day %s: %w", entry.DayKey, err)
		}
	}
	return nil
}
