package app

import (
	"context"

	"github.com/atotto/clipboard"

	"dyele/internal/game"
	"dyele/internal/state"
	"dyele/internal/ui"
)

// The view drives the app through ui.Controller. Every method runs on the
// bubbletea update goroutine, so no locking is needed here.

func (a *App) Snapshot() ui.Snapshot {
	guesses := a.session.Guesses()
	rows := make([]ui.GuessRow, 0, len(guesses))
	// Newest first: the latest guess reads at the top of the board.
	for i := len(guesses) - 1; i >= 0; i-- {
		g := guesses[i]
		row := ui.GuessRow{Index: i + 1, Name: g.DyeID, Feedback: g.Feedback}
		if dye, ok := a.cat.ByID(g.DyeID); ok {
			row.Name = dye.DisplayName
			row.ColorHex = dye.ColorHex
		}
		rows = append(rows, row)
	}

	snap := ui.Snapshot{
		Mode:      a.session.Mode(),
		DayKey:    a.session.DayKey(),
		Status:    a.session.Status(),
		Phase:     a.session.Phase(),
		Guesses:   rows,
		Attempts:  len(guesses),
		Remaining: a.session.RemainingAttempts(),
		Countdown: a.clock.UntilNextDay(),
	}
	if snap.Status.Terminal() {
		t := a.session.Target()
		snap.Target = &ui.TargetInfo{
			Name:     t.DisplayName,
			CodeName: t.CodeName,
			ColorHex: t.ColorHex,
			Facts:    t.Facts,
		}
	}
	return snap
}

func (a *App) History() ([]game.HistoryEntry, error) {
	ctx, cancel := a.opCtx()
	defer cancel()
	return a.store.LoadHistory(ctx)
}

func (a *App) SubmitGuess(selection string) error {
	ctx, cancel := a.opCtx()
	defer cancel()
	if err := a.session.Submit(ctx, selection); err != nil {
		return err
	}
	a.logger.Info("game.guess", "mode", a.session.Mode(), "attempts", len(a.session.Guesses()),
		"status", a.session.Status())
	return nil
}

func (a *App) DismissResults() error {
	ctx, cancel := a.opCtx()
	defer cancel()
	return a.session.DismissResults(ctx)
}

func (a *App) ReopenResults() { a.session.ReopenResults() }

func (a *App) ResetGame() error {
	if a.session.Mode() == game.ModePractice {
		a.session.ResetPractice()
		return nil
	}
	ctx, cancel := a.opCtx()
	defer cancel()
	return a.session.ResetDaily(ctx)
}

func (a *App) TogglePractice(on bool) error {
	if on {
		a.session.StartPractice()
		a.logger.Info("game.practice_start", "session", a.sessionID)
		return nil
	}
	ctx, cancel := a.opCtx()
	defer cancel()
	return a.session.StartDaily(ctx, a.clock.DayKey())
}

func (a *App) Rollover() error {
	ctx, cancel := a.opCtx()
	defer cancel()
	key := a.clock.DayKey()
	if a.session.Mode() == game.ModeDaily && key != a.session.DayKey() {
		a.logger.Info("game.rollover", "from", a.session.DayKey(), "to", key)
	}
	return a.session.Rollover(ctx, key)
}

func (a *App) ConsumeWin() bool { return a.session.ConsumeWin() }

func (a *App) Share() ui.ShareResult {
	return shareToClipboard(a.session.ShareText())
}

func (a *App) ShareHistory(entry game.HistoryEntry) ui.ShareResult {
	return shareToClipboard(game.HistoryShareMessage(entry))
}

func shareToClipboard(msg string) ui.ShareResult {
	if err := clipboard.WriteAll(msg); err != nil {
		// No clipboard on headless terminals. The message still renders
		// inline so the player can copy it by hand.
		return ui.ShareResult{Message: msg, Err: err}
	}
	return ui.ShareResult{Message: msg, Copied: true}
}

func (a *App) IntroDismissed() bool {
	ctx, cancel := a.opCtx()
	defer cancel()
	v, err := a.store.GetSetting(ctx, state.SettingIntroDismissed)
	return err == nil && v == "true"
}

func (a *App) SetIntroDismissed(dismissed bool) error {
	ctx, cancel := a.opCtx()
	defer cancel()
	v := "false"
	if dismissed {
		v = "true"
	}
	return a.store.SetSetting(ctx, state.SettingIntroDismissed, v)
}

func (a *App) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}
