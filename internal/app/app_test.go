package app

import (
	"context"
	"strings"
	"testing"

	"dyele/internal/game"
)

func testApp(t *testing.T, dataDir string) *App {
	t.Helper()
	cfg := Config{DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate config: %v", err)
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.Close)
	return a
}

func wrongGuess(t *testing.T, a *App) string {
	t.Helper()
	target := a.session.Target()
	for _, name := range a.cat.Names() {
		if !strings.EqualFold(name, target.DisplayName) {
			return name
		}
	}
	t.Fatal("catalog has a single dye")
	return ""
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Mode != "daily" {
		t.Fatalf("default mode = %q", cfg.Mode)
	}
	if cfg.DataDir == "" {
		t.Fatalf("data dir not defaulted")
	}

	bad := Config{Mode: "zen"}
	if err := bad.Validate(); err == nil {
		t.Fatalf("invalid mode accepted")
	}
}

func TestGuessPersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	a := testApp(t, dir)
	if err := a.session.StartDaily(ctx, "2026-01-15"); err != nil {
		t.Fatalf("start daily: %v", err)
	}
	guess := wrongGuess(t, a)
	if err := a.SubmitGuess(guess); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if snap := a.Snapshot(); snap.Attempts != 1 || snap.Guesses[0].Name != guess {
		t.Fatalf("snapshot after guess: %+v", snap)
	}
	a.Close()

	b := testApp(t, dir)
	if err := b.session.StartDaily(ctx, "2026-01-15"); err != nil {
		t.Fatalf("restart daily: %v", err)
	}
	snap := b.Snapshot()
	if snap.Attempts != 1 {
		t.Fatalf("guess not restored: %+v", snap)
	}
	if snap.Guesses[0].Name != guess {
		t.Fatalf("restored guess = %q, want %q", snap.Guesses[0].Name, guess)
	}
}

func TestSnapshotRevealsTargetOnlyWhenTerminal(t *testing.T) {
	a := testApp(t, t.TempDir())
	if err := a.session.StartDaily(context.Background(), "2026-01-15"); err != nil {
		t.Fatal(err)
	}
	if snap := a.Snapshot(); snap.Target != nil {
		t.Fatalf("target leaked mid-game")
	}

	if err := a.SubmitGuess(a.session.Target().DisplayName); err != nil {
		t.Fatalf("winning submit: %v", err)
	}
	snap := a.Snapshot()
	if snap.Status != game.StatusWon {
		t.Fatalf("status = %q", snap.Status)
	}
	if snap.Target == nil || snap.Target.Name != a.session.Target().DisplayName {
		t.Fatalf("target not revealed: %+v", snap.Target)
	}
	if !a.ConsumeWin() {
		t.Fatalf("win not pending")
	}
	if a.ConsumeWin() {
		t.Fatalf("win consumed twice")
	}
}

func TestPracticeGuessesStayOutOfDailyState(t *testing.T) {
	a := testApp(t, t.TempDir())
	ctx := context.Background()
	if err := a.session.StartDaily(ctx, "2026-01-15"); err != nil {
		t.Fatal(err)
	}

	if err := a.TogglePractice(true); err != nil {
		t.Fatalf("enter practice: %v", err)
	}
	if err := a.SubmitGuess(wrongGuess(t, a)); err != nil {
		t.Fatalf("practice submit: %v", err)
	}
	if a.Snapshot().Mode != game.ModePractice {
		t.Fatalf("mode = %q", a.Snapshot().Mode)
	}

	if err := a.TogglePractice(false); err != nil {
		t.Fatalf("leave practice: %v", err)
	}
	if snap := a.Snapshot(); snap.Attempts != 0 {
		t.Fatalf("practice guess bled into daily state: %+v", snap)
	}
}

func TestIntroSettingRoundTrip(t *testing.T) {
	a := testApp(t, t.TempDir())
	if a.IntroDismissed() {
		t.Fatalf("intro dismissed before anyone dismissed it")
	}
	if err := a.SetIntroDismissed(true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !a.IntroDismissed() {
		t.Fatalf("dismissal not persisted")
	}
}
