package ui

import (
	"time"

	"dyele/internal/game"
)

// Controller is the application surface the view drives. The app implements
// it; the view never touches the session or store directly.
type Controller interface {
	Snapshot() Snapshot
	History() ([]game.HistoryEntry, error)

	SubmitGuess(selection string) error
	DismissResults() error
	ReopenResults()
	ResetGame() error
	TogglePractice(on bool) error
	Rollover() error
	ConsumeWin() bool

	Share() ShareResult
	ShareHistory(entry game.HistoryEntry) ShareResult

	IntroDismissed() bool
	SetIntroDismissed(dismissed bool) error
}

// Snapshot is the render-ready view of the current session.
type Snapshot struct {
	Mode      game.Mode
	DayKey    string
	Status    game.Status
	Phase     game.Phase
	Guesses   []GuessRow // newest first
	Attempts  int
	Remaining int
	Countdown time.Duration
	Target    *TargetInfo // set once the session is terminal
}

// GuessRow is one guess resolved against the catalog for display.
type GuessRow struct {
	Index    int // 1-based submission order
	Name     string
	ColorHex string
	Feedback []game.AttributeFeedback
}

// TargetInfo reveals the answer in the results overlay.
type TargetInfo struct {
	Name     string
	CodeName string
	ColorHex string
	Facts    []string
}

// ShareResult reports a share attempt. When Copied is false the message is
// still set so the player can copy it by hand.
type ShareResult struct {
	Message string
	Copied  bool
	Err     error
}
