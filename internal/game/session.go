package game

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dyele/internal/catalog"
	"dyele/internal/daily"
)

// Mode selects between the shared daily puzzle and local practice runs.
type Mode string

const (
	ModeDaily    Mode = "daily"
	ModePractice Mode = "practice"
)

// Phase is the session's explicit lifecycle state. It replaces the original
// tangle of hydration/suppress/dismissed flags with one tagged value.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseRestoring
	PhaseActive
	PhaseTerminalShown
	PhaseTerminalDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseRestoring:
		return "restoring"
	case PhaseActive:
		return "active"
	case PhaseTerminalShown:
		return "terminal-shown"
	case PhaseTerminalDismissed:
		return "terminal-dismissed"
	default:
		return "uninitialized"
	}
}

// Store is the slice of persistence the session depends on.
type Store interface {
	LoadState(ctx context.Context, dayKey string) (*GameState, error)
	SaveState(ctx context.Context, state GameState) error
	ClearState(ctx context.Context, dayKey string) error
	UpsertHistoryEntry(ctx context.Context, entry HistoryEntry) ([]HistoryEntry, error)
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Catalog *catalog.Catalog
	Store   Store
	// OnWin fires exactly once per session when a submit transitions the
	// session to won. It never fires when restoring an already-won day.
	OnWin func()
	// Now stamps practice history entries. Defaults to time.Now.
	Now func() time.Time
	// Suggestions caps the "did you mean" list on unknown entries.
	Suggestions int
}

// Session owns the live game for the active day or practice run: the guess
// list, status and phase, and the transition rules between them. It is the
// sole writer of its day key's persisted state.
type Session struct {
	cat         *catalog.Catalog
	store       Store
	onWin       func()
	now         func() time.Time
	suggestions int

	mode       Mode
	dayKey     string
	target     catalog.Dye
	guesses    []Guess
	status     Status
	dismissed  bool
	phase      Phase
	celebrated bool
	pendingWin bool
}

func NewSession(opts SessionOptions) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	suggestions := opts.Suggestions
	if suggestions <= 0 {
		suggestions = 3
	}
	return &Session{
		cat:         opts.Catalog,
		store:       opts.Store,
		onWin:       opts.OnWin,
		now:         now,
		suggestions: suggestions,
		mode:        ModeDaily,
		status:      StatusPlaying,
		phase:       PhaseUninitialized,
	}
}

// StartDaily selects dayKey's target and restores any saved progress for it.
// Restoring a finished day never re-opens results or re-fires the win hook.
func (s *Session) StartDaily(ctx context.Context, dayKey string) error {
	s.phase = PhaseRestoring
	s.mode = ModeDaily
	s.dayKey = dayKey
	s.target = daily.SelectDaily(s.cat, dayKey)
	s.guesses = nil
	s.status = StatusPlaying
	s.dismissed = false
	s.celebrated = false
	s.pendingWin = false

	saved, err := s.store.LoadState(ctx, dayKey)
	if err != nil {
		return fmt.Errorf("restore day %s: %w", dayKey, err)
	}
	if saved != nil {
		s.guesses = saved.Guesses
		s.status = saved.Status
		s.dismissed = saved.ResultsDismissed
		s.celebrated = saved.Status == StatusWon
	}
	if s.status.Terminal() {
		s.phase = PhaseTerminalDismissed
	} else {
		s.phase = PhaseActive
	}
	return nil
}

// StartPractice switches to practice mode with a fresh random target.
// Practice progress is never persisted as day state.
func (s *Session) StartPractice() {
	s.mode = ModePractice
	s.target = daily.SelectRandom(s.cat)
	s.guesses = nil
	s.status = StatusPlaying
	s.dismissed = false
	s.celebrated = false
	s.pendingWin = false
	s.phase = PhaseActive
}

// ResetPractice rerolls the practice target and clears local progress.
func (s *Session) ResetPractice() {
	if s.mode != ModePractice {
		return
	}
	s.StartPractice()
}

// ResetDaily discards the current day's saved record and starts it over.
// Other days' states and the history ledger are untouched.
func (s *Session) ResetDaily(ctx context.Context) error {
	if s.mode != ModeDaily {
		return nil
	}
	if err := s.store.ClearState(ctx, s.dayKey); err != nil {
		return fmt.Errorf("clear day %s: %w", s.dayKey, err)
	}
	s.guesses = nil
	s.status = StatusPlaying
	s.dismissed = false
	s.celebrated = false
	s.pendingWin = false
	s.phase = PhaseActive
	return s.persist(ctx)
}

// Rollover re-keys a daily session when the puzzle day advances. Idempotent:
// a late timer firing after the key already changed is a no-op, as is any
// call while practicing.
func (s *Session) Rollover(ctx context.Context, newDayKey string) error {
	if s.mode != ModeDaily || newDayKey == s.dayKey {
		return nil
	}
	return s.StartDaily(ctx, newDayKey)
}

// Submit resolves the player's selection and applies one guess. The three
// input failures (empty, unknown, duplicate) report an error and leave the
// session untouched.
func (s *Session) Submit(ctx context.Context, selection string) error {
	if s.phase != PhaseActive {
		return ErrSessionComplete
	}
	trimmed := strings.TrimSpace(selection)
	if trimmed == "" {
		return ErrEmptySelection
	}
	dye, ok := s.cat.ByName(trimmed)
	if !ok {
		return &UnknownEntryError{Input: trimmed, Suggestions: s.cat.Suggest(trimmed, s.suggestions)}
	}
	for _, g := range s.guesses {
		if g.DyeID == dye.ID {
			return ErrDuplicateGuess
		}
	}

	s.guesses = append(s.guesses, Guess{DyeID: dye.ID, Feedback: Compare(dye, s.target)})
	switch {
	case dye.ID == s.target.ID:
		s.status = StatusWon
	case len(s.guesses) >= MaxAttempts:
		s.status = StatusLost
	}

	if s.status.Terminal() {
		s.dismissed = false
		s.phase = PhaseTerminalShown
		if s.status == StatusWon && !s.celebrated {
			s.celebrated = true
			s.pendingWin = true
			if s.onWin != nil {
				s.onWin()
			}
		}
		if _, err := s.store.UpsertHistoryEntry(ctx, s.historyEntry()); err != nil {
			return fmt.Errorf("record history: %w", err)
		}
	}
	return s.persist(ctx)
}

func (s *Session) historyEntry() HistoryEntry {
	key := s.dayKey
	if s.mode == ModePractice {
		key = s.now().UTC().Format(time.RFC3339)
	}
	return HistoryEntry{
		DayKey:    key,
		Status:    s.status,
		Attempts:  len(s.guesses),
		ShareGrid: ShareGrid(s.guesses),
		Practice:  s.mode == ModePractice,
	}
}

func (s *Session) persist(ctx context.Context) error {
	if s.mode != ModeDaily {
		return nil
	}
	err := s.store.SaveState(ctx, GameState{
		DayKey:           s.dayKey,
		Guesses:          s.guesses,
		Status:           s.status,
		ResultsDismissed: s.dismissed,
	})
	if err != nil {
		return fmt.Errorf("save day %s: %w", s.dayKey, err)
	}
	return nil
}

// DismissResults closes the terminal summary and remembers the dismissal.
func (s *Session) DismissResults(ctx context.Context) error {
	if s.phase != PhaseTerminalShown {
		return nil
	}
	s.phase = PhaseTerminalDismissed
	s.dismissed = true
	return s.persist(ctx)
}

// ReopenResults shows the terminal summary again.
func (s *Session) ReopenResults() {
	if s.phase == PhaseTerminalDismissed {
		s.phase = PhaseTerminalShown
	}
}

// ConsumeWin reports whether a win celebration is due and marks it consumed,
// so the effect fires exactly once per session.
func (s *Session) ConsumeWin() bool {
	due := s.pendingWin
	s.pendingWin = false
	return due
}

// ShareText renders the current session's shareable message.
func (s *Session) ShareText() string {
	return ShareMessage(s.mode, s.dayKey, s.guesses)
}

func (s *Session) Mode() Mode     { return s.mode }
func (s *Session) DayKey() string { return s.dayKey }
func (s *Session) Status() Status { return s.status }
func (s *Session) Phase() Phase   { return s.phase }

// Target exposes the answer for the results view.
func (s *Session) Target() catalog.Dye { return s.target }

// Guesses returns the accepted guesses in arrival order.
func (s *Session) Guesses() []Guess {
	out := make([]Guess, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// RemainingAttempts never goes below zero.
func (s *Session) RemainingAttempts() int {
	if r := MaxAttempts - len(s.guesses); r > 0 {
		return r
	}
	return 0
}
