package game

import (
	"fmt"
	"strings"
)

// Share grid symbols.
const (
	symbolMatch   = "🟩"
	symbolPartial = "🟨"
	symbolMiss    = "⬜"
)

// SymbolFor maps a feedback value to its share-grid symbol. Every directional
// hint collapses into the partial symbol.
func SymbolFor(v Feedback) string {
	switch v {
	case FeedbackMatch:
		return symbolMatch
	case FeedbackPartial, FeedbackHigher, FeedbackLower, FeedbackStricter, FeedbackLooser:
		return symbolPartial
	default:
		return symbolMiss
	}
}

// ShareGrid renders guesses as one symbol row per guess over the visible
// attributes, rows joined by newlines. Pure and deterministic: the same guess
// sequence always yields the same string.
func ShareGrid(guesses []Guess) string {
	visible := VisibleAttributes()
	rows := make([]string, len(guesses))
	for i, g := range guesses {
		var row strings.Builder
		for _, attr := range visible {
			row.WriteString(SymbolFor(feedbackFor(g, attr.Key)))
		}
		rows[i] = row.String()
	}
	return strings.Join(rows, "\n")
}

func feedbackFor(g Guess, key AttributeKey) Feedback {
	for _, fb := range g.Feedback {
		if fb.Key == key {
			return fb.Value
		}
	}
	return FeedbackNoMatch
}

// ShareMessage builds the full shareable text: a header line with the day key
// (or the practice label) and the attempt count, then the grid.
func ShareMessage(mode Mode, dayKey string, guesses []Guess) string {
	label := dayKey
	if mode == ModePractice {
		label = "Practice"
	}
	header := fmt.Sprintf("%s %s %d/%d", ProductName, label, len(guesses), MaxAttempts)
	return header + "\n" + ShareGrid(guesses)
}

// HistoryShareMessage rebuilds the share text for a ledger entry.
func HistoryShareMessage(e HistoryEntry) string {
	label := e.DayKey
	if e.Practice {
		label = "Practice"
	}
	header := fmt.Sprintf("%s %s %d/%d", ProductName, label, e.Attempts, MaxAttempts)
	return header + "\n" + e.ShareGrid
}
