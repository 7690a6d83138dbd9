package game

import (
	"errors"
	"fmt"
	"strings"
)

// User input errors. All leave the session unchanged.
var (
	ErrEmptySelection  = errors.New("pick a dye before submitting")
	ErrUnknownEntry    = errors.New("choose a dye from the list")
	ErrDuplicateGuess  = errors.New("you already guessed that dye")
	ErrSessionComplete = errors.New("this puzzle is already finished")
)

// UnknownEntryError wraps ErrUnknownEntry with nearby display names.
type UnknownEntryError struct {
	Input       string
	Suggestions []string
}

func (e *UnknownEntryError) Error() string {
	if len(e.Suggestions) == 0 {
		return ErrUnknownEntry.Error()
	}
	return fmt.Sprintf("%s (did you mean %s?)", ErrUnknownEntry, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownEntryError) Unwrap() error { return ErrUnknownEntry }
