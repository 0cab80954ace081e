package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/partykeeper/internal/common"
	"github.com/dmitrijs2005/partykeeper/internal/services"
	"github.com/dmitrijs2005/partykeeper/internal/session"
)

// ErrNoQuickSave is returned by QuickLoadRequested when the slot is empty.
var ErrNoQuickSave = fmt.Errorf("%w: no quick save", common.ErrNotFound)

// SlotNotFoundError is a failed load, with the nearest existing slot name
// when there is one.
type SlotNotFoundError struct {
	Name       string
	Suggestion string
	Err        error
}

func (e *SlotNotFoundError) Error() string {
	if e.Suggestion == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v (did you mean %q?)", e.Err, e.Suggestion)
}

func (e *SlotNotFoundError) Unwrap() error { return e.Err }

// Feedback turns a controller error into a line for the user. It returns ""
// for nil.
func Feedback(err error) string {
	if err == nil {
		return ""
	}

	var (
		notFound *SlotNotFoundError
		corrupt  *common.CorruptError
		ioErr    *common.IOError
	)
	switch {
	case errors.Is(err, common.ErrValidation):
		return validationMessage(err)
	case errors.As(err, &notFound):
		msg := fmt.Sprintf("No save named %q.", strings.TrimSpace(notFound.Name))
		if notFound.Suggestion != "" {
			msg += fmt.Sprintf(" Did you mean %q?", notFound.Suggestion)
		}
		return msg
	case errors.Is(err, ErrNoQuickSave):
		return "There is no quick save yet."
	case errors.As(err, &corrupt):
		return fmt.Sprintf("Save %q is damaged and cannot be loaded.", corrupt.Name)
	case errors.Is(err, common.ErrEmptyParty):
		return "Nothing to save: the party is empty."
	case errors.Is(err, common.ErrDuplicateAccount):
		return "That account already exists."
	case errors.Is(err, common.ErrNoSuchAccount):
		return "No account with that name."
	case errors.Is(err, common.ErrWrongPassword):
		return "Wrong password."
	case errors.Is(err, session.ErrAlreadyAuthenticated):
		return "Already logged in."
	case errors.Is(err, services.ErrNoScope):
		return "No save scope is open."
	case errors.As(err, &ioErr):
		return fmt.Sprintf("Could not access %s: %v", ioErr.Path, ioErr.Err)
	default:
		return "Something went wrong: " + err.Error()
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), common.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid input."
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}
