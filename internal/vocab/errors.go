package vocab

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations.
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrEntryNotFound    = errors.New("entry not found")
	ErrSlotOutOfRange   = errors.New("definition slot out of range")
	ErrNoClozeAvailable = errors.New("no cloze examples available")
)

// NotFoundError reports a (word, lang) pair with no matching entry.
type NotFoundError struct {
	Word string
	Lang string
}

func (e *NotFoundError) Error() string {
	if e.Lang == "" {
		return fmt.Sprintf("could not find entry %q", e.Word)
	}
	return fmt.Sprintf("could not find entry %q (%s)", e.Word, e.Lang)
}

func (e *NotFoundError) Unwrap() error { return ErrEntryNotFound }

// SlotError reports an edit aimed past the end of an entry's definitions.
type SlotError struct {
	Word  string
	Slot  int
	Count int
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s only has %d definitions (requested %d)", e.Word, e.Count, e.Slot)
}

func (e *SlotError) Unwrap() error { return ErrSlotOutOfRange }

func invalidArguments(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArguments, fmt.Sprintf(format, args...))
}
