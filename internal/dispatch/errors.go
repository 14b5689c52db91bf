package dispatch

import (
	"errors"
	"fmt"
)

// ErrMissingValue is matched by *MissingValueError.
var ErrMissingValue = errors.New("missing required value")

// MissingValueError reports a flag given without the value it requires.
type MissingValueError struct {
	Flag string // e.g. "--commit"
	Want string // e.g. "a message"
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("%s requires %s", e.Flag, e.Want)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
