package dotenv

import (
	"errors"
	"fmt"
)

// UnreadableError is returned when the env file cannot be opened or read.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot read env file %s: %v", e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// IsUnreadable checks if an error is or wraps an UnreadableError.
func IsUnreadable(err error) bool {
	var unreadable *UnreadableError
	return errors.As(err, &unreadable)
}

// errNoAssignment marks a line without a NAME=VALUE statement.
var errNoAssignment = errors.New("no variable assignment")

// errMultipleAssignments marks a line holding more than one statement.
var errMultipleAssignments = errors.New("more than one assignment on a line")

// errInvalidName marks a name that cannot be stored as a layer env file.
var errInvalidName = errors.New("variable name is not usable as a file name")

// errLineTooLong marks a line longer than maxLineLength.
var errLineTooLong = errors.New("line too long")

// errUnsupportedCharacters marks a line using every private-use rune.
var errUnsupportedCharacters = errors.New("line uses every private-use character")
