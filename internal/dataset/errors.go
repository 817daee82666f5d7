package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStore is returned by Undo when there is nothing to remove.
	ErrEmptyStore = errors.New("store is empty")

	// ErrInvalidFile matches every *InvalidFileError via errors.Is.
	ErrInvalidFile = errors.New("invalid dataset file")
)

// InvalidFileError describes a malformed table. Line is 1-based and counts the
// header; zero means the problem is not tied to a line.
type InvalidFileError struct {
	Path   string
	Line   int
	Column string
	Reason string
	Err    error
}

func (e *InvalidFileError) Error() string {
	msg := "invalid dataset file"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(": line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(": column %q", e.Column)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFileError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidFile) match any InvalidFileError.
func (e *InvalidFileError) Is(target error) bool { return target == ErrInvalidFile }
