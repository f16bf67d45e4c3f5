package store

import (
	"errors"
	"fmt"
)

// IOError reports a file that is missing, unreadable or unwritable.
type IOError struct {
	Path string
	Op   string // "read" or "write"
	Err  error
}

func (e *IOError) Error() string {
	op := e.Op
	if op == "" {
		op = "read"
	}
	return fmt.Sprintf("%s %s: %v", op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError reports a malformed source file.
type FormatError struct {
	Path    string
	Line    int // 0 when the error is not tied to a line
	Message string
	Err     error
}

func (e *FormatError) Error() string {
	path := e.Path
	if path == "" {
		path = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsIOError returns true if err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}

// IsFormatError returns true if err is or wraps a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
