package calendar

import (
	"fmt"
	"path/filepath"
)

// ParseError reports input text that is not a valid calendar
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse calendar %s: %v", filepath.Base(e.Path), e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// EmptyInputError reports a calendar that parsed but holds no events
type EmptyInputError struct {
	Path string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("calendar %s contains no events", filepath.Base(e.Path))
}

// IOError reports a failed read or write of a calendar file
type IOError struct {
	Path string
	Op   string // "open", "read", "create", "write" or "close"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
