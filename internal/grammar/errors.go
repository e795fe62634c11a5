package grammar

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every *ParseError via errors.Is
	ErrParse = errors.New("grammar parse error")
	// ErrIO is matched by every *IOError via errors.Is
	ErrIO = errors.New("grammar source unreadable")
)

// ParseError reports a malformed rule line.
type ParseError struct {
	Line   int    // 1-based line number in the source
	Text   string // the offending line, untrimmed of comments
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// IOError reports a grammar source that could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read grammar: %v", e.Err)
	}
	return fmt.Sprintf("failed to read grammar %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying error.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
