package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnreadable is returned when the dictionary stream cannot be read.
	// The filter cannot be built from a partial stream.
	ErrSourceUnreadable = errors.New("dictionary: source unreadable")

	// ErrMalformedLine matches every *LineError.
	ErrMalformedLine = errors.New("dictionary: malformed line")

	// ErrInvalidUTF8 is the cause of a LineError for lines that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrTooManyMalformed is returned when more lines were skipped than WithMaxSkipped allows.
	ErrTooManyMalformed = errors.New("dictionary: too many malformed lines")
)

// LineError reports a malformed dictionary line.
//
// errors.Is(err, ErrMalformedLine) and errors.Is(err, Err) both report true.
type LineError struct {
	Line uint64 // 1-based line number
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("dictionary: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() []error { return []error{ErrMalformedLine, e.Err} }
