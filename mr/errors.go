package mr

import (
	"errors"
	"fmt"
)

var ErrMissingField = errors.New("missing field")
var ErrNoMapFn = errors.New("no map function registered")

// ParseError reports a row whose bit size or time could not be read.
// File and Line are zero when the row did not come from a RowReader.
type ParseError struct {
	File  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	if errors.Is(e.Err, ErrMissingField) {
		msg = fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	if e.File == "" {
		return msg
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
