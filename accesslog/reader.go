package accesslog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// A Reader streams events out of an access log.
type Reader struct {
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewReader creates a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Line returns the number of the last line read, starting from 1.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next event in the log. It returns io.EOF once the input is
// exhausted or a blank line is reached. Any other error is fatal for the log;
// later calls keep returning io.EOF.
func (r *Reader) Next() (Event, error) {
	if r.done {
		return Event{}, io.EOF
	}

	if !r.scanner.Scan() {
		r.done = true

		if err := r.scanner.Err(); err != nil {
			return Event{}, fmt.Errorf("reading line %d: %w", r.line+1, err)
		}

		return Event{}, io.EOF
	}

	r.line++

	evt, err := ParseLine(r.scanner.Text())
	if errors.Is(err, ErrEndOfStream) {
		r.done = true
		return Event{}, io.EOF
	}

	if err != nil {
		r.done = true
		return Event{}, fmt.Errorf("line %d: %w", r.line, err)
	}

	return evt, nil
}
