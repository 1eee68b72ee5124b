package accesslog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEndOfStream is returned when a line carries no tokens. A blank line
	// terminates the log.
	ErrEndOfStream = errors.New("end of access stream")

	// ErrMalformedLine is returned when an access record cannot be decoded.
	ErrMalformedLine = errors.New("malformed access record")
)

// ParseLine decodes a single log line.
//
// Records of a kind other than KindAccess are returned with only the Kind
// field set.
func ParseLine(line string) (Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 1 {
		return Event{}, ErrEndOfStream
	}

	evt := Event{Kind: Kind(tokens[0])}
	if !evt.IsAccess() {
		return evt, nil
	}

	if len(tokens) < 4 {
		return Event{}, fmt.Errorf("%w: want 4 fields, got %d",
			ErrMalformedLine, len(tokens))
	}

	fields := []struct {
		name string
		dst  *int
	}{
		{"buffer", &evt.Buffer},
		{"row", &evt.Row},
		{"col", &evt.Col},
	}

	for i, f := range fields {
		v, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			return Event{}, fmt.Errorf("%w: %s %q is not an integer",
				ErrMalformedLine, f.name, tokens[i+1])
		}

		*f.dst = v
	}

	if evt.Buffer < 1 {
		return Event{}, fmt.Errorf("%w: buffer index %d must be positive",
			ErrMalformedLine, evt.Buffer)
	}

	return evt, nil
}
