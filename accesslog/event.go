// Package accesslog reads and writes the textual memory access logs that
// heapvis renders.
//
// Each line of a log is a whitespace-separated record. Access records have
// the shape
//
//	a <buffer> <row> <col>
//
// where buffer is a 1-based buffer index and row/col locate the access
// inside that buffer. A blank line ends the log.
package accesslog

import "fmt"

// Kind identifies the type of a log record.
type Kind string

// KindAccess marks a memory access record.
const KindAccess Kind = "a"

// An Event is one parsed log line.
type Event struct {
	Kind   Kind
	Buffer int
	Row    int
	Col    int
}

// IsAccess returns true if the event is a memory access.
func (e Event) IsAccess() bool {
	return e.Kind == KindAccess
}

// String formats the event in the log line format.
func (e Event) String() string {
	if !e.IsAccess() {
		return string(e.Kind)
	}

	return fmt.Sprintf("%s %d %d %d", e.Kind, e.Buffer, e.Row, e.Col)
}
