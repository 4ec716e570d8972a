package entity

import "fmt"

// ValidationError reports an invalid value at construction time
// (bad room geometry, negative dimensions, ...).
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports an unparsable seat label or clock time.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Input, e.Reason)
}

// OutOfBoundsError reports a seat coordinate outside the grid.
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("seat (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// SeatStateError reports marking a cell to the state it already holds.
// The engine never requests an idempotent mark, so one indicates a bug
// or corrupted data rather than a user mistake.
type SeatStateError struct {
	Seat  string
	State SeatState
}

func (e *SeatStateError) Error() string {
	return fmt.Sprintf("seat %s already %s", e.Seat, e.State)
}
