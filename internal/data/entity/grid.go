package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatState is the single-character cell state used in the persisted grid.
type SeatState byte

const (
	SeatAvailable SeatState = 'o'
	SeatOccupied  SeatState = 'x'
)

func (s SeatState) String() string {
	if s == SeatAvailable {
		return "available"
	}
	return "occupied"
}

// Coord is a zero-based (row, column) position in a seating grid.
type Coord struct {
	Row int
	Col int
}

// SeatGrid is the mutable occupancy map for one (room, screening)
// pairing, one string per row. Dimensions are fixed at generation time.
type SeatGrid []string

// GenerateGrid builds an all-available grid from a room layout.
func GenerateGrid(room *Room) (SeatGrid, error) {
	if err := ValidateLayout(room.TotalRows, room.VIPRows, room.Columns); err != nil {
		return nil, err
	}

	row := strings.Repeat(string(SeatAvailable), room.Columns)
	grid := make(SeatGrid, room.TotalRows)
	for i := range grid {
		grid[i] = row
	}
	return grid, nil
}

// SeatLabel maps a zero-based coordinate to a human label like "A1".
// Rows past 'Z' fall back to "R{row}C{col}"; callers needing more than
// 26 rows should not rely on these labels round-tripping.
func SeatLabel(row, col int) string {
	if row >= 0 && row < 26 {
		return fmt.Sprintf("%c%d", 'A'+row, col+1)
	}
	return fmt.Sprintf("R%dC%d", row, col)
}

// ParseSeatLabel is the inverse of SeatLabel for rows A..Z. The row letter
// is case-insensitive and the remainder is the 1-based column number.
func ParseSeatLabel(label string) (Coord, error) {
	if len(label) < 2 {
		return Coord{}, &FormatError{Input: label, Reason: "seat label needs a row letter and a column number"}
	}

	letter := label[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return Coord{}, &FormatError{Input: label, Reason: "row letter must be A..Z"}
	}

	col, err := strconv.Atoi(label[1:])
	if err != nil || col < 1 {
		return Coord{}, &FormatError{Input: label, Reason: "column must be a positive number"}
	}

	return Coord{Row: int(letter - 'A'), Col: col - 1}, nil
}

func (g SeatGrid) Rows() int {
	return len(g)
}

func (g SeatGrid) Columns() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Contains reports whether the coordinate lies inside the grid.
func (g SeatGrid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows() && c.Col >= 0 && c.Col < g.Columns()
}

// StateAt returns the cell state. The coordinate must be in bounds.
func (g SeatGrid) StateAt(c Coord) SeatState {
	return SeatState(g[c.Row][c.Col])
}

// CountAvailable counts the cells still available.
func (g SeatGrid) CountAvailable() int {
	count := 0
	for _, row := range g {
		count += strings.Count(row, string(SeatAvailable))
	}
	return count
}

// Full reports whether no seats remain. Not a stored state, derived.
func (g SeatGrid) Full() bool {
	return g.CountAvailable() == 0
}

// Mark sets every coordinate to the given state. It fails before touching
// anything if a coordinate is out of bounds or a cell already holds the
// requested state, so a failed Mark never leaves a partial write.
func (g SeatGrid) Mark(coords []Coord, state SeatState) error {
	for _, c := range coords {
		if !g.Contains(c) {
			return &OutOfBoundsError{Row: c.Row, Col: c.Col, Rows: g.Rows(), Cols: g.Columns()}
		}
		if g.StateAt(c) == state {
			return &SeatStateError{Seat: SeatLabel(c.Row, c.Col), State: state}
		}
	}

	for _, c := range coords {
		row := []byte(g[c.Row])
		row[c.Col] = byte(state)
		g[c.Row] = string(row)
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g SeatGrid) Clone() SeatGrid {
	out := make(SeatGrid, len(g))
	copy(out, g)
	return out
}
