package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the side length of the grid. Rows are lettered A-J,
// columns are numbered 1-10.
const BoardSize = 10

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrNotCollinear      = errors.New("ship endpoints must share a row or a column")
)

// Coord is a zero-based (row, column) board address. The zero value is A1.
type Coord struct {
	Row int
	Col int
}

// ParseCoord parses a token like "A1" or "j10" (case-insensitive).
func ParseCoord(token string) (Coord, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) < 2 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, token)
	}

	row := int(t[0] - 'A')
	if row < 0 || row >= BoardSize {
		return Coord{}, fmt.Errorf("%w: row must be A-J, got %q", ErrInvalidCoordinate, token)
	}

	col, err := strconv.Atoi(t[1:])
	if err != nil {
		return Coord{}, fmt.Errorf("%w: column must be numeric, got %q", ErrInvalidCoordinate, token)
	}
	if col < 1 || col > BoardSize {
		return Coord{}, fmt.Errorf("%w: column must be 1-%d, got %q", ErrInvalidCoordinate, BoardSize, token)
	}

	return Coord{Row: row, Col: col - 1}, nil
}

func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col+1)
}

func (c Coord) inBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Span expands two endpoints into the inclusive run of cells between them,
// ordered along the varying axis. A single cell is a valid span.
func Span(start, end Coord) ([]Coord, error) {
	switch {
	case start.Row == end.Row:
		lo, hi := minmax(start.Col, end.Col)
		cells := make([]Coord, 0, hi-lo+1)
		for col := lo; col <= hi; col++ {
			cells = append(cells, Coord{Row: start.Row, Col: col})
		}
		return cells, nil
	case start.Col == end.Col:
		lo, hi := minmax(start.Row, end.Row)
		cells := make([]Coord, 0, hi-lo+1)
		for row := lo; row <= hi; row++ {
			cells = append(cells, Coord{Row: row, Col: start.Col})
		}
		return cells, nil
	default:
		return nil, fmt.Errorf("%w: %s-%s", ErrNotCollinear, start, end)
	}
}

// Neighbors8 returns the orthogonal and diagonal neighbors of c, clipped
// to the board.
func Neighbors8(c Coord) []Coord {
	out := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if n.inBounds() {
				out = append(out, n)
			}
		}
	}
	return out
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
