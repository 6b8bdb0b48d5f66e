package game

import (
	"errors"
	"testing"
)

func TestParseCoord_Valid(t *testing.T) {
	cases := map[string]Coord{
		"A1":    {0, 0},
		"a1":    {0, 0},
		"J10":   {9, 9},
		"j10":   {9, 9},
		"E5":    {4, 4},
		" B2 ":  {1, 1},
		"c10":   {2, 9},
	}
	for token, want := range cases {
		got, err := ParseCoord(token)
		if err != nil {
			t.Fatalf("ParseCoord(%q): %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseCoord(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestParseCoord_Invalid(t *testing.T) {
	for _, token := range []string{"", "A", "K1", "A0", "A11", "5A", "AA", "A1x", "1", "Z99"} {
		_, err := ParseCoord(token)
		if !errors.Is(err, ErrInvalidCoordinate) {
			t.Fatalf("ParseCoord(%q): want ErrInvalidCoordinate, got %v", token, err)
		}
	}
}

func TestCoordString_RoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			back, err := ParseCoord(c.String())
			if err != nil {
				t.Fatalf("ParseCoord(%q): %v", c.String(), err)
			}
			if back != c {
				t.Fatalf("round trip %v -> %q -> %v", c, c.String(), back)
			}
		}
	}
}

func TestSpan_Horizontal(t *testing.T) {
	cells, err := Span(Coord{0, 3}, Coord{0, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []Coord{{0, 0}, {0, 1}, {0, 2}, {0, 3}}
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d", len(cells), len(want))
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("cell %d = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestSpan_Vertical(t *testing.T) {
	cells, err := Span(Coord{2, 5}, Coord{5, 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 4 {
		t.Fatalf("got %d cells, want 4", len(cells))
	}
	for i, c := range cells {
		if c.Col != 5 || c.Row != 2+i {
			t.Fatalf("unexpected cell %v at index %d", c, i)
		}
	}
}

func TestSpan_SingleCell(t *testing.T) {
	cells, err := Span(Coord{4, 4}, Coord{4, 4})
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 1 || cells[0] != (Coord{4, 4}) {
		t.Fatalf("got %v, want single E5", cells)
	}
}

func TestSpan_Diagonal(t *testing.T) {
	_, err := Span(Coord{0, 0}, Coord{2, 2})
	if !errors.Is(err, ErrNotCollinear) {
		t.Fatalf("want ErrNotCollinear, got %v", err)
	}
}

func TestNeighbors8_Center(t *testing.T) {
	if n := Neighbors8(Coord{4, 4}); len(n) != 8 {
		t.Fatalf("center cell has %d neighbors, want 8", len(n))
	}
}

func TestNeighbors8_Corner(t *testing.T) {
	n := Neighbors8(Coord{0, 0})
	if len(n) != 3 {
		t.Fatalf("corner cell has %d neighbors, want 3", len(n))
	}
	for _, c := range n {
		if !c.inBounds() {
			t.Fatalf("neighbor %v out of bounds", c)
		}
	}
}

func TestNeighbors8_Edge(t *testing.T) {
	if n := Neighbors8(Coord{0, 4}); len(n) != 5 {
		t.Fatalf("edge cell has %d neighbors, want 5", len(n))
	}
}
