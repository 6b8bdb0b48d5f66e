package game

import "github.com/MartinAtoyan/classicbattleship/models"

// Ship is one placed vessel. Cells are ordered along the ship's axis and
// never change after placement; only the hit set grows.
type Ship struct {
	id    int
	cells []Coord
	hits  map[Coord]bool
}

func newShip(id int, cells []Coord) *Ship {
	return &Ship{
		id:    id,
		cells: cells,
		hits:  make(map[Coord]bool, len(cells)),
	}
}

func (s *Ship) ID() int { return s.id }

func (s *Ship) Size() int { return len(s.cells) }

// Cells returns a copy of the occupied coordinates.
func (s *Ship) Cells() []Coord {
	out := make([]Coord, len(s.cells))
	copy(out, s.cells)
	return out
}

func (s *Ship) Contains(c Coord) bool {
	for _, cell := range s.cells {
		if cell == c {
			return true
		}
	}
	return false
}

func (s *Ship) markHit(c Coord) {
	if s.Contains(c) {
		s.hits[c] = true
	}
}

func (s *Ship) IsHit(c Coord) bool { return s.hits[c] }

// Sunk reports whether every occupied cell has been hit.
func (s *Ship) Sunk() bool { return len(s.hits) == len(s.cells) }

// Record exports the ship as the (start, end, size) triple used by the
// persistence layers.
func (s *Ship) Record() models.ShipRecord {
	return models.ShipRecord{
		Start: s.cells[0].String(),
		End:   s.cells[len(s.cells)-1].String(),
		Size:  len(s.cells),
	}
}
