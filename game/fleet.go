package game

import (
	"errors"
	"math/rand"
)

// FleetSizes is the roster every player must place: one battleship, two
// cruisers, three destroyers and four submarines, 20 cells in total.
var FleetSizes = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

const fleetCellCount = 20

// ErrFleetStalled is an internal fault: the random generator exhausted its
// retry budget without producing a valid layout. With 20 ship cells on a
// 100-cell board this does not happen in practice.
var ErrFleetStalled = errors.New("gave up generating a random fleet")

const (
	maxBoardAttempts     = 80
	maxPlacementAttempts = 250
)

// RandomFleet builds a complete board by rejection sampling: pick a random
// remaining roster size, a random orientation and a random in-bounds
// anchor, then attempt a regular placement. A board that stalls is thrown
// away and rebuilt from scratch. The result obeys the same overlap and
// no-touch rules as a hand-placed fleet.
func RandomFleet(rng *rand.Rand) (*Board, error) {
	for attempt := 0; attempt < maxBoardAttempts; attempt++ {
		if b, ok := tryRandomFleet(rng); ok {
			return b, nil
		}
	}
	return nil, ErrFleetStalled
}

func tryRandomFleet(rng *rand.Rand) (*Board, bool) {
	b := NewBoard()
	for tries := 0; tries < maxPlacementAttempts; tries++ {
		remaining := b.RemainingSizes()
		if len(remaining) == 0 {
			return b, true
		}

		size := remaining[rng.Intn(len(remaining))]
		start, end := randomSpan(rng, size)
		if _, err := b.PlaceShip(start, end); err != nil {
			continue
		}
	}
	return nil, false
}

// randomSpan picks a random horizontal or vertical run of the given size
// whose cells all stay on the board.
func randomSpan(rng *rand.Rand, size int) (Coord, Coord) {
	if rng.Intn(2) == 0 {
		row := rng.Intn(BoardSize)
		col := rng.Intn(BoardSize - size + 1)
		return Coord{Row: row, Col: col}, Coord{Row: row, Col: col + size - 1}
	}
	row := rng.Intn(BoardSize - size + 1)
	col := rng.Intn(BoardSize)
	return Coord{Row: row, Col: col}, Coord{Row: row + size - 1, Col: col}
}
