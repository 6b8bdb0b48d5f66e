package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MartinAtoyan/classicbattleship/models"
)

var (
	ErrRosterExhausted = errors.New("no ship of that size left to place")
	ErrOverlap         = errors.New("ship overlaps another ship")
	ErrAdjacentShips   = errors.New("ship touches another ship")
	ErrAlreadyFired    = errors.New("coordinate was already fired upon")
)

// Outcome is the recorded result of firing at one cell.
type Outcome int

const (
	Unfired Outcome = iota
	Miss
	Hit
	// AutoMiss marks a cell revealed empty by the no-touch rule when a
	// neighboring ship sank.
	AutoMiss
)

func (o Outcome) String() string {
	switch o {
	case Miss:
		return "miss"
	case Hit:
		return "hit"
	case AutoMiss:
		return "auto-miss"
	default:
		return "unfired"
	}
}

// ShotResult describes one resolved shot. Sunk is non-nil only for the
// sinking shot, and AutoMissed lists the perimeter cells marked with it.
type ShotResult struct {
	Target     Coord
	Outcome    Outcome
	Sunk       *Ship
	AutoMissed []Coord
}

// Board is one player's grid: the placed fleet, the remaining roster quota
// during setup, and the shot log. All mutation goes through PlaceShip and
// Fire; both leave the board untouched on failure.
type Board struct {
	ships    []*Ship
	occupied map[Coord]*Ship
	outcomes map[Coord]Outcome
	quota    map[int]int
}

func NewBoard() *Board {
	quota := make(map[int]int, 4)
	for _, size := range FleetSizes {
		quota[size]++
	}
	return &Board{
		occupied: make(map[Coord]*Ship, fleetCellCount),
		outcomes: make(map[Coord]Outcome),
		quota:    quota,
	}
}

// PlaceShip validates and registers the ship spanning start-end.
// Checks run in order: collinearity, roster quota, overlap, no-touch
// (including diagonals). Any failure leaves the board unchanged.
func (b *Board) PlaceShip(start, end Coord) (*Ship, error) {
	cells, err := Span(start, end)
	if err != nil {
		return nil, err
	}

	if b.quota[len(cells)] == 0 {
		return nil, fmt.Errorf("%w: size %d", ErrRosterExhausted, len(cells))
	}

	for _, c := range cells {
		if other, ok := b.occupied[c]; ok {
			return nil, fmt.Errorf("%w: %s is part of ship %d", ErrOverlap, c, other.ID())
		}
	}

	for _, c := range cells {
		for _, n := range Neighbors8(c) {
			if other, ok := b.occupied[n]; ok {
				return nil, fmt.Errorf("%w: %s touches ship %d at %s", ErrAdjacentShips, c, other.ID(), n)
			}
		}
	}

	ship := newShip(len(b.ships)+1, cells)
	b.ships = append(b.ships, ship)
	for _, c := range cells {
		b.occupied[c] = ship
	}
	b.quota[len(cells)]--
	return ship, nil
}

// Complete reports whether the full roster has been placed.
func (b *Board) Complete() bool {
	for _, left := range b.quota {
		if left > 0 {
			return false
		}
	}
	return true
}

// RemainingSizes lists the still-unplaced roster sizes, largest first,
// one entry per remaining ship.
func (b *Board) RemainingSizes() []int {
	var out []int
	for size := 4; size >= 1; size-- {
		for i := 0; i < b.quota[size]; i++ {
			out = append(out, size)
		}
	}
	return out
}

func (b *Board) Ships() []*Ship {
	out := make([]*Ship, len(b.ships))
	copy(out, b.ships)
	return out
}

func (b *Board) ShipAt(c Coord) (*Ship, bool) {
	ship, ok := b.occupied[c]
	return ship, ok
}

func (b *Board) HasShipAt(c Coord) bool {
	_, ok := b.occupied[c]
	return ok
}

func (b *Board) OutcomeAt(c Coord) Outcome {
	return b.outcomes[c]
}

// UnfiredCells lists every cell without a recorded outcome, in row-major
// order.
func (b *Board) UnfiredCells() []Coord {
	out := make([]Coord, 0, BoardSize*BoardSize-len(b.outcomes))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Coord{Row: row, Col: col}
			if b.outcomes[c] == Unfired {
				out = append(out, c)
			}
		}
	}
	return out
}

func (b *Board) AllSunk() bool {
	for _, ship := range b.ships {
		if !ship.Sunk() {
			return false
		}
	}
	return len(b.ships) > 0
}

// Fire resolves a shot at c. A sinking hit also marks every still-unfired
// neighbor of the sunk ship as AutoMiss in the same call; recorded
// hit/miss cells are never overwritten.
func (b *Board) Fire(c Coord) (ShotResult, error) {
	if !c.inBounds() {
		return ShotResult{}, fmt.Errorf("%w: %s", ErrInvalidCoordinate, c)
	}
	if b.outcomes[c] != Unfired {
		return ShotResult{}, fmt.Errorf("%w: %s is already %s", ErrAlreadyFired, c, b.outcomes[c])
	}

	ship, ok := b.occupied[c]
	if !ok {
		b.outcomes[c] = Miss
		return ShotResult{Target: c, Outcome: Miss}, nil
	}

	ship.markHit(c)
	b.outcomes[c] = Hit
	res := ShotResult{Target: c, Outcome: Hit}

	if ship.Sunk() {
		res.Sunk = ship
		res.AutoMissed = b.markPerimeter(ship)
	}
	return res, nil
}

// markPerimeter records AutoMiss on every unfired 8-neighbor of the sunk
// ship's cells. The ship's own cells are all Hit by now, so they are
// naturally skipped.
func (b *Board) markPerimeter(ship *Ship) []Coord {
	var marked []Coord
	for _, c := range ship.cells {
		for _, n := range Neighbors8(c) {
			if b.outcomes[n] == Unfired {
				b.outcomes[n] = AutoMiss
				marked = append(marked, n)
			}
		}
	}
	sort.Slice(marked, func(i, j int) bool {
		if marked[i].Row != marked[j].Row {
			return marked[i].Row < marked[j].Row
		}
		return marked[i].Col < marked[j].Col
	})
	return marked
}

// Records exports the fleet as (start, end, size) triples.
func (b *Board) Records() []models.ShipRecord {
	out := make([]models.ShipRecord, 0, len(b.ships))
	for _, ship := range b.ships {
		out = append(out, ship.Record())
	}
	return out
}

// BoardFromRecords rebuilds a board from persisted ship triples,
// re-running full placement validation.
func BoardFromRecords(records []models.ShipRecord) (*Board, error) {
	b := NewBoard()
	for _, rec := range records {
		start, err := ParseCoord(rec.Start)
		if err != nil {
			return nil, fmt.Errorf("game.BoardFromRecords: %w", err)
		}
		end, err := ParseCoord(rec.End)
		if err != nil {
			return nil, fmt.Errorf("game.BoardFromRecords: %w", err)
		}
		if _, err := b.PlaceShip(start, end); err != nil {
			return nil, fmt.Errorf("game.BoardFromRecords: %w", err)
		}
	}
	if !b.Complete() {
		return nil, fmt.Errorf("game.BoardFromRecords: incomplete fleet: %d of %d ships",
			len(b.ships), len(FleetSizes))
	}
	return b, nil
}
