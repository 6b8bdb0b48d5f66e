package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MartinAtoyan/classicbattleship/models"
)

// Well-known file names under the data directory.
const (
	PlayerShipsFile = "player_ships.csv"
	BotShipsFile    = "bot_ships.csv"
	GameStateFile   = "game_state.csv"
)

// Store persists fleets and move logs as CSV files under one directory.
type Store struct {
	dataDir string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage.NewStore: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dataDir, name)
}

// SaveShips writes a fleet as start,end,size rows.
func (s *Store) SaveShips(name string, ships []models.ShipRecord) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("storage.SaveShips: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"start", "end", "size"}); err != nil {
		return fmt.Errorf("storage.SaveShips: %w", err)
	}
	for _, ship := range ships {
		if err := w.Write([]string{ship.Start, ship.End, strconv.Itoa(ship.Size)}); err != nil {
			return fmt.Errorf("storage.SaveShips: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadShips reads a fleet saved by SaveShips.
func (s *Store) LoadShips(name string) ([]models.ShipRecord, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("storage.LoadShips: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("storage.LoadShips: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("storage.LoadShips: %s is empty", name)
	}

	ships := make([]models.ShipRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("storage.LoadShips: malformed row %v", row)
		}
		size, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("storage.LoadShips: bad size in row %v: %w", row, err)
		}
		ships = append(ships, models.ShipRecord{Start: row[0], End: row[1], Size: size})
	}
	return ships, nil
}

// SaveMoves writes the finished game's move log.
func (s *Store) SaveMoves(name string, moves []models.MoveRecord) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("storage.SaveMoves: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"turn", "player_move", "player_hit", "bot_move", "bot_hit"}); err != nil {
		return fmt.Errorf("storage.SaveMoves: %w", err)
	}
	for _, m := range moves {
		row := []string{strconv.Itoa(m.Turn), m.PlayerMove, m.PlayerHit, m.BotMove, m.BotHit}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("storage.SaveMoves: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
