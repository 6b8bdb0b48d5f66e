package storage

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MartinAtoyan/classicbattleship/models"
)

// GameRow is one archived match.
type GameRow struct {
	ID        uint `gorm:"primarykey"`
	StartedAt time.Time
	Winner    string
	Rounds    int
	Moves     []MoveRow `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// MoveRow is one round of an archived match.
type MoveRow struct {
	ID         uint `gorm:"primarykey"`
	GameID     uint `gorm:"index"`
	Turn       int
	PlayerMove string
	PlayerHit  string
	BotMove    string
	BotHit     string
}

// Archive keeps finished games in a local SQLite file.
type Archive struct {
	db *gorm.DB
}

func OpenArchive(path string) (*Archive, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("storage.OpenArchive: %w", err)
	}
	if err := db.AutoMigrate(&GameRow{}, &MoveRow{}); err != nil {
		return nil, fmt.Errorf("storage.OpenArchive: migrate: %w", err)
	}
	return &Archive{db: db}, nil
}

// SaveGame appends a finished match and its move log.
func (a *Archive) SaveGame(startedAt time.Time, winner string, moves []models.MoveRecord) error {
	row := GameRow{
		StartedAt: startedAt,
		Winner:    winner,
		Rounds:    len(moves),
	}
	for _, m := range moves {
		row.Moves = append(row.Moves, MoveRow{
			Turn:       m.Turn,
			PlayerMove: m.PlayerMove,
			PlayerHit:  m.PlayerHit,
			BotMove:    m.BotMove,
			BotHit:     m.BotHit,
		})
	}
	if err := a.db.Create(&row).Error; err != nil {
		return fmt.Errorf("storage.SaveGame: %w", err)
	}
	return nil
}

// Games lists archived matches, newest first, without their move logs.
func (a *Archive) Games() ([]GameRow, error) {
	var rows []GameRow
	if err := a.db.Order("id desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("storage.Games: %w", err)
	}
	return rows, nil
}

// Moves loads the move log of one archived match.
func (a *Archive) Moves(gameID uint) ([]MoveRow, error) {
	var rows []MoveRow
	if err := a.db.Where("game_id = ?", gameID).Order("turn").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("storage.Moves: %w", err)
	}
	return rows, nil
}

func (a *Archive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
