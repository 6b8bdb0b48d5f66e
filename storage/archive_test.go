package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinAtoyan/classicbattleship/models"
)

func testArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := OpenArchive(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestArchive_SaveAndListGames(t *testing.T) {
	a := testArchive(t)

	moves := []models.MoveRecord{
		{Turn: 1, PlayerMove: "A1", PlayerHit: "hit", BotMove: "E5", BotHit: "miss"},
		{Turn: 2, PlayerMove: "A2", PlayerHit: "hit"},
	}
	started := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	require.NoError(t, a.SaveGame(started, "player", moves))
	require.NoError(t, a.SaveGame(started.Add(time.Hour), "bot", moves[:1]))

	games, err := a.Games()
	require.NoError(t, err)
	require.Len(t, games, 2)

	// Newest first.
	assert.Equal(t, "bot", games[0].Winner)
	assert.Equal(t, 1, games[0].Rounds)
	assert.Equal(t, "player", games[1].Winner)
	assert.Equal(t, 2, games[1].Rounds)
}

func TestArchive_Moves(t *testing.T) {
	a := testArchive(t)

	moves := []models.MoveRecord{
		{Turn: 1, PlayerMove: "A1", PlayerHit: "miss", BotMove: "J10", BotHit: "miss"},
		{Turn: 2, PlayerMove: "B2", PlayerHit: "hit", BotMove: "J9", BotHit: "miss"},
	}
	require.NoError(t, a.SaveGame(time.Now(), "player", moves))

	games, err := a.Games()
	require.NoError(t, err)
	require.Len(t, games, 1)

	rows, err := a.Moves(games[0].ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[0].PlayerMove)
	assert.Equal(t, "hit", rows[1].PlayerHit)
	assert.Equal(t, "J9", rows[1].BotMove)
}

func TestArchive_EmptyList(t *testing.T) {
	a := testArchive(t)
	games, err := a.Games()
	require.NoError(t, err)
	assert.Empty(t, games)
}
