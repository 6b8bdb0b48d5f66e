package app

import (
	"fmt"

	gui "github.com/grupawp/warships-gui/v2"

	"github.com/MartinAtoyan/classicbattleship/game"
)

type ui struct {
	gui       *gui.GUI
	ownBoard  *gui.Board
	oppBoard  *gui.Board
	infoText  *gui.Text
	exitText  *gui.Text
	turnText  *gui.Text
	statsInfo *gui.Text
}

func newUi() *ui {
	g := gui.NewGUI(true)
	ownBoard := gui.NewBoard(2, 6, nil)
	oppBoard := gui.NewBoard(60, 6, nil)
	exitText := gui.NewText(2, 2, "Press Ctrl+C to exit", nil)
	infoText := gui.NewText(2, 4, "Click the right-hand board to fire", nil)
	turnText := gui.NewText(50, 2, "Turn 1", nil)
	statsInfo := gui.NewText(50, 20, "0.00%", &gui.TextConfig{FgColor: gui.White, BgColor: gui.Black})

	g.Draw(ownBoard)
	g.Draw(oppBoard)
	g.Draw(exitText)
	g.Draw(infoText)
	g.Draw(turnText)
	g.Draw(statsInfo)
	g.Draw(gui.NewText(48, 19, "Accuracy:", nil))
	g.Draw(gui.NewText(2, 5, "Your fleet", nil))
	g.Draw(gui.NewText(60, 5, "Enemy waters", nil))

	return &ui{
		gui:       g,
		ownBoard:  ownBoard,
		oppBoard:  oppBoard,
		infoText:  infoText,
		exitText:  exitText,
		turnText:  turnText,
		statsInfo: statsInfo,
	}
}

func (u *ui) setInfoText(text string) {
	u.infoText.SetText(text)
}

func (u *ui) setTurn(round int) {
	u.turnText.SetText(fmt.Sprintf("Turn %d", round))
}

// refreshBoards redraws both grids: the player's fleet fully visible,
// the bot's ships hidden unless hit.
func (u *ui) refreshBoards(g *game.Game) {
	var own, opp [10][10]gui.State
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			c := game.Coord{Row: row, Col: col}
			own[row][col] = cellState(g.PlayerBoard(), c, true)
			opp[row][col] = cellState(g.BotBoard(), c, false)
		}
	}
	u.ownBoard.SetStates(own)
	u.oppBoard.SetStates(opp)
}

func cellState(b *game.Board, c game.Coord, showShips bool) gui.State {
	switch b.OutcomeAt(c) {
	case game.Hit:
		return gui.Hit
	case game.Miss, game.AutoMiss:
		return gui.Miss
	}
	if showShips && b.HasShipAt(c) {
		return gui.Ship
	}
	return gui.Empty
}

func (u *ui) updateAccuracy(accuracy float64) {
	u.statsInfo.SetText(fmt.Sprintf("%.2f%%", accuracy))
}

func (u *ui) renderGameResult(winner game.Shooter) {
	if winner == game.PlayerShooter {
		u.infoText.SetBgColor(gui.Green)
		u.infoText.SetFgColor(gui.White)
		u.setInfoText("You win")
	} else {
		u.infoText.SetBgColor(gui.Red)
		u.infoText.SetFgColor(gui.White)
		u.setInfoText("You lose")
	}
	u.exitText.SetText("Game over - press Ctrl+C to exit")
}
