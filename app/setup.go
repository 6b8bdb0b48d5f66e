package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-wordwrap"

	"github.com/MartinAtoyan/classicbattleship/game"
)

const placementHelp = "Enter each ship as two coordinates, start and end, " +
	"separated by a space, e.g. \"A1 A4\" for a horizontal four-decker or " +
	"\"B3 D3\" for a vertical three-decker. A single-cell ship repeats its " +
	"coordinate, e.g. \"E5 E5\". Ships must lie in a straight line and may " +
	"not touch each other, not even diagonally. Required fleet: one ship of " +
	"size 4, two of size 3, three of size 2 and four of size 1."

func printPlacementHelp() {
	fmt.Println()
	for _, line := range strings.Split(wordwrap.WrapString(placementHelp, 72), "\n") {
		fmt.Println(line)
	}
	fmt.Println()
}

// placeFleetManually walks the player through placing the full roster,
// re-prompting on every rejected attempt.
func (a *App) placeFleetManually() (*game.Board, error) {
	printPlacementHelp()

	board := game.NewBoard()
	for !board.Complete() {
		remaining := board.RemainingSizes()
		fmt.Printf("Ships left to place (sizes): %v\n", remaining)

		startTok, endTok, ok := promptEndpoints("Ship coordinates")
		if !ok {
			fmt.Println("Expected two coordinates, e.g. A1 A4. Try again.")
			continue
		}

		start, err := game.ParseCoord(startTok)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			continue
		}
		end, err := game.ParseCoord(endTok)
		if err != nil {
			fmt.Printf("Error: %s\n", err)
			continue
		}

		ship, err := board.PlaceShip(start, end)
		if err != nil {
			fmt.Printf("Error: %s\n", rejectionMessage(err))
			continue
		}

		log.Debug("app [placeFleetManually]", "ship", ship.ID(), "size", ship.Size())
		fmt.Printf("Placed ship %d (size %d)\n", ship.ID(), ship.Size())
	}

	fmt.Println("All ships placed!")
	return board, nil
}

// rejectionMessage maps placement error kinds to player-facing wording.
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, game.ErrNotCollinear):
		return "ships must be horizontal or vertical"
	case errors.Is(err, game.ErrRosterExhausted):
		return "you already placed all ships of that size"
	case errors.Is(err, game.ErrOverlap):
		return "that spot overlaps another ship"
	case errors.Is(err, game.ErrAdjacentShips):
		return "ships may not touch, not even diagonally"
	default:
		return err.Error()
	}
}
