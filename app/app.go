package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/MartinAtoyan/classicbattleship/game"
	"github.com/MartinAtoyan/classicbattleship/storage"
)

// App wires the engine to the terminal UI and the persistence layers.
type App struct {
	store   *storage.Store
	archive *storage.Archive
	rng     *rand.Rand
	ui      *ui
}

// New builds the app. archive may be nil when archiving is disabled.
func New(store *storage.Store, archive *storage.Archive, rng *rand.Rand) *App {
	return &App{
		store:   store,
		archive: archive,
		rng:     rng,
	}
}

func (a *App) Run() error {
	for {
		choices := []string{
			"Place your fleet manually",
			"Play with a random fleet",
			"Replay your last saved fleet",
			"Show archived games",
			"Quit",
		}

		choice := promptList(choices, 1, func(s string) string { return s })
		log.Debug("app [Run]", "choice", choice)

		var playerBoard *game.Board
		var err error

		switch choice {
		case 1:
			playerBoard, err = a.placeFleetManually()
		case 2:
			playerBoard, err = game.RandomFleet(a.rng)
		case 3:
			playerBoard, err = a.loadSavedFleet()
			if err != nil {
				fmt.Printf("Could not load your last fleet: %s\n", err)
				continue
			}
		case 4:
			if err := a.showArchivedGames(); err != nil {
				return fmt.Errorf("app.showArchivedGames: %w", err)
			}
			continue
		case 5:
			return nil
		}
		if err != nil {
			return fmt.Errorf("app.Run: %w", err)
		}

		if err := a.playMatch(playerBoard); err != nil {
			return fmt.Errorf("app.playMatch: %w", err)
		}

		if !promptPlayer("Play another game?") {
			return nil
		}
	}
}

func (a *App) loadSavedFleet() (*game.Board, error) {
	records, err := a.store.LoadShips(storage.PlayerShipsFile)
	if err != nil {
		return nil, err
	}
	return game.BoardFromRecords(records)
}

// playMatch generates the bot's fleet, persists both layouts, runs the
// match in the terminal UI and saves the results.
func (a *App) playMatch(playerBoard *game.Board) error {
	botBoard, err := game.RandomFleet(a.rng)
	if err != nil {
		return fmt.Errorf("game.RandomFleet: %w", err)
	}

	if err := a.store.SaveShips(storage.PlayerShipsFile, playerBoard.Records()); err != nil {
		return err
	}
	if err := a.store.SaveShips(storage.BotShipsFile, botBoard.Records()); err != nil {
		return err
	}
	log.Info("app [playMatch]", "msg", "fleets saved", "ships", len(playerBoard.Records()))

	g, err := game.NewGame(playerBoard, botBoard, a.rng)
	if err != nil {
		return err
	}

	startedAt := time.Now()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.ui = newUi()
	a.ui.refreshBoards(g)
	go a.gameLoop(ctx, g)
	a.ui.gui.Start(ctx, nil)

	return a.saveResults(g, startedAt)
}

// gameLoop drives the alternating turns while the UI runs in the
// foreground goroutine.
func (a *App) gameLoop(ctx context.Context, g *game.Game) {
	for round := 1; g.Phase() != game.PhaseOver; round++ {
		a.ui.setTurn(round)

		rec, ok := a.playerTurn(ctx, g)
		if !ok {
			return
		}
		a.ui.refreshBoards(g)
		a.ui.setInfoText("You fired at " + describeShot(rec))
		a.ui.updateAccuracy(playerAccuracy(g))
		if g.Phase() == game.PhaseOver {
			break
		}

		botRec, err := g.BotFire()
		if err != nil {
			log.Error("app [gameLoop]", "err", err)
			return
		}
		a.ui.refreshBoards(g)
		a.ui.setInfoText(fmt.Sprintf("You fired at %s | Bot fired at %s",
			describeShot(rec), describeShot(botRec)))
		log.Debug("app [gameLoop]", "bot", botRec.Target.String(), "outcome", botRec.Outcome.String())
	}

	winner, _ := g.Winner()
	a.ui.renderGameResult(winner)
}

// playerTurn blocks until the player fires a valid shot. Rejected shots
// keep the turn.
func (a *App) playerTurn(ctx context.Context, g *game.Game) (game.TurnRecord, bool) {
	for {
		token := a.ui.oppBoard.Listen(ctx)
		if token == "" {
			return game.TurnRecord{}, false
		}

		c, err := game.ParseCoord(token)
		if err != nil {
			a.ui.setInfoText(fmt.Sprintf("Invalid coordinate %q", token))
			continue
		}

		rec, err := g.PlayerFire(c)
		if errors.Is(err, game.ErrAlreadyFired) {
			a.ui.setInfoText(fmt.Sprintf("You already fired at %s", c))
			continue
		}
		if err != nil {
			log.Error("app [playerTurn]", "err", err)
			continue
		}
		return rec, true
	}
}

func (a *App) saveResults(g *game.Game, startedAt time.Time) error {
	winner, over := g.Winner()
	if !over {
		log.Info("app [saveResults]", "msg", "game abandoned, nothing to save")
		return nil
	}

	rows := g.MoveRows()
	if err := a.store.SaveMoves(storage.GameStateFile, rows); err != nil {
		return err
	}
	log.Info("app [saveResults]", "winner", winner.String(), "rounds", len(rows))

	if a.archive != nil {
		if err := a.archive.SaveGame(startedAt, winner.String(), rows); err != nil {
			return err
		}
	}

	fmt.Printf("\nFinal winner: %s (%d rounds)\n", winner, len(rows))
	return nil
}

func (a *App) showArchivedGames() error {
	if a.archive == nil {
		fmt.Print("\nArchive is disabled in the config\n\n")
		return nil
	}

	games, err := a.archive.Games()
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Print("\nNo archived games yet\n\n")
		return nil
	}

	fmt.Println()
	fmt.Printf("| %4s | %-16s | %-6s | %6s |\n", "ID", "STARTED", "WINNER", "ROUNDS")
	for _, row := range games {
		fmt.Printf("| %4s | %-16s | %-6s | %6s |\n",
			strconv.FormatUint(uint64(row.ID), 10),
			row.StartedAt.Format("2006-01-02 15:04"),
			row.Winner,
			strconv.Itoa(row.Rounds),
		)
	}
	fmt.Println()
	return nil
}

func describeShot(rec game.TurnRecord) string {
	switch {
	case rec.Sunk:
		return fmt.Sprintf("%s: hit and sunk!", rec.Target)
	case rec.Outcome == game.Hit:
		return fmt.Sprintf("%s: hit!", rec.Target)
	default:
		return fmt.Sprintf("%s: miss", rec.Target)
	}
}

func playerAccuracy(g *game.Game) float64 {
	var shots, hits int
	for _, rec := range g.Turns() {
		if rec.Shooter != game.PlayerShooter {
			continue
		}
		shots++
		if rec.Outcome == game.Hit {
			hits++
		}
	}
	if shots == 0 {
		return 0
	}
	return 100 * float64(hits) / float64(shots)
}
