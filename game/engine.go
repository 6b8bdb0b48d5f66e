package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/MartinAtoyan/classicbattleship/models"
)

// ErrOutOfTurn rejects a shot taken in the wrong phase.
var ErrOutOfTurn = errors.New("not this shooter's turn")

// Phase is the engine's state machine position. Only PhaseOver is terminal.
type Phase int

const (
	AwaitingPlayerShot Phase = iota
	AwaitingBotShot
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingPlayerShot:
		return "awaiting player shot"
	case AwaitingBotShot:
		return "awaiting bot shot"
	default:
		return "game over"
	}
}

// Shooter identifies who fired.
type Shooter int

const (
	PlayerShooter Shooter = iota
	BotShooter
)

func (s Shooter) String() string {
	if s == BotShooter {
		return "bot"
	}
	return "player"
}

// TurnRecord is the immutable log entry for one shot. Number is the round:
// the player's shot and the bot's reply share it.
type TurnRecord struct {
	Number     int
	Shooter    Shooter
	Target     Coord
	Outcome    Outcome
	Sunk       bool
	AutoMissed []Coord
}

// Game drives the alternating shot resolution between two complete boards.
// It is the sole writer of both boards once play begins.
type Game struct {
	playerBoard *Board
	botBoard    *Board
	phase       Phase
	winner      Shooter
	round       int
	turns       []TurnRecord
	rng         *rand.Rand
}

// NewGame starts a match. Both boards must carry the full roster.
func NewGame(playerBoard, botBoard *Board, rng *rand.Rand) (*Game, error) {
	if !playerBoard.Complete() || !botBoard.Complete() {
		return nil, errors.New("game.NewGame: both fleets must be fully placed")
	}
	return &Game{
		playerBoard: playerBoard,
		botBoard:    botBoard,
		phase:       AwaitingPlayerShot,
		rng:         rng,
	}, nil
}

func (g *Game) Phase() Phase { return g.phase }

func (g *Game) PlayerBoard() *Board { return g.playerBoard }

func (g *Game) BotBoard() *Board { return g.botBoard }

// Winner is meaningful only once Phase() == PhaseOver.
func (g *Game) Winner() (Shooter, bool) {
	return g.winner, g.phase == PhaseOver
}

// Turns returns the chronological shot log.
func (g *Game) Turns() []TurnRecord {
	out := make([]TurnRecord, len(g.turns))
	copy(out, g.turns)
	return out
}

// PlayerFire resolves the player's shot against the bot's board. A
// rejected shot (bad phase, repeated cell) changes nothing; the player
// keeps the turn.
func (g *Game) PlayerFire(c Coord) (TurnRecord, error) {
	if g.phase != AwaitingPlayerShot {
		return TurnRecord{}, fmt.Errorf("%w: phase is %s", ErrOutOfTurn, g.phase)
	}

	res, err := g.botBoard.Fire(c)
	if err != nil {
		return TurnRecord{}, err
	}

	g.round++
	rec := g.append(PlayerShooter, res)

	if g.botBoard.AllSunk() {
		g.phase = PhaseOver
		g.winner = PlayerShooter
	} else {
		g.phase = AwaitingBotShot
	}
	return rec, nil
}

// BotFire picks a uniformly random unfired cell on the player's board and
// resolves it. It never repeats a cell: the pool excludes every outcomed
// coordinate by construction.
func (g *Game) BotFire() (TurnRecord, error) {
	if g.phase != AwaitingBotShot {
		return TurnRecord{}, fmt.Errorf("%w: phase is %s", ErrOutOfTurn, g.phase)
	}

	pool := g.playerBoard.UnfiredCells()
	target := pool[g.rng.Intn(len(pool))]

	res, err := g.playerBoard.Fire(target)
	if err != nil {
		// Unreachable: the pool contains only unfired cells.
		return TurnRecord{}, fmt.Errorf("game.BotFire: %w", err)
	}

	rec := g.append(BotShooter, res)

	if g.playerBoard.AllSunk() {
		g.phase = PhaseOver
		g.winner = BotShooter
	} else {
		g.phase = AwaitingPlayerShot
	}
	return rec, nil
}

func (g *Game) append(shooter Shooter, res ShotResult) TurnRecord {
	rec := TurnRecord{
		Number:     g.round,
		Shooter:    shooter,
		Target:     res.Target,
		Outcome:    res.Outcome,
		Sunk:       res.Sunk != nil,
		AutoMissed: res.AutoMissed,
	}
	g.turns = append(g.turns, rec)
	return rec
}

// MoveRows pairs the shot log into per-round rows of the shape the
// persistence layers store: turn, player move/result, bot move/result.
func (g *Game) MoveRows() []models.MoveRecord {
	var rows []models.MoveRecord
	for _, rec := range g.turns {
		switch rec.Shooter {
		case PlayerShooter:
			rows = append(rows, models.MoveRecord{
				Turn:       rec.Number,
				PlayerMove: rec.Target.String(),
				PlayerHit:  hitOrMiss(rec.Outcome),
			})
		case BotShooter:
			row := &rows[len(rows)-1]
			row.BotMove = rec.Target.String()
			row.BotHit = hitOrMiss(rec.Outcome)
		}
	}
	return rows
}

func hitOrMiss(o Outcome) string {
	if o == Hit {
		return "hit"
	}
	return "miss"
}
