package portfolio

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"portfolio-sim/pkg/chip"
	"portfolio-sim/pkg/playable"
)

// State is the state of a game
type State int

// game states
const (
	StateInProgress State = iota
	StateFinished
)

func (s State) String() string {
	if s == StateFinished {
		return "finished"
	}

	return "in-progress"
}

// Game is one play-through on the shared board
// Players take turns until both have checked. A player who has checked never acts again;
// the other player keeps taking turns alone until they check too.
type Game struct {
	number  int
	board   *Board
	players [2]*Player

	active   int
	checked  [2]bool
	finished bool
	turns    int

	// only populated once Score() is called
	scored bool
	scores map[string]int
	winner *Player

	log     *GameLog
	logger  logrus.FieldLogger
	logSink func(messages ...*playable.LogMessage)
}

// NewGame returns a new game. number is 1-based and only used for logging
func NewGame(logger logrus.FieldLogger, number int, board *Board, players [2]*Player) *Game {
	return &Game{
		number:  number,
		board:   board,
		players: players,
		log:     newGameLog(number),
		logger:  logger.WithField("game", number),
	}
}

// Number returns the game number within the match
func (g *Game) Number() int {
	return g.number
}

// State returns the state of the game
func (g *Game) State() State {
	if g.finished {
		return StateFinished
	}

	return StateInProgress
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	return g.players[g.active]
}

// HasChecked returns true if the player at index i has checked
func (g *Game) HasChecked(i int) bool {
	return g.checked[i]
}

// Turns returns the number of moves executed so far
func (g *Game) Turns() int {
	return g.turns
}

// Log returns the game log
func (g *Game) Log() *GameLog {
	return g.log
}

// Run steps the game until both players have checked
func (g *Game) Run() error {
	for !g.finished {
		if err := g.Step(); err != nil {
			return err
		}
	}

	return nil
}

// Step advances the game by one turn
func (g *Game) Step() error {
	if g.finished {
		return ErrGameIsOver
	}

	if !g.checked[g.active] {
		player := g.players[g.active]
		move, err := player.strategy.ChooseMove(player, g.board)
		if err != nil {
			return fmt.Errorf("%s could not choose a move: %w", player.Name, err)
		}

		if err := g.executeMove(g.active, move); err != nil {
			return err
		}
	}

	if g.checked[0] && g.checked[1] {
		g.finished = true
		g.logger.WithField("turns", g.turns).Debug("both players checked")
		return nil
	}

	if next := 1 - g.active; !g.checked[next] {
		g.active = next
	}

	return nil
}

func (g *Game) executeMove(idx int, move *Move) error {
	player := g.players[idx]
	if move == nil {
		return IllegalMoveError{Player: player.Name, Err: ErrNilMove}
	}

	if err := g.validateMove(player, move); err != nil {
		return IllegalMoveError{Player: player.Name, Move: move, Err: err}
	}

	g.turns++
	g.log.AddTurn(g.turns, player.Name, move)
	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"move":   move.String(),
	}).Debug("move")

	switch move.Type {
	case MoveCheck:
		g.checked[idx] = true
		g.sendLogMessages(playable.SimpleLogMessage(player.Name, "{} checked"))
	case MoveDiscard:
		if err := player.hand.Remove(move.Chip); err != nil {
			return IllegalMoveError{Player: player.Name, Move: move, Err: err}
		}

		g.board.discard(move.Chip)
		g.sendLogMessages(playable.SimpleLogMessage(player.Name, "{} discarded a chip"))
	case MovePlayFaceDown:
		if err := g.play(player, move.Chip, move.Position, true); err != nil {
			return IllegalMoveError{Player: player.Name, Move: move, Err: err}
		}

		g.sendLogMessages(playable.SimpleLogMessage(player.Name, "{} played a chip face down at %d", move.Position))
	case MovePlayFaceUp:
		if err := g.play(player, move.Chip, move.Position, false); err != nil {
			return IllegalMoveError{Player: player.Name, Move: move, Err: err}
		}

		msg := playable.SimpleLogMessage(player.Name, "{} played %s face up at %d", move.Chip.Kind, move.Position)
		msg.Chips = append(msg.Chips, move.Chip)
		g.sendLogMessages(msg)

		if err := g.resolveEffect(player, move); err != nil {
			return err
		}
	}

	return nil
}

// validateMove checks a primary move before anything is mutated
func (g *Game) validateMove(player *Player, move *Move) error {
	switch move.Type {
	case MoveCheck:
		return nil
	case MoveDiscard, MovePlayFaceDown, MovePlayFaceUp:
	default:
		return ErrUnknownMoveType
	}

	if move.Chip == nil {
		return ErrMissingChip
	}

	if !player.HasChip(move.Chip) {
		return ErrChipNotInHand
	}

	if move.Type != MoveDiscard && !ValidPosition(move.Position) {
		return fmt.Errorf("%w: %d", ErrPositionOutOfRange, move.Position)
	}

	return nil
}

// play moves a chip from the player's hand onto the board
// Nothing changes if the chip is not in the hand.
func (g *Game) play(player *Player, c *chip.Chip, pos int, hidden bool) error {
	if err := player.hand.Remove(c); err != nil {
		return err
	}

	if hidden {
		c.Hide()
	} else {
		c.Reveal()
	}

	g.board.push(pos, c)
	return nil
}

// Score calculates the scores and the winner of a finished game
// The winner is nil on a tie. Scoring does not modify the board, and the result is kept, so
// calling it again (even after the board was cleaned up) returns the same result.
func (g *Game) Score() (map[string]int, *Player, error) {
	if !g.finished {
		return nil, nil, ErrGameNotOver
	}

	if g.scored {
		return copyScores(g.scores), g.winner, nil
	}

	scores := CalculateScore(g.board, g.players)

	var winner *Player
	s0, s1 := scores[g.players[0].Name], scores[g.players[1].Name]
	if s0 > s1 {
		winner = g.players[0]
	} else if s1 > s0 {
		winner = g.players[1]
	}

	g.scored = true
	g.log.Breakdown = ScoreBreakdown(g.board)
	g.log.Scores = scores
	if winner != nil {
		g.log.Winner = winner.Name
	}

	g.scores = scores
	g.winner = winner
	return copyScores(scores), winner, nil
}

// Scores returns the scores once the game has been scored, otherwise nil
func (g *Game) Scores() map[string]int {
	if !g.scored {
		return nil
	}

	return copyScores(g.scores)
}

// Winner returns the winner once the game has been scored; nil means a tie or not scored yet
func (g *Game) Winner() *Player {
	return g.winner
}

// IsTie returns true if the game was scored and nobody won
func (g *Game) IsTie() bool {
	return g.scored && g.winner == nil
}

func (g *Game) sendLogMessages(messages ...*playable.LogMessage) {
	if g.logSink != nil {
		g.logSink(messages...)
	}
}

func copyScores(scores map[string]int) map[string]int {
	cp := make(map[string]int, len(scores))
	for name, score := range scores {
		cp[name] = score
	}

	return cp
}
