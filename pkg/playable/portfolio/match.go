package portfolio

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"portfolio-sim/internal/rng"
	"portfolio-sim/pkg/chip"
	"portfolio-sim/pkg/playable"
)

// Stage is the stage of a match
type Stage int

// match stages
const (
	StageDraft Stage = iota
	StageGame1
	StageGame2
	StageGame3
	StageFinished
)

func (s Stage) String() string {
	switch s {
	case StageDraft:
		return "draft"
	case StageGame1:
		return "game 1"
	case StageGame2:
		return "game 2"
	case StageGame3:
		return "game 3"
	case StageFinished:
		return "finished"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Match is a draft followed by two or three games on one shared board
type Match struct {
	options Options
	players [2]*Player
	board   *Board
	games   []*Game
	stage   Stage
	gen     rng.Generator
	seed    int64

	result     *Result
	messages   []*playable.LogMessage
	deckHashes []string

	logger logrus.FieldLogger
}

// NewMatch returns a new match between the two players
// gen drives the draft shuffle and every deck shuffle; it must not be shared with the strategies
// if the match is to be reproducible from its seed.
func NewMatch(logger logrus.FieldLogger, players [2]*Player, gen rng.Generator, opts Options) (*Match, error) {
	if err := opts.validate(); err != nil {
		return nil, setupError(err)
	}

	for _, p := range players {
		if p == nil || p.Name == "" {
			return nil, setupError(ErrMissingPlayerName)
		}

		if p.strategy == nil {
			return nil, setupError(fmt.Errorf("%w: %s", ErrMissingStrategy, p.Name))
		}
	}

	if players[0].Name == players[1].Name {
		return nil, setupError(fmt.Errorf("%w: %s", ErrDuplicatePlayerName, players[0].Name))
	}

	return &Match{
		options: opts,
		players: players,
		board:   NewBoard(),
		games:   make([]*Game, 0, MaxGames),
		stage:   StageDraft,
		gen:     gen,
		seed:    opts.Seed,
		logger: logger.WithFields(logrus.Fields{
			"players": fmt.Sprintf("%s vs %s", players[0].Name, players[1].Name),
		}),
	}, nil
}

// Stage returns the current stage
func (m *Match) Stage() Stage {
	return m.stage
}

// Players returns both players
func (m *Match) Players() [2]*Player {
	return m.players
}

// Board returns the shared board
func (m *Match) Board() *Board {
	return m.board
}

// Games returns the games played so far
func (m *Match) Games() []*Game {
	return append([]*Game{}, m.games...)
}

// Result returns the result once the match is finished
func (m *Match) Result() *Result {
	return m.result
}

// ChipCount counts every chip the match knows about: decks, hands, holdings, stacks and discards
// After the draft this is always chip.UniverseSize.
func (m *Match) ChipCount() int {
	return m.players[0].chipCount() + m.players[1].chipCount() + m.board.ChipCount()
}

// Play runs the whole match
func (m *Match) Play() error {
	if m.stage != StageDraft {
		return ErrMatchAlreadyPlayed
	}

	if err := Draft(m.logger, m.players, m.gen); err != nil {
		return err
	}

	m.sendLogMessages(playable.SimpleLogMessage("", "The draft is complete"))
	for _, p := range m.players {
		hash := p.deck.HashCode()
		m.deckHashes = append(m.deckHashes, hash)
		m.logger.WithFields(logrus.Fields{
			"player": p.Name,
			"deck":   hash,
			"kinds":  chip.CountKinds(p.deck.Chips),
		}).Debug("drafted deck")
	}

	for _, p := range m.players {
		if err := p.drawHoldings(m.gen); err != nil {
			return setupError(err)
		}

		if err := p.drawHand(m.options.HandSize); err != nil {
			return setupError(err)
		}
	}

	winners := make([]int, 0, MaxGames)
	for number := 1; number <= MaxGames; number++ {
		m.stage = StageGame1 + Stage(number-1)

		game, err := m.playGame(number)
		if err != nil {
			return err
		}

		winners = append(winners, m.winnerIndex(game))

		if winner, decided := DecideMatch(winners); decided {
			m.finish(winner, winners)
			return nil
		}

		if game.IsTie() {
			if err := m.offerRevision(game); err != nil {
				return err
			}
		}

		m.refillHands()
	}

	// DecideMatch always decides after MaxGames
	return fmt.Errorf("match undecided after %d games", MaxGames)
}

// playGame runs, scores and cleans up one game
func (m *Match) playGame(number int) (*Game, error) {
	game := NewGame(m.logger, number, m.board, m.players)
	game.logSink = m.sendLogMessages
	m.games = append(m.games, game)

	m.sendLogMessages(playable.SimpleLogMessage("", "Game %d begins", number))
	if err := game.Run(); err != nil {
		return nil, err
	}

	scores, winner, err := game.Score()
	if err != nil {
		return nil, err
	}

	log := m.logger.WithFields(logrus.Fields{
		"game":   number,
		"turns":  game.Turns(),
		"scores": scores,
	})
	if winner == nil {
		log.Info("game tied")
		m.sendLogMessages(playable.SimpleLogMessage("", "Game %d is a tie", number))
	} else {
		log.WithField("winner", winner.Name).Info("game won")
		m.sendLogMessages(playable.SimpleLogMessage(winner.Name, "{} won game %d", number))
	}

	game.log.SetDiscarded(m.board.Cleanup())

	if n := m.ChipCount(); n != chip.UniverseSize {
		log.WithField("chips", n).Error("chip count does not match the universe")
	}

	return game, nil
}

func (m *Match) winnerIndex(g *Game) int {
	switch g.Winner() {
	case m.players[0]:
		return 0
	case m.players[1]:
		return 1
	default:
		return Tie
	}
}

// offerRevision lets each player swap their holdings for fresh chips after a tie
func (m *Match) offerRevision(after *Game) error {
	for _, p := range m.players {
		revise, err := p.strategy.ReviseHoldings(p)
		if err != nil {
			return setupError(fmt.Errorf("%s could not decide on holdings: %w", p.Name, err))
		}

		if !revise {
			continue
		}

		if err := p.reviseHoldings(m.gen); err != nil {
			return setupError(err)
		}

		after.log.Revised = append(after.log.Revised, p.Name)
		m.logger.WithField("player", p.Name).Debug("holdings revised")
		m.sendLogMessages(playable.SimpleLogMessage(p.Name, "{} revised their holdings"))
	}

	return nil
}

func (m *Match) refillHands() {
	for _, p := range m.players {
		n := p.refillHand(m.options.RefillSize)
		m.logger.WithFields(logrus.Fields{
			"player":   p.Name,
			"drawn":    n,
			"deckLeft": p.DeckSize(),
		}).Debug("refilled hand")
	}
}

func (m *Match) finish(winner int, winners []int) {
	wins, ties := tally(winners)
	m.result = &Result{
		Wins:  wins,
		Ties:  ties,
		Games: len(winners),
	}

	m.stage = StageFinished
	if winner == Tie {
		m.logger.WithField("games", len(winners)).Info("match tied")
		m.sendLogMessages(playable.SimpleLogMessage("", "The match is a tie"))
		return
	}

	m.result.Winner = m.players[winner]
	m.logger.WithFields(logrus.Fields{
		"games":  len(winners),
		"winner": m.players[winner].Name,
	}).Info("match won")
	m.sendLogMessages(playable.SimpleLogMessage(m.players[winner].Name, "{} won the match"))
}

func (m *Match) sendLogMessages(messages ...*playable.LogMessage) {
	m.messages = append(m.messages, messages...)
}

// Log returns the match log
func (m *Match) Log() *MatchLog {
	ml := &MatchLog{
		Players:    []string{m.players[0].Name, m.players[1].Name},
		Seed:       m.seed,
		DeckHashes: append([]string{}, m.deckHashes...),
		Games:      make([]*GameLog, len(m.games)),
	}

	for i, g := range m.games {
		ml.Games[i] = g.Log()
	}

	if r := m.result; r != nil {
		ml.Wins = []int{r.Wins[0], r.Wins[1]}
		ml.Ties = r.Ties
		if r.Winner != nil {
			ml.Winner = r.Winner.Name
		}
	}

	return ml
}
