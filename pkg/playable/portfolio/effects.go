package portfolio

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"portfolio-sim/pkg/chip"
	"portfolio-sim/pkg/playable"
)

// resolveEffect runs the chained effect of a chip played face up
// It completes before the move that triggered it is considered done. An invalid follow-up is
// returned as an IllegalMoveError; a strategy that fails to decide is returned as is.
func (g *Game) resolveEffect(player *Player, move *Move) error {
	switch move.Chip.Kind {
	case chip.Mover:
		return g.resolveMover(player, move)
	case chip.Drawer:
		return g.resolveDrawer(player, move)
	}

	return nil
}

// resolveMover moves the top chip of one stack onto an adjacent stack
func (g *Game) resolveMover(player *Player, move *Move) error {
	src, dst, err := player.strategy.ChooseMoverFollowup(player, g.board)
	if err != nil {
		return fmt.Errorf("%s could not choose a mover follow-up: %w", player.Name, err)
	}

	if err := g.board.moveTop(src, dst); err != nil {
		return IllegalMoveError{Player: player.Name, Move: move, Err: fmt.Errorf("mover follow-up: %w", err)}
	}

	g.log.SetFollowup(fmt.Sprintf("moved top of %d to %d", src, dst))
	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"from":   src,
		"to":     dst,
	}).Debug("mover follow-up")
	g.sendLogMessages(playable.SimpleLogMessage(player.Name, "{} moved the top chip of %d to %d", src, dst))
	return nil
}

// resolveDrawer draws a chip and makes the player play a chip face down
// Nothing happens if the deck is empty.
func (g *Game) resolveDrawer(player *Player, move *Move) error {
	if player.DeckSize() == 0 {
		g.log.SetFollowup("deck empty, no draw")
		g.logger.WithField("player", player.Name).Debug("drawer follow-up skipped")
		return nil
	}

	drawn, err := player.deck.Draw()
	if err != nil {
		return err
	}

	player.hand.AddChip(drawn)

	c, pos, err := player.strategy.ChooseDrawerFollowup(player, g.board, drawn)
	if err != nil {
		return fmt.Errorf("%s could not choose a drawer follow-up: %w", player.Name, err)
	}

	illegal := func(err error) error {
		return IllegalMoveError{Player: player.Name, Move: move, Err: fmt.Errorf("drawer follow-up: %w", err)}
	}

	if c == nil {
		return illegal(ErrMissingChip)
	}

	if !ValidPosition(pos) {
		return illegal(fmt.Errorf("%w: %d", ErrPositionOutOfRange, pos))
	}

	if err := g.play(player, c, pos, true); err != nil {
		return illegal(err)
	}

	g.log.SetFollowup(fmt.Sprintf("drew a chip, played %s face down at %d", c.Kind, pos))
	g.logger.WithFields(logrus.Fields{
		"player":   player.Name,
		"drawn":    drawn.Kind,
		"played":   c.Kind,
		"position": pos,
	}).Debug("drawer follow-up")
	g.sendLogMessages(playable.SimpleLogMessage(player.Name, "{} drew a chip and played a chip face down at %d", pos))
	return nil
}
