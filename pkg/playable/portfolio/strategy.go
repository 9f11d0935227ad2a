package portfolio

import "portfolio-sim/pkg/chip"

// Strategy makes every decision on behalf of a player
// The engine validates every answer; a strategy that breaks the contract aborts the match.
type Strategy interface {
	// ChooseDraftSplit splits a batch of six chips into three to keep and three to give away
	ChooseDraftSplit(p *Player, batch []*chip.Chip) (keep, give []*chip.Chip, err error)

	// ChooseMove returns the next move. Only chips in the player's hand may be referenced
	ChooseMove(p *Player, board *Board) (*Move, error)

	// ChooseMoverFollowup picks a non-empty source stack and an adjacent destination
	ChooseMoverFollowup(p *Player, board *Board) (src, dst int, err error)

	// ChooseDrawerFollowup picks a chip from hand (normally drawn) to play face down at a position
	ChooseDrawerFollowup(p *Player, board *Board, drawn *chip.Chip) (*chip.Chip, int, error)

	// ReviseHoldings is asked after a tied game; true swaps the holdings for fresh chips
	ReviseHoldings(p *Player) (bool, error)
}
