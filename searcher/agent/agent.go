package agent

import (
	"errors"
	"santorini/experiments/metrics"
	"santorini/game"

	"golang.org/x/exp/rand"
)

var ErrNoPlacement = errors.New("no free cell to place a pawn")

type Agent interface {
	// PlacePawn returns the cell for the pawn during the placement phase
	PlacePawn(board *game.Board, pawn game.Pawn) (game.Cell, error)
	// FindPlay returns a play for the player to move and performance metrics (if collected)
	FindPlay(board *game.Board) (game.Play, metrics.SearchMetric, error)
}

// placement places a player's first pawn at random and the second next to it.
type placement struct {
	rng *rand.Rand
}

func newPlacement(seed uint64) placement {
	return placement{rng: rand.New(rand.NewSource(seed))}
}

func (p placement) PlacePawn(board *game.Board, pawn game.Pawn) (game.Cell, error) {
	free := board.PlacementCells()
	if len(free) == 0 {
		return game.Cell{}, ErrNoPlacement
	}

	// A second pawn joins its first pawn when it can.
	if first := board.PawnsOf(pawn.Player)[0]; pawn.Order == 2 && first.Placed {
		var near []game.Cell
		for _, cell := range free {
			if game.Adjacent(cell, first.Pos) {
				near = append(near, cell)
			}
		}
		if len(near) > 0 {
			return near[p.rng.Intn(len(near))], nil
		}
	}

	return free[p.rng.Intn(len(free))], nil
}
