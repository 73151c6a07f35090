package agent

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
)

type randomAgent struct {
	placement
}

// NewRandomAgent returns an agent playing uniformly among the legal plays.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{placement: newPlacement(seed)}
}

func (a randomAgent) FindPlay(board *game.Board) (game.Play, metrics.SearchMetric, error) {
	plays := legalPlays(board)
	if len(plays) == 0 {
		return game.Play{}, metrics.SearchMetric{}, searcher.ErrNoLegalPlays
	}
	return plays[a.rng.Intn(len(plays))], metrics.SearchMetric{}, nil
}

type firstChoiceAgent struct {
	placement
}

// NewFirstChoiceAgent returns an agent always playing the first legal play.
func NewFirstChoiceAgent(seed uint64) Agent {
	return firstChoiceAgent{placement: newPlacement(seed)}
}

func (a firstChoiceAgent) FindPlay(board *game.Board) (game.Play, metrics.SearchMetric, error) {
	plays := legalPlays(board)
	if len(plays) == 0 {
		return game.Play{}, metrics.SearchMetric{}, searcher.ErrNoLegalPlays
	}
	return plays[0], metrics.SearchMetric{}, nil
}

// legalPlays lists the plays of both pawns of the player to move.
func legalPlays(board *game.Board) []game.Play {
	var plays []game.Play
	for _, pawn := range board.PawnsOf(board.Player()) {
		plays = append(plays, board.LegalPlays(pawn.Number)...)
	}
	return plays
}
