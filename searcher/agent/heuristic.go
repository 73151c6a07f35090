package agent

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/searcher"
)

type heuristicAgent struct {
	placement
	searcher *searcher.Searcher
}

// NewHeuristicAgent returns an agent playing the searcher's choice.
func NewHeuristicAgent(s *searcher.Searcher, seed uint64) Agent {
	return heuristicAgent{placement: newPlacement(seed), searcher: s}
}

func (a heuristicAgent) FindPlay(board *game.Board) (game.Play, metrics.SearchMetric, error) {
	return a.searcher.Search(board)
}
