package searcher

import (
	"errors"
	"fmt"
	"math"
	"santorini/experiments/metrics"
	"santorini/game"
)

// tree expands the ranker across alternating plies. Even plies belong to the
// root player, odd plies to the opponent; ply 0 is the live state.
type tree struct {
	ranker   *Ranker
	player   int
	lastPly  int
	branches int
	budget   int // 0 means unbounded
	backup   Backup
	metrics  metrics.Collector
	nodes    int
}

// root ranks the live state and backs deeper values up into the decision.
func (t *tree) root(state game.State) (Scored, error) {
	frontier, err := t.rank(state, t.player, 0)
	if err != nil {
		return Scored{}, err
	}

	// Take an immediate win without looking further
	for _, c := range frontier {
		if c.Features[VictoryMove] > 0 {
			return c, nil
		}
	}

	if t.lastPly == 0 || t.backup == BackupRootOnly {
		return frontier[0], nil
	}

	best := 0
	bestValue := math.Inf(-1)
	for i, c := range frontier {
		value, err := t.opponentValue(t.simulate(state, c.Play), 1)
		if err != nil {
			return Scored{}, err
		}
		// Strictly greater keeps the higher ranked candidate on ties
		if value > bestValue {
			best, bestValue = i, value
		}
		if t.exhausted() {
			break
		}
	}
	return frontier[best], nil
}

// opponentValue is the worst value, for the root player, among the
// opponent's top ranked replies.
func (t *tree) opponentValue(state game.State, ply int) (float64, error) {
	if w := state.Winner(); w != game.NoPlayer {
		return t.terminal(w, ply), nil
	}
	opponent := game.Opponent(t.player)
	if state.Player() != opponent {
		return 0, fmt.Errorf("%w: player %d to move after player %d played", ErrContractViolation, state.Player(), t.player)
	}

	frontier, err := t.rank(state, opponent, ply)
	if errors.Is(err, ErrNoLegalPlays) {
		return t.terminal(t.player, ply), nil
	}
	if err != nil {
		return 0, err
	}

	worst := math.Inf(1)
	for _, reply := range frontier {
		value, err := t.ownValue(t.simulate(state, reply.Play), ply+1)
		if err != nil {
			return 0, err
		}
		worst = min(worst, value)
		if t.exhausted() {
			break
		}
	}
	return worst, nil
}

// ownValue is the best value among the root player's top ranked counter
// replies. On the last ply it is the best composite score.
func (t *tree) ownValue(state game.State, ply int) (float64, error) {
	if w := state.Winner(); w != game.NoPlayer {
		return t.terminal(w, ply), nil
	}
	if state.Player() != t.player {
		return 0, fmt.Errorf("%w: player %d to move after player %d played", ErrContractViolation, state.Player(), game.Opponent(t.player))
	}

	frontier, err := t.rank(state, t.player, ply)
	if errors.Is(err, ErrNoLegalPlays) {
		return t.terminal(game.Opponent(t.player), ply), nil
	}
	if err != nil {
		return 0, err
	}

	for _, c := range frontier {
		if c.Features[VictoryMove] > 0 {
			return t.terminal(t.player, ply+1), nil
		}
	}

	if ply >= t.lastPly || t.exhausted() {
		return frontier[0].Score, nil
	}

	best := math.Inf(-1)
	for _, c := range frontier {
		value, err := t.opponentValue(t.simulate(state, c.Play), ply+1)
		if err != nil {
			return 0, err
		}
		best = max(best, value)
		if t.exhausted() {
			break
		}
	}
	return best, nil
}

func (t *tree) rank(state game.State, player, ply int) (Frontier, error) {
	t.metrics.ReachDepth(ply)
	e, err := enumerate(state, player, t.metrics)
	if err != nil {
		return nil, err
	}
	return t.ranker.Rank(e, t.branches)
}

func (t *tree) simulate(state game.State, play game.Play) game.State {
	t.nodes++
	t.metrics.AddNode()
	return state.Simulate(play)
}

func (t *tree) exhausted() bool {
	if t.budget > 0 && t.nodes >= t.budget {
		t.metrics.SetExhausted()
		return true
	}
	return false
}

// terminal scores a decided game for the root player; sooner wins and later
// losses score better.
func (t *tree) terminal(winner, ply int) float64 {
	if winner == t.player {
		return WinScore - float64(ply)
	}
	return -WinScore + float64(ply)
}
