package searcher

import (
	"santorini/game"
)

// Feature names a scalar computed for one candidate play.
type Feature string

const (
	SumHeight           Feature = "sum_height"
	VictoryMove         Feature = "victory_move"
	MaxDistRivals       Feature = "max_dist_rivals"
	MaxDistHeightRivals Feature = "max_dist_height_rivals"
	AvoidRivalVictory   Feature = "avoid_rival_victory"
	AvoidGivingVictory  Feature = "avoid_giving_victory"
)

// FeatureNames is the fixed feature set, in weight order.
var FeatureNames = []Feature{
	SumHeight,
	VictoryMove,
	MaxDistRivals,
	MaxDistHeightRivals,
	AvoidRivalVictory,
	AvoidGivingVictory,
}

const (
	VictoryBonus        = 1000
	RivalVictoryBonus   = 100
	GivingVictoryMalus  = -100
	rivalsReach         = 4
	heightedRivalsReach = 10
)

// Features maps feature names to values for one candidate play.
type Features map[Feature]float64

// Weights holds one weight per feature, ordered as FeatureNames.
type Weights []float64

// DefaultWeights weighs every feature 1.
func DefaultWeights() Weights {
	w := make(Weights, len(FeatureNames))
	for i := range w {
		w[i] = 1
	}
	return w
}

// evaluateMove computes the features that depend on the destination only.
// Opponents, the ally and the destination are not touched by the build, so
// the pre-play state with the pawn standing on dest answers every lookup.
func evaluateMove(state game.State, pawn game.Pawn, dest game.Cell) Features {
	destHeight := state.Height(dest)

	sumHeight := destHeight * destHeight
	for _, ally := range state.PawnsOf(pawn.Player) {
		if ally.Number != pawn.Number && ally.Placed {
			h := state.Height(ally.Pos)
			sumHeight += h * h
		}
	}

	victory := 0
	if destHeight == game.WinHeight {
		victory = VictoryBonus
	}

	minDist := rivalsReach
	minHeighted := heightedRivalsReach
	for _, rival := range state.PawnsOf(game.Opponent(pawn.Player)) {
		if !rival.Placed {
			continue
		}
		d := game.Distance(dest, rival.Pos)
		minDist = min(minDist, d)
		minHeighted = min(minHeighted, d*state.Height(rival.Pos))
	}

	return Features{
		SumHeight:           float64(sumHeight),
		VictoryMove:         float64(victory),
		MaxDistRivals:       float64(max(0, rivalsReach-minDist)),
		MaxDistHeightRivals: float64(heightedRivalsReach - minHeighted),
	}
}

// evaluateBuild computes the features that depend on the build cell only,
// against the opponents' current positions.
func evaluateBuild(state game.State, player int, build game.Cell) Features {
	after := state.Height(build) + 1

	threatened := false
	for _, rival := range state.PawnsOf(game.Opponent(player)) {
		if rival.Placed && state.IsAdjacent(rival.Pos, build) && state.Height(rival.Pos) == game.WinHeight-1 {
			threatened = true
			break
		}
	}

	rivalVictory, givingVictory := 0, 0
	if threatened && after == game.Dome {
		rivalVictory = RivalVictoryBonus
	}
	if threatened && after == game.WinHeight {
		givingVictory = GivingVictoryMalus
	}

	return Features{
		AvoidRivalVictory:  float64(rivalVictory),
		AvoidGivingVictory: float64(givingVictory),
	}
}

// merge returns the key union of two feature vectors.
func merge(move, build Features) Features {
	f := make(Features, len(move)+len(build))
	for k, v := range move {
		f[k] = v
	}
	for k, v := range build {
		f[k] = v
	}
	return f
}
