package searcher

import (
	"fmt"
	"santorini/experiments/metrics"
	"santorini/game"
)

// Enumeration holds every candidate play of one side in one state. A
// candidate's index is its position in both slices.
type Enumeration struct {
	Plays    []game.Play
	Features []Features
}

func (e Enumeration) Len() int {
	return len(e.Plays)
}

// enumerate lists the legal plays of every pawn of the player and scores them.
// Destinations and build cells shared between plays of the same pawn are
// evaluated once; the caches live for one pawn of one call only, since the
// same cell means something else in another state.
func enumerate(state game.State, player int, collector metrics.Collector) (Enumeration, error) {
	var e Enumeration

	for _, pawn := range state.PawnsOf(player) {
		if pawn.Player != player {
			return Enumeration{}, fmt.Errorf("%w: pawn %d of player %d listed for player %d", ErrContractViolation, pawn.Number, pawn.Player, player)
		}
		if !pawn.Placed {
			continue
		}

		moveCache := make(map[game.Cell]Features)
		buildCache := make(map[game.Cell]Features)

		for _, play := range state.LegalPlays(pawn.Number) {
			if err := checkPlay(state, pawn, play); err != nil {
				return Enumeration{}, err
			}

			moveFeatures, ok := moveCache[play.Move]
			if ok {
				collector.AddMemoHit()
			} else {
				moveFeatures = evaluateMove(state, pawn, play.Move)
				moveCache[play.Move] = moveFeatures
			}

			buildFeatures, ok := buildCache[play.Build]
			if ok {
				collector.AddMemoHit()
			} else {
				buildFeatures = evaluateBuild(state, player, play.Build)
				buildCache[play.Build] = buildFeatures
			}

			e.Plays = append(e.Plays, play)
			e.Features = append(e.Features, merge(moveFeatures, buildFeatures))
		}
	}

	collector.AddCandidates(e.Len())
	return e, nil
}

// checkPlay rejects plays that cannot come from a rules-abiding state.
func checkPlay(state game.State, pawn game.Pawn, play game.Play) error {
	switch {
	case play.Pawn != pawn.Number:
		return fmt.Errorf("%w: play %s listed for pawn %d", ErrContractViolation, play, pawn.Number)
	case !play.Move.InBoard() || !play.Build.InBoard():
		return fmt.Errorf("%w: play %s leaves the board", ErrContractViolation, play)
	case !state.IsAdjacent(pawn.Pos, play.Move):
		return fmt.Errorf("%w: play %s moves pawn from %s to a non-adjacent cell", ErrContractViolation, play, pawn.Pos)
	case !state.IsAdjacent(play.Move, play.Build):
		return fmt.Errorf("%w: play %s builds on a non-adjacent cell", ErrContractViolation, play)
	}
	return nil
}
