package searcher

import (
	"santorini/game"
)

// stuckTurn forgets to pass the turn when simulating.
type stuckTurn struct {
	*game.Board
}

func (s stuckTurn) Simulate(play game.Play) game.State {
	next := s.Board.Simulate(play).(*game.Board)
	next.Current = s.Board.Current
	return stuckTurn{next}
}

// farPlays lists a play whose destination is not adjacent to the pawn.
type farPlays struct {
	*game.Board
}

func (s farPlays) LegalPlays(pawn int) []game.Play {
	pos := s.Board.Pawn(pawn).Pos
	far := game.Cell{Row: (pos.Row + 3) % game.Size, Col: pos.Col}
	return []game.Play{{Pawn: pawn, Move: far, Build: pos}}
}

// cornerBoard has one pawn in each corner and player 1 to move.
func cornerBoard() *game.Board {
	return game.MustLayout(game.Layout{
		Pawns: map[int]game.Cell{
			1: {Row: 0, Col: 0},
			2: {Row: 4, Col: 4},
			3: {Row: 4, Col: 0},
			4: {Row: 0, Col: 4},
		},
		Player: 1,
	})
}

// fullFeatures returns a vector holding every feature, valued in FeatureNames order.
func fullFeatures(values ...float64) Features {
	f := make(Features, len(FeatureNames))
	for i, name := range FeatureNames {
		if i < len(values) {
			f[name] = values[i]
		} else {
			f[name] = 0
		}
	}
	return f
}
