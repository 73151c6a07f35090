package searcher

import (
	"santorini/experiments/metrics"
	"santorini/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// rivalThreatLayout lets player 2 win by climbing (2,2) -> (2,3) unless player 1
// domes (2,3) now. Climbing to (0,4) looks best to a height-only heuristic.
func rivalThreatLayout() game.Layout {
	return game.Layout{
		Heights: [][]int{
			{0, 0, 0, 0, 2},
			{0, 0, 0, 0, 1},
			{0, 0, 2, 3, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		},
		Pawns: map[int]game.Cell{
			1: {Row: 1, Col: 4},
			2: {Row: 2, Col: 2},
			3: {Row: 4, Col: 4},
			4: {Row: 4, Col: 0},
		},
		Player: 1,
	}
}

var heightOnly = Weights{1, 1, 0, 0, 0, 0}

func TestNewSearcher(t *testing.T) {
	_, err := NewSearcher(WithLayers(0))
	require.ErrorIs(t, err, ErrInvalidDepth)

	_, err = NewSearcher(WithBranches(0))
	require.ErrorIs(t, err, ErrInvalidDepth)

	_, err = NewSearcher(WithWeights(Weights{1}))
	require.ErrorIs(t, err, ErrWeightCount)

	s, err := NewSearcher()
	require.NoError(t, err)
	require.Equal(t, DefaultLayers, s.layers)
	require.Equal(t, DefaultBranches, s.branches)
	require.Equal(t, BackupMinimax, s.backup)
}

func TestChoosePlay(t *testing.T) {
	s, err := NewSearcher()
	require.NoError(t, err)

	t.Run("choosing a legal play", func(t *testing.T) {
		b := cornerBoard()
		for layers := 1; layers <= 3; layers++ {
			play, err := s.ChoosePlay(b, layers, 3)

			require.NoError(t, err)
			require.Contains(t, b.LegalPlays(play.Pawn), play, "Play at %d layers should be legal", layers)
			_, err = b.Play(play)
			require.NoError(t, err)
		}
	})

	t.Run("single layer returns the top ranked candidate", func(t *testing.T) {
		b := game.MustLayout(threatLayout())
		e, err := enumerate(b, 1, metrics.NewDummyCollector())
		require.NoError(t, err)
		frontier, err := s.ranker.Rank(e, 4)
		require.NoError(t, err)

		play, err := s.ChoosePlay(b, 1, 4)

		require.NoError(t, err)
		require.Equal(t, frontier[0].Play, play)
	})

	t.Run("taking an immediate win", func(t *testing.T) {
		l := cornerBoard().Layout()
		l.Heights = [][]int{
			{2, 3, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		}
		b := game.MustLayout(l)

		play, err := s.ChoosePlay(b, 2, 3)

		require.NoError(t, err)
		require.Equal(t, game.Cell{Row: 0, Col: 1}, play.Move)
		next, err := b.Play(play)
		require.NoError(t, err)
		require.Equal(t, 1, next.Winner())
	})

	t.Run("reporting a player without plays", func(t *testing.T) {
		l := game.Layout{
			Heights: [][]int{
				{0, game.Dome, 0, 0, 0},
				{game.Dome, game.Dome, 0, 0, 0},
				{0, 0, 0, 0, 0},
				{0, 0, 0, game.Dome, game.Dome},
				{0, 0, 0, game.Dome, 0},
			},
			Pawns: map[int]game.Cell{
				1: {Row: 0, Col: 0},
				2: {Row: 2, Col: 2},
				3: {Row: 4, Col: 4},
				4: {Row: 2, Col: 0},
			},
			Player: 1,
		}

		_, err := s.ChoosePlay(game.MustLayout(l), 2, 3)

		require.ErrorIs(t, err, ErrNoLegalPlays)
	})

	t.Run("rejecting invalid depth", func(t *testing.T) {
		_, err := s.ChoosePlay(cornerBoard(), 0, 3)
		require.ErrorIs(t, err, ErrInvalidDepth)

		_, err = s.ChoosePlay(cornerBoard(), 2, 0)
		require.ErrorIs(t, err, ErrInvalidDepth)
	})

	t.Run("choosing the same play twice", func(t *testing.T) {
		b := game.MustLayout(threatLayout())

		first, err := s.ChoosePlay(b, 2, 4)
		require.NoError(t, err)
		second, err := s.ChoosePlay(b, 2, 4)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("leaving the state untouched", func(t *testing.T) {
		b := game.MustLayout(threatLayout())
		before := b.Hash()

		_, err := s.ChoosePlay(b, 3, 3)

		require.NoError(t, err)
		require.Equal(t, before, b.Hash())
	})
}

func TestLookahead(t *testing.T) {
	t.Run("root-only backup plays the greedy candidate", func(t *testing.T) {
		s, err := NewSearcher(WithWeights(heightOnly), WithBackup(BackupRootOnly))
		require.NoError(t, err)

		play, err := s.ChoosePlay(game.MustLayout(rivalThreatLayout()), 2, 100)

		require.NoError(t, err)
		require.Equal(t, game.Cell{Row: 0, Col: 4}, play.Move, "Climbing scores best")
	})

	t.Run("minimax backup stops the rival's win", func(t *testing.T) {
		s, err := NewSearcher(WithWeights(heightOnly))
		require.NoError(t, err)
		b := game.MustLayout(rivalThreatLayout())

		play, err := s.ChoosePlay(b, 2, 100)

		require.NoError(t, err)
		require.Equal(t, game.Cell{Row: 2, Col: 3}, play.Build, "Only a dome on (2,3) stops the rival")
		next, err := b.Play(play)
		require.NoError(t, err)
		require.Equal(t, game.Dome, next.Height(game.Cell{Row: 2, Col: 3}))
	})

	t.Run("rejecting a state that does not pass the turn", func(t *testing.T) {
		s, err := NewSearcher()
		require.NoError(t, err)

		_, err = s.ChoosePlay(stuckTurn{cornerBoard()}, 2, 3)

		require.ErrorIs(t, err, ErrContractViolation)
	})

	t.Run("spending the node budget", func(t *testing.T) {
		unbounded, err := NewSearcher(WithLayers(2), WithBranches(3), WithMetrics())
		require.NoError(t, err)
		bounded, err := NewSearcher(WithLayers(2), WithBranches(3), WithMetrics(), WithNodeBudget(4))
		require.NoError(t, err)
		b := cornerBoard()

		_, full, err := unbounded.Search(b)
		require.NoError(t, err)
		play, partial, err := bounded.Search(b)
		require.NoError(t, err)

		require.Equal(t, 12, full.Nodes, "3 own candidates times 3 replies plus the 3 candidates")
		require.False(t, full.Exhausted)
		require.Equal(t, 2, full.Depth)
		require.Equal(t, 4, partial.Nodes)
		require.True(t, partial.Exhausted)
		require.Contains(t, b.LegalPlays(play.Pawn), play)
	})
}
