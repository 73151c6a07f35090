package experiments

import (
	"os"
	"path/filepath"
	"santorini/experiments/metrics"
	"santorini/game"
	"testing"

	"github.com/stretchr/testify/require"
)

const matchYAML = `
name: heuristic-vs-random
games: 4
seed: 11
layout:
  heights:
    - [0, 0, 0, 0, 0]
    - [0, 1, 0, 0, 0]
    - [0, 0, 2, 0, 0]
    - [0, 0, 0, 0, 0]
    - [0, 0, 0, 0, 0]
  pawns:
    1: {row: 0, col: 0}
    2: {row: 4, col: 4}
    3: {row: 4, col: 0}
    4: {row: 0, col: 4}
agents:
  - id: 1
    kind: heuristic
    layers: 1
    branches: 3
    weights: [1, 1, 1, 1, 1, 1]
    backup: minimax
  - id: 2
    kind: random
`

func TestParseMatchConfig(t *testing.T) {
	t.Run("reading a complete match", func(t *testing.T) {
		config, err := ParseMatchConfig([]byte(matchYAML))

		require.NoError(t, err)
		require.Equal(t, "heuristic-vs-random", config.Name)
		require.Equal(t, 4, config.Games)
		require.Equal(t, uint64(11), config.Seed)
		require.Len(t, config.Agents, 2)
		require.Equal(t, metrics.KindHeuristic, config.Agents[0].Kind)
		require.Equal(t, []float64{1, 1, 1, 1, 1, 1}, config.Agents[0].Weights)
		require.NotNil(t, config.Layout)
		b, err := game.NewBoardFromLayout(*config.Layout)
		require.NoError(t, err)
		require.Equal(t, 2, b.Height(game.Cell{Row: 2, Col: 2}))
		require.Equal(t, game.Cell{Row: 4, Col: 4}, b.Pawn(2).Pos)
	})

	t.Run("defaulting name and game count", func(t *testing.T) {
		config, err := ParseMatchConfig([]byte("agents: [{id: 1, kind: random}, {id: 2, kind: first-choice}]"))

		require.NoError(t, err)
		require.Equal(t, "match", config.Name)
		require.Positive(t, config.Games)
		require.Nil(t, config.Layout)
	})

	t.Run("rejecting invalid matches", func(t *testing.T) {
		invalid := map[string]string{
			"one agent":      "agents: [{id: 1, kind: random}]",
			"shared ID":      "agents: [{id: 1, kind: random}, {id: 1, kind: random}]",
			"unknown kind":   "agents: [{id: 1, kind: oracle}, {id: 2, kind: random}]",
			"weight count":   "agents: [{id: 1, kind: heuristic, weights: [1, 2]}, {id: 2, kind: random}]",
			"unknown backup": "agents: [{id: 1, kind: heuristic, backup: expectimax}, {id: 2, kind: random}]",
			"remote no URL":  "agents: [{id: 1, kind: remote}, {id: 2, kind: random}]",
			"bad layout":     "layout: {player: 3}\nagents: [{id: 1, kind: random}, {id: 2, kind: random}]",
			"malformed YAML": "agents: [",
		}
		for name, data := range invalid {
			_, err := ParseMatchConfig([]byte(data))
			require.Error(t, err, name)
		}
	})
}

func TestRunMatch(t *testing.T) {
	t.Run("alternating the starting agent", func(t *testing.T) {
		config, err := ParseMatchConfig([]byte(matchYAML))
		require.NoError(t, err)

		result, err := RunMatch(config)

		require.NoError(t, err)
		require.Len(t, result.Games, 4)
		for i, g := range result.Games {
			require.Equal(t, i+1, g.ID)
			if i%2 == 0 {
				require.Equal(t, []int{1, 2}, []int{g.Agent1, g.Agent2})
			} else {
				require.Equal(t, []int{2, 1}, []int{g.Agent1, g.Agent2})
			}
		}
		require.Equal(t, 4, result.Wins[1]+result.Wins[2]+result.Draws)
		total := 0
		for _, g := range result.Games {
			total += g.TotalMoves
		}
		require.Len(t, result.Moves, total)
	})

	t.Run("replaying a match with its seed", func(t *testing.T) {
		config, err := ParseMatchConfig([]byte("games: 2\nseed: 5\nagents: [{id: 1, kind: random}, {id: 2, kind: random}]"))
		require.NoError(t, err)

		first, err := RunMatch(config)
		require.NoError(t, err)
		second, err := RunMatch(config)
		require.NoError(t, err)

		require.Equal(t, len(first.Moves), len(second.Moves))
		for i := range first.Moves {
			require.Equal(t, first.Moves[i].Play, second.Moves[i].Play)
			require.Equal(t, first.Moves[i].StateHash, second.Moves[i].StateHash)
		}
	})
}

func TestRunExperiment(t *testing.T) {
	config, err := ParseMatchConfig([]byte("name: quick\ngames: 2\nagents: [{id: 1, kind: first-choice}, {id: 2, kind: random}]"))
	require.NoError(t, err)
	root := t.TempDir()

	_, err = RunExperiment(config, root)

	require.NoError(t, err)
	runs, err := os.ReadDir(filepath.Join(root, "quick"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(root, "quick", runs[0].Name(), name))
	}
}

func TestRunDepthSweep(t *testing.T) {
	config, err := ParseMatchConfig([]byte("name: sweep\ngames: 2\nagents: [{id: 1, kind: heuristic}, {id: 2, kind: random}]"))
	require.NoError(t, err)

	results, err := RunDepthSweep(config, []int{1}, []int{2, 3}, t.TempDir())

	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 3, results[0].Config.ID, "Sweep IDs should follow the match IDs")
	require.Equal(t, 2, results[0].Config.Branches)
	require.Equal(t, 4, results[1].Config.ID)
	require.Equal(t, 3, results[1].Config.Branches)
	for _, r := range results {
		require.Len(t, r.Games, 2)
	}
}
