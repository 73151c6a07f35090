package experiments

import (
	"fmt"
	"os"
	"santorini/engine"
	"santorini/experiments/metrics"
	"santorini/game"
	"santorini/meta"
	"santorini/searcher"
	"santorini/searcher/agent"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// MatchConfig describes games between two agents. The agents swap sides
// every game so each starts half of them.
type MatchConfig struct {
	Name   string                `yaml:"name"`
	Games  int                   `yaml:"games"`
	Seed   uint64                `yaml:"seed"`
	Layout *game.Layout          `yaml:"layout,omitempty"` // Start position, placement phase if absent
	Agents []metrics.AgentConfig `yaml:"agents"`
}

// MatchResult holds every record of a match and the wins per agent ID.
type MatchResult struct {
	Wins  map[int]int
	Draws int // Games stopped by the turn limit
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
}

// LoadMatchConfig reads a YAML match configuration.
func LoadMatchConfig(path string) (MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MatchConfig{}, fmt.Errorf("failed to read match config: %w", err)
	}
	return ParseMatchConfig(data)
}

func ParseMatchConfig(data []byte) (MatchConfig, error) {
	var config MatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return MatchConfig{}, fmt.Errorf("failed to parse match config: %w", err)
	}
	if config.Name == "" {
		config.Name = "match"
	}
	if config.Games == 0 {
		config.Games = meta.NUM_GAMES
	}
	if err := config.validate(); err != nil {
		return MatchConfig{}, err
	}
	return config, nil
}

func (c MatchConfig) validate() error {
	if c.Games < 0 {
		return fmt.Errorf("match %s: negative game count %d", c.Name, c.Games)
	}
	if len(c.Agents) != game.NumPlayers {
		return fmt.Errorf("match %s: need %d agents, got %d", c.Name, game.NumPlayers, len(c.Agents))
	}
	if c.Agents[0].ID == c.Agents[1].ID {
		return fmt.Errorf("match %s: agents share ID %d", c.Name, c.Agents[0].ID)
	}
	if c.Layout != nil {
		if _, err := game.NewBoardFromLayout(*c.Layout); err != nil {
			return fmt.Errorf("match %s: %w", c.Name, err)
		}
	}
	for _, config := range c.Agents {
		// Building the agent checks its search options and weights
		if _, err := NewAgent(config, 0); err != nil {
			return fmt.Errorf("match %s: %w", c.Name, err)
		}
	}
	return nil
}

// NewAgent builds the agent an AgentConfig describes.
func NewAgent(config metrics.AgentConfig, seed uint64) (agent.Agent, error) {
	switch config.Kind {
	case metrics.KindHeuristic:
		s, err := createSearcher(config)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		return agent.NewHeuristicAgent(s, seed), nil
	case metrics.KindRandom:
		return agent.NewRandomAgent(seed), nil
	case metrics.KindFirstChoice:
		return agent.NewFirstChoiceAgent(seed), nil
	case metrics.KindRemote:
		if config.URL == "" {
			return nil, fmt.Errorf("agent %d: remote agent without URL", config.ID)
		}
		return engine.NewRemoteAgent(config.URL), nil
	}
	return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
}

func createSearcher(config metrics.AgentConfig) (*searcher.Searcher, error) {
	options := []searcher.Option{}

	if config.Layers > 0 {
		options = append(options, searcher.WithLayers(config.Layers))
	}
	if config.Branches > 0 {
		options = append(options, searcher.WithBranches(config.Branches))
	}
	if config.Weights != nil {
		options = append(options, searcher.WithWeights(config.Weights))
	}
	if config.Budget > 0 {
		options = append(options, searcher.WithNodeBudget(config.Budget))
	}
	backup, err := searcher.ParseBackup(config.Backup)
	if err != nil {
		return nil, err
	}
	options = append(options, searcher.WithBackup(backup))

	options = append(options, searcher.WithMetrics())
	return searcher.NewSearcher(options...)
}

// RunMatch plays every game of the match and collects the records.
func RunMatch(config MatchConfig) (MatchResult, error) {
	result := MatchResult{Wins: make(map[int]int)}

	log.Info().Msgf("starting match %s between %s and %s...", config.Name, config.Agents[0], config.Agents[1])

	for i := 0; i < config.Games; i++ {
		// Swap sides every game so each agent starts half of them
		sides := []metrics.AgentConfig{config.Agents[0], config.Agents[1]}
		if i%2 == 1 {
			sides[0], sides[1] = sides[1], sides[0]
		}

		winner, gameMetric, moveMetrics, err := runGame(config, sides, i)
		if err != nil {
			return result, fmt.Errorf("match %s game %d: %w", config.Name, i+1, err)
		}

		id := len(result.Games) + 1
		result.Games = append(result.Games, metrics.GameRecord{
			ID:         id,
			Agent1:     sides[0].ID,
			Agent2:     sides[1].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			result.Moves = append(result.Moves, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		if winner == game.NoPlayer {
			result.Draws++
			log.Info().Msgf("completed game %d of %d without a winner", i+1, config.Games)
			continue
		}
		result.Wins[sides[winner-1].ID]++
		log.Info().Msgf("completed game %d of %d with winner: agent %d", i+1, config.Games, sides[winner-1].ID)
	}

	log.Info().Msgf("completed match %s: wins=%v draws=%d", config.Name, result.Wins, result.Draws)
	return result, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config MatchConfig, sides []metrics.AgentConfig, index int) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, len(sides))
	for i, side := range sides {
		// Distinct, reproducible seeds per game and side
		a, err := NewAgent(side, config.Seed+uint64(index*game.NumPlayers+i))
		if err != nil {
			return game.NoPlayer, metrics.GameMetric{}, nil, err
		}
		agents[i] = a
	}

	board := game.NewBoard()
	if config.Layout != nil {
		var err error
		board, err = game.NewBoardFromLayout(*config.Layout)
		if err != nil {
			return game.NoPlayer, metrics.GameMetric{}, nil, err
		}
	}

	return engine.NewLocalEngine(agents, board).Run()
}

// RunExperiment runs a match and stores its agent configs and records under root.
func RunExperiment(config MatchConfig, root string) (MatchResult, error) {
	result, err := RunMatch(config)
	if err != nil {
		return result, err
	}
	if err := store(config.Name, root, config.Agents, result); err != nil {
		return result, err
	}
	return result, nil
}

func store(name, root string, configs []metrics.AgentConfig, result MatchResult) error {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(result.Moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}
