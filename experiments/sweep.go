package experiments

import (
	"fmt"
	"santorini/experiments/metrics"

	"github.com/rs/zerolog/log"
)

// SweepResult holds the result of one searcher configuration against the baseline.
type SweepResult struct {
	Config metrics.AgentConfig
	MatchResult
}

// RunDepthSweep matches heuristic agents of every (layers, branches) pair
// against the baseline agent of the config, stores all records under root in
// one experiment folder and returns the per-configuration results.
func RunDepthSweep(config MatchConfig, layers, branches []int, root string) ([]SweepResult, error) {
	baseline := config.Agents[1]
	nextID := max(config.Agents[0].ID, baseline.ID) + 1

	// Each sweep config keeps the first agent's weights, budget and backup
	var configs []metrics.AgentConfig
	for _, l := range layers {
		for _, b := range branches {
			c := config.Agents[0]
			c.ID, c.Kind, c.Layers, c.Branches = nextID, metrics.KindHeuristic, l, b
			configs = append(configs, c)
			nextID++
		}
	}

	log.Info().Msgf("starting %s sweep over %d configs...", config.Name, len(configs))

	var results []SweepResult
	var all MatchResult
	for ci, c := range configs {
		match := config
		match.Name = fmt.Sprintf("%s-%d", config.Name, c.ID)
		match.Agents = []metrics.AgentConfig{c, baseline}
		if err := match.validate(); err != nil {
			return results, err
		}

		log.Info().Msgf("starting config %d of %d: %s", ci+1, len(configs), c)
		result, err := RunMatch(match)
		if err != nil {
			return results, err
		}
		results = append(results, SweepResult{Config: c, MatchResult: result})

		// Renumber games so records of every config share one file
		offset := len(all.Games)
		for _, g := range result.Games {
			g.ID += offset
			all.Games = append(all.Games, g)
		}
		for _, m := range result.Moves {
			m.Game += offset
			all.Moves = append(all.Moves, m)
		}
	}

	log.Info().Msgf("completed %s sweep", config.Name)

	if err := store(config.Name, root, append(configs, baseline), all); err != nil {
		return results, err
	}
	return results, nil
}
