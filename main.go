package main

import (
	"flag"
	"fmt"
	"os"
	"santorini/experiments"
	"santorini/experiments/metrics"
	"santorini/logger"
	"santorini/meta"
	"santorini/searcher"
	"santorini/searcher/agent"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML match configuration, heuristic against random if empty")
	out := flag.String("out", meta.RESULTS_DIR, "Directory for match records")
	sweepLayers := flag.String("sweep-layers", "", "Comma separated layers to sweep, e.g. 1,2,3")
	sweepBranches := flag.String("sweep-branches", "", "Comma separated branches to sweep, e.g. 3,5,8")
	serve := flag.Bool("serve", false, "Serve a heuristic agent over HTTP instead of running a match")
	port := flag.String("port", meta.AGENT_PORT, "Port of the agent server")
	layers := flag.Int("layers", searcher.DefaultLayers, "Look-ahead move pairs of the served agent")
	branches := flag.Int("branches", searcher.DefaultBranches, "Candidates kept per ply by the served agent")
	flag.Parse()

	logger.Init()

	if err := run(*configPath, *out, *sweepLayers, *sweepBranches, *serve, *port, *layers, *branches); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
}

func run(configPath, out, sweepLayers, sweepBranches string, serve bool, port string, layers, branches int) error {
	if serve {
		s, err := searcher.NewSearcher(searcher.WithLayers(layers), searcher.WithBranches(branches), searcher.WithMetrics())
		if err != nil {
			return err
		}
		return agent.StartAgentServer(port, agent.NewHeuristicAgent(s, 1))
	}

	config, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if sweepLayers != "" || sweepBranches != "" {
		ls, err := parseInts(sweepLayers, searcher.DefaultLayers)
		if err != nil {
			return fmt.Errorf("invalid sweep layers: %w", err)
		}
		bs, err := parseInts(sweepBranches, searcher.DefaultBranches)
		if err != nil {
			return fmt.Errorf("invalid sweep branches: %w", err)
		}
		_, err = experiments.RunDepthSweep(config, ls, bs, out)
		return err
	}

	_, err = experiments.RunExperiment(config, out)
	return err
}

func loadConfig(path string) (experiments.MatchConfig, error) {
	if path != "" {
		return experiments.LoadMatchConfig(path)
	}
	return experiments.MatchConfig{
		Name:  "heuristic-vs-random",
		Games: meta.NUM_GAMES,
		Agents: []metrics.AgentConfig{
			{ID: 1, Kind: metrics.KindHeuristic},
			{ID: 2, Kind: metrics.KindRandom},
		},
	}, nil
}

// parseInts reads a comma separated list, fallback alone if the list is empty.
func parseInts(list string, fallback int) ([]int, error) {
	if list == "" {
		return []int{fallback}, nil
	}
	var values []int
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
