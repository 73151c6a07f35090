package metrics

import (
	"fmt"
	"strings"
)

// Agent kinds
const (
	KindHeuristic   = "heuristic"
	KindRandom      = "random"
	KindFirstChoice = "first-choice"
	KindRemote      = "remote"
)

// AgentConfig describes one agent of a match up. Search fields only apply to
// heuristic agents, zero values select the searcher defaults.
type AgentConfig struct {
	ID       int       `yaml:"id"`
	Kind     string    `yaml:"kind"`
	Layers   int       `yaml:"layers,omitempty"`
	Branches int       `yaml:"branches,omitempty"`
	Weights  []float64 `yaml:"weights,omitempty"`
	Budget   int       `yaml:"budget,omitempty"` // Max states simulated per play
	Backup   string    `yaml:"backup,omitempty"`
	URL      string    `yaml:"url,omitempty"` // Agent server of a remote agent
}

func (c AgentConfig) String() string {
	switch c.Kind {
	case KindHeuristic:
		return fmt.Sprintf("%d:%s(layers=%d branches=%d budget=%d)", c.ID, c.Kind, c.Layers, c.Branches, c.Budget)
	case KindRemote:
		return fmt.Sprintf("%d:%s(%s)", c.ID, c.Kind, c.URL)
	default:
		return fmt.Sprintf("%d:%s", c.ID, c.Kind)
	}
}

func formatWeights(weights []float64) string {
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = fmt.Sprint(w)
	}
	return strings.Join(parts, " ")
}
