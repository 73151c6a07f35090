package searcher

import (
	"fmt"
	"santorini/experiments/metrics"
	"santorini/game"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks a play for the side to move. It keeps no state between
// calls: every call builds its own caches, tree and metrics.
type Searcher struct {
	layers   int
	branches int
	weights  Weights
	budget   int
	backup   Backup
	collect  bool
	ranker   *Ranker
}

func WithLayers(layers int) Option {
	return func(s *Searcher) {
		s.layers = layers
	}
}

func WithBranches(branches int) Option {
	return func(s *Searcher) {
		s.branches = branches
	}
}

func WithWeights(weights Weights) Option {
	return func(s *Searcher) {
		if weights != nil {
			s.weights = weights
		}
	}
}

// WithNodeBudget bounds the number of states simulated per call. Once spent,
// remaining nodes are scored without further look-ahead.
func WithNodeBudget(nodes int) Option {
	return func(s *Searcher) {
		if nodes > 0 {
			s.budget = nodes
		}
	}
}

func WithBackup(backup Backup) Option {
	return func(s *Searcher) {
		s.backup = backup
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collect = true
	}
}

// NewSearcher validates the configuration, weights included, before any search.
func NewSearcher(options ...Option) (*Searcher, error) {
	s := &Searcher{ // Default values
		layers:   DefaultLayers,
		branches: DefaultBranches,
		weights:  DefaultWeights(),
		backup:   BackupMinimax,
	}
	for _, option := range options {
		option(s)
	}
	if err := checkDepth(s.layers, s.branches); err != nil {
		return nil, err
	}
	ranker, err := NewRanker(s.weights)
	if err != nil {
		return nil, err
	}
	s.ranker = ranker
	return s, nil
}

// ChoosePlay searches layers move pairs deep with branches candidates kept
// per ply and returns the chosen play for the side to move.
func (s *Searcher) ChoosePlay(state game.State, layers, branches int) (game.Play, error) {
	play, _, err := s.search(state, layers, branches)
	return play, err
}

// Search is ChoosePlay with the configured depth, also returning search metrics.
func (s *Searcher) Search(state game.State) (game.Play, metrics.SearchMetric, error) {
	return s.search(state, s.layers, s.branches)
}

func (s *Searcher) search(state game.State, layers, branches int) (game.Play, metrics.SearchMetric, error) {
	if err := checkDepth(layers, branches); err != nil {
		return game.Play{}, metrics.SearchMetric{}, err
	}

	collector := metrics.NewDummyCollector()
	if s.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(layers, branches)

	t := &tree{
		ranker:   s.ranker,
		player:   state.Player(),
		lastPly:  2*layers - 2,
		branches: branches,
		budget:   s.budget,
		backup:   s.backup,
		metrics:  collector,
	}
	best, err := t.root(state)
	metric := collector.Complete()
	if err != nil {
		return game.Play{}, metric, err
	}

	log.Debug().
		Int("player", t.player).
		Stringer("play", best.Play).
		Float64("score", best.Score).
		Int("nodes", t.nodes).
		Msg("chose play")

	return best.Play, metric, nil
}

func checkDepth(layers, branches int) error {
	if layers < 1 {
		return fmt.Errorf("%w: %d layers", ErrInvalidDepth, layers)
	}
	if branches < 1 {
		return fmt.Errorf("%w: %d branches", ErrInvalidDepth, branches)
	}
	return nil
}
