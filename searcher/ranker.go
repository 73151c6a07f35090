package searcher

import (
	"cmp"
	"fmt"
	"santorini/game"

	"golang.org/x/exp/slices"
)

// Scored is a candidate play with its composite score.
type Scored struct {
	Index    int // Position in the Enumeration
	Play     game.Play
	Features Features
	Score    float64
}

// Frontier is the top ranked candidates of one ply, by descending score.
type Frontier []Scored

type Ranker struct {
	weights Weights
	known   map[Feature]bool
}

// NewRanker validates the weights against the feature set before any scoring.
func NewRanker(weights Weights) (*Ranker, error) {
	if len(weights) != len(FeatureNames) {
		return nil, fmt.Errorf("%w: %d weights for %d features", ErrWeightCount, len(weights), len(FeatureNames))
	}
	known := make(map[Feature]bool, len(FeatureNames))
	for _, name := range FeatureNames {
		known[name] = true
	}
	return &Ranker{weights: slices.Clone(weights), known: known}, nil
}

// Rank returns the top branches candidates by descending composite score.
// Equal scores keep their enumeration order.
func (r *Ranker) Rank(e Enumeration, branches int) (Frontier, error) {
	if branches < 1 {
		return nil, fmt.Errorf("%w: %d branches", ErrInvalidDepth, branches)
	}
	if e.Len() == 0 {
		return nil, ErrNoLegalPlays
	}
	if len(e.Features) != len(e.Plays) {
		return nil, fmt.Errorf("%w: %d feature vectors for %d plays", ErrContractViolation, len(e.Features), len(e.Plays))
	}
	if err := r.checkFeatures(e.Features); err != nil {
		return nil, err
	}

	scored := make([]Scored, e.Len())
	for i, features := range e.Features {
		scored[i] = Scored{
			Index:    i,
			Play:     e.Plays[i],
			Features: features,
			Score:    r.score(features),
		}
	}

	slices.SortStableFunc(scored, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return Frontier(scored[:min(branches, len(scored))]), nil
}

// score sums in feature order so equal vectors always produce equal scores.
func (r *Ranker) score(features Features) float64 {
	score := 0.0
	for i, name := range FeatureNames {
		score += r.weights[i] * features[name]
	}
	return score
}

// checkFeatures requires every vector to hold exactly the known feature names.
func (r *Ranker) checkFeatures(all []Features) error {
	reference := all[0]
	if len(reference) != len(FeatureNames) {
		return fmt.Errorf("%w: candidate 0 has %d features, expected %d", ErrFeatureMismatch, len(reference), len(FeatureNames))
	}
	for name := range reference {
		if !r.known[name] {
			return fmt.Errorf("%w: unknown feature %q", ErrFeatureMismatch, name)
		}
	}
	for i, features := range all[1:] {
		if len(features) != len(reference) {
			return fmt.Errorf("%w: candidate %d has %d features, candidate 0 has %d", ErrFeatureMismatch, i+1, len(features), len(reference))
		}
		for name := range features {
			if _, ok := reference[name]; !ok {
				return fmt.Errorf("%w: candidate %d has feature %q missing from candidate 0", ErrFeatureMismatch, i+1, name)
			}
		}
	}
	return nil
}
