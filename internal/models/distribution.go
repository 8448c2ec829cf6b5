package models

import (
	"fmt"
	"sort"
)

// Scoreline is an ordered pair of goal counts.
type Scoreline struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s Scoreline) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

// TotalGoals returns the combined goal count.
func (s Scoreline) TotalGoals() int {
	return s.Home + s.Away
}

// ScorelineProbability pairs a scoreline with its probability, used for
// ranked views of a distribution.
type ScorelineProbability struct {
	Scoreline   Scoreline `json:"scoreline"`
	Probability float64   `json:"probability"`
}

// ScorelineDistribution is a normalized probability distribution over the
// (maxGoals+1)^2 scoreline grid. The zero value is not usable; build with
// NewScorelineDistribution.
type ScorelineDistribution struct {
	maxGoals int
	probs    map[Scoreline]float64
}

// NewScorelineDistribution normalizes the supplied raw masses over the full
// grid and returns the resulting distribution. Masses must be non-negative
// and at least one cell must carry positive mass; degenerate input is
// rejected here rather than surfacing as NaN downstream.
func NewScorelineDistribution(maxGoals int, masses map[Scoreline]float64) (ScorelineDistribution, error) {
	if maxGoals < 0 {
		return ScorelineDistribution{}, NewValidationError("max_goals_negative", "max goals cannot be negative")
	}

	total := 0.0
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			mass := masses[Scoreline{Home: i, Away: j}]
			if mass < 0 {
				return ScorelineDistribution{}, NewValidationError("negative_mass",
					fmt.Sprintf("scoreline %d-%d has negative probability mass", i, j))
			}
			total += mass
		}
	}
	if total <= 0 {
		return ScorelineDistribution{}, ErrDegenerateDistribution
	}

	probs := make(map[Scoreline]float64, (maxGoals+1)*(maxGoals+1))
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			key := Scoreline{Home: i, Away: j}
			probs[key] = masses[key] / total
		}
	}

	return ScorelineDistribution{maxGoals: maxGoals, probs: probs}, nil
}

// MaxGoals returns the per-side goal bound of the grid.
func (d ScorelineDistribution) MaxGoals() int {
	return d.maxGoals
}

// Probability returns the probability of an exact scoreline. Scorelines
// outside the grid carry zero probability.
func (d ScorelineDistribution) Probability(home, away int) float64 {
	return d.probs[Scoreline{Home: home, Away: away}]
}

// Total sums the full grid; within floating-point tolerance of 1.
func (d ScorelineDistribution) Total() float64 {
	total := 0.0
	for _, p := range d.probs {
		total += p
	}
	return total
}

// Ranked returns every cell ordered by probability descending, ties broken
// by lower combined goals then lower home goals. This is the deterministic
// order required for reproducible most-likely-scoreline reporting and for
// the simulator's cumulative partition.
func (d ScorelineDistribution) Ranked() []ScorelineProbability {
	ranked := make([]ScorelineProbability, 0, len(d.probs))
	for i := 0; i <= d.maxGoals; i++ {
		for j := 0; j <= d.maxGoals; j++ {
			key := Scoreline{Home: i, Away: j}
			ranked = append(ranked, ScorelineProbability{Scoreline: key, Probability: d.probs[key]})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Probability != b.Probability {
			return a.Probability > b.Probability
		}
		if a.Scoreline.TotalGoals() != b.Scoreline.TotalGoals() {
			return a.Scoreline.TotalGoals() < b.Scoreline.TotalGoals()
		}
		return a.Scoreline.Home < b.Scoreline.Home
	})
	return ranked
}
