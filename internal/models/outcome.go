package models

import (
	"fmt"
	"math"
)

// ProbabilitySource selects which component supplies aggregate outcome
// probabilities: exact summation over the distribution or Monte Carlo
// estimation. The choice is always explicit, never a presence-based fallback.
type ProbabilitySource string

const (
	SourceExact     ProbabilitySource = "exact"
	SourceSimulated ProbabilitySource = "simulated"
)

// ParseProbabilitySource validates and converts a source name.
func ParseProbabilitySource(s string) (ProbabilitySource, error) {
	switch ProbabilitySource(s) {
	case SourceExact:
		return SourceExact, nil
	case SourceSimulated:
		return SourceSimulated, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// OutcomeSummary holds the 1X2 probabilities derived from a scoreline
// distribution. The three fields sum to 1 within floating-point tolerance.
type OutcomeSummary struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
}

// Total returns the probability mass covered by the three outcomes.
func (o OutcomeSummary) Total() float64 {
	return o.HomeWin + o.Draw + o.AwayWin
}

// OverUnderSplit holds the goal-total market probabilities for a threshold.
// Over and Under sum to 1.
type OverUnderSplit struct {
	Threshold float64 `json:"threshold"`
	Over      float64 `json:"over"`
	Under     float64 `json:"under"`
}

// SimulationResult carries Monte Carlo proportion estimates for the aggregate
// outcomes. Samples is the draw count; the standard error of any proportion p
// is sqrt(p*(1-p)/Samples).
type SimulationResult struct {
	HomeWin       float64 `json:"home_win"`
	Draw          float64 `json:"draw"`
	AwayWin       float64 `json:"away_win"`
	OverThreshold float64 `json:"over_threshold"`
	BTTS          float64 `json:"btts"`
	Samples       int     `json:"samples"`
}

// StandardError returns the binomial standard error for an estimated
// proportion at this sample size.
func (r SimulationResult) StandardError(p float64) float64 {
	if r.Samples <= 0 {
		return 0
	}
	return math.Sqrt(p * (1 - p) / float64(r.Samples))
}
