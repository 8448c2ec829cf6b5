package poisson

import "github.com/yourusername/match-edge/internal/models"

// DefaultOverUnderThreshold is the standard goals line.
const DefaultOverUnderThreshold = 2.5

// Summarize classifies every scoreline cell into the 1X2 outcomes.
func Summarize(dist models.ScorelineDistribution) models.OutcomeSummary {
	var summary models.OutcomeSummary
	maxGoals := dist.MaxGoals()
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			p := dist.Probability(i, j)
			switch {
			case i > j:
				summary.HomeWin += p
			case i == j:
				summary.Draw += p
			default:
				summary.AwayWin += p
			}
		}
	}
	return summary
}

// OverUnder splits the distribution at a goal-total threshold. Over and
// Under sum to 1 by construction.
func OverUnder(dist models.ScorelineDistribution, threshold float64) models.OverUnderSplit {
	split := models.OverUnderSplit{Threshold: threshold}
	maxGoals := dist.MaxGoals()
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			if float64(i+j) > threshold {
				split.Over += dist.Probability(i, j)
			} else {
				split.Under += dist.Probability(i, j)
			}
		}
	}
	return split
}

// BothTeamsToScore sums the cells where both sides register a goal.
func BothTeamsToScore(dist models.ScorelineDistribution) float64 {
	btts := 0.0
	maxGoals := dist.MaxGoals()
	for i := 1; i <= maxGoals; i++ {
		for j := 1; j <= maxGoals; j++ {
			btts += dist.Probability(i, j)
		}
	}
	return btts
}

// TopScorelines returns the n most likely scorelines in the distribution's
// deterministic order.
func TopScorelines(dist models.ScorelineDistribution, n int) []models.ScorelineProbability {
	ranked := dist.Ranked()
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
