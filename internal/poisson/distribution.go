package poisson

import (
	"fmt"

	"github.com/yourusername/match-edge/internal/models"
)

// IndependentDistribution builds the scoreline distribution from two
// independent Poisson rates over the [0, maxGoals]^2 grid. The truncated grid
// captures slightly less than the full Poisson mass, so the result is
// renormalized during construction; omitting that step would bias every
// derived aggregate low.
func IndependentDistribution(lambdaHome, lambdaAway float64, maxGoals int) (models.ScorelineDistribution, error) {
	params := models.MatchParameters{
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		MaxGoals:   maxGoals,
	}
	if err := params.Validate(); err != nil {
		return models.ScorelineDistribution{}, fmt.Errorf("independent distribution: %w", err)
	}

	masses := make(map[models.Scoreline]float64, (maxGoals+1)*(maxGoals+1))
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			masses[models.Scoreline{Home: i, Away: j}] = PMF(lambdaHome, i) * PMF(lambdaAway, j)
		}
	}

	dist, err := models.NewScorelineDistribution(maxGoals, masses)
	if err != nil {
		return models.ScorelineDistribution{}, fmt.Errorf("independent distribution: %w", err)
	}
	return dist, nil
}

// DixonColesDistribution builds the scoreline distribution with the low-score
// dependence correction applied before renormalization. Each independent cell
// mass is scaled by tau, which only deviates from 1 where both counts are in
// {0,1}; this redistributes mass among low-scoring outcomes to model the
// negative correlation between the two sides' goal counts. Adversarial rho
// values can drive a corrected mass negative; those cells are clamped to zero
// so the normalized result stays a valid distribution.
func DixonColesDistribution(lambdaHome, lambdaAway, rho float64, maxGoals int) (models.ScorelineDistribution, error) {
	params := models.MatchParameters{
		LambdaHome: lambdaHome,
		LambdaAway: lambdaAway,
		MaxGoals:   maxGoals,
	}
	if err := params.Validate(); err != nil {
		return models.ScorelineDistribution{}, fmt.Errorf("dixon-coles distribution: %w", err)
	}

	masses := make(map[models.Scoreline]float64, (maxGoals+1)*(maxGoals+1))
	for i := 0; i <= maxGoals; i++ {
		for j := 0; j <= maxGoals; j++ {
			mass := PMF(lambdaHome, i) * PMF(lambdaAway, j) * tau(i, j, lambdaHome, lambdaAway, rho)
			if mass < 0 {
				mass = 0
			}
			masses[models.Scoreline{Home: i, Away: j}] = mass
		}
	}

	dist, err := models.NewScorelineDistribution(maxGoals, masses)
	if err != nil {
		return models.ScorelineDistribution{}, fmt.Errorf("dixon-coles distribution: %w", err)
	}
	return dist, nil
}

// FromParameters builds a distribution from validated match parameters,
// selecting the dependence-adjusted model when requested.
func FromParameters(params models.MatchParameters, useDependenceCorrection bool) (models.ScorelineDistribution, error) {
	if useDependenceCorrection {
		return DixonColesDistribution(params.LambdaHome, params.LambdaAway, params.DependenceRho, params.MaxGoals)
	}
	return IndependentDistribution(params.LambdaHome, params.LambdaAway, params.MaxGoals)
}

func tau(x, y int, lambdaX, lambdaY, rho float64) float64 {
	switch {
	case x == 0 && y == 0:
		return 1 - lambdaX*lambdaY*rho
	case x == 0 && y == 1:
		return 1 + lambdaX*rho
	case x == 1 && y == 0:
		return 1 + lambdaY*rho
	case x == 1 && y == 1:
		return 1 - rho
	default:
		return 1
	}
}
