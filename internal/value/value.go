// Package value converts model probabilities and offered market prices into
// actionable value signals: expected value, fair price, and Kelly staking.
package value

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/yourusername/match-edge/internal/models"
)

// ExpectedValue returns the expected proportional return of a unit stake:
// probability*price - 1. Positive means the price overpays the model
// estimate. Inputs are validated by the caller.
func ExpectedValue(probability, price float64) float64 {
	return probability*price - 1
}

// FairPrice returns the break-even decimal price 1/probability. A zero
// probability yields +Inf: no finite break-even price exists.
func FairPrice(probability float64) float64 {
	if probability <= 0 {
		return math.Inf(1)
	}
	return 1 / probability
}

// KellyFraction returns the bankroll fraction that maximizes long-run log
// growth for a single binary bet, scaled by fractionCap. Non-positive edges
// return zero rather than an error: never recommend a stake on them.
func KellyFraction(probability, price, fractionCap float64) float64 {
	b := price - 1
	if b <= 0 || probability <= 0 {
		return 0
	}
	q := 1 - probability
	if b*probability <= q {
		return 0
	}
	kelly := (b*probability - q) / b
	return kelly * fractionCap
}

// Stake converts a Kelly fraction into a money amount for a bankroll,
// rounded to two decimal places.
func Stake(fraction float64, bankroll decimal.Decimal) decimal.Decimal {
	if fraction <= 0 || bankroll.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return bankroll.Mul(decimal.NewFromFloat(fraction)).Round(2)
}

// Assess produces the full market assessment for one probability/price pair.
func Assess(market models.Market, probability, price, fractionCap float64, bankroll decimal.Decimal) (models.MarketAssessment, error) {
	if probability < 0 || probability > 1 {
		return models.MarketAssessment{}, models.NewValidationError("probability_out_of_range",
			"probability must be in [0,1]")
	}
	if price <= 1 {
		return models.MarketAssessment{}, models.NewValidationError("price_not_above_one",
			"decimal price must be greater than 1")
	}

	kelly := KellyFraction(probability, price, fractionCap)
	return models.MarketAssessment{
		Market:           market,
		Probability:      probability,
		Price:            price,
		ExpectedValue:    ExpectedValue(probability, price),
		FairPrice:        FairPrice(probability),
		KellyFraction:    kelly,
		RecommendedStake: Stake(kelly, bankroll),
	}, nil
}
