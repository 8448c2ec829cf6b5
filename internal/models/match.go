package models

// Default model parameters. Rho is the conventional low-score correlation for
// football; the goal grid is capped at 5 per side and renormalized.
const (
	DefaultDependenceRho = -0.1
	DefaultMaxGoals      = 5
)

// MatchParameters holds the expected-goals rates for a single match.
// Immutable once constructed; build with NewMatchParameters.
type MatchParameters struct {
	LambdaHome    float64 `json:"lambda_home" validate:"required,gt=0"`
	LambdaAway    float64 `json:"lambda_away" validate:"required,gt=0"`
	DependenceRho float64 `json:"dependence_rho"`
	MaxGoals      int     `json:"max_goals" validate:"gte=0"`
}

// NewMatchParameters builds match parameters with defaults for rho and the
// goal grid bound. Lambdas are Poisson rates and must be strictly positive.
func NewMatchParameters(lambdaHome, lambdaAway float64) (MatchParameters, error) {
	p := MatchParameters{
		LambdaHome:    lambdaHome,
		LambdaAway:    lambdaAway,
		DependenceRho: DefaultDependenceRho,
		MaxGoals:      DefaultMaxGoals,
	}
	return p, p.Validate()
}

// WithRho returns a copy with the dependence parameter replaced.
func (p MatchParameters) WithRho(rho float64) MatchParameters {
	p.DependenceRho = rho
	return p
}

// WithMaxGoals returns a copy with the goal grid bound replaced.
func (p MatchParameters) WithMaxGoals(maxGoals int) MatchParameters {
	p.MaxGoals = maxGoals
	return p
}

// Validate checks the statistical preconditions.
func (p MatchParameters) Validate() error {
	if p.LambdaHome <= 0 {
		return NewValidationError("lambda_home_not_positive", "home expected goals must be greater than zero")
	}
	if p.LambdaAway <= 0 {
		return NewValidationError("lambda_away_not_positive", "away expected goals must be greater than zero")
	}
	if p.MaxGoals < 0 {
		return NewValidationError("max_goals_negative", "max goals cannot be negative")
	}
	return nil
}
