package poisson

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/match-edge/internal/models"
)

func TestIndependentDistributionNormalized(t *testing.T) {
	dist, err := IndependentDistribution(1.8, 1.2, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(dist.Total()-1.0) > 1e-9 {
		t.Fatalf("expected total 1.0, got %v", dist.Total())
	}
}

func TestIndependentDistributionRejectsInvalidParameters(t *testing.T) {
	if _, err := IndependentDistribution(0, 1.2, 5); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("zero home lambda: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := IndependentDistribution(1.8, -1, 5); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("negative away lambda: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := IndependentDistribution(1.8, 1.2, -1); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("negative max goals: expected ErrInvalidParameter, got %v", err)
	}
}

func TestIndependentDistributionSymmetry(t *testing.T) {
	a, err := IndependentDistribution(1.7, 0.9, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	b, err := IndependentDistribution(0.9, 1.7, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i <= 5; i++ {
		for j := 0; j <= 5; j++ {
			if math.Abs(a.Probability(i, j)-b.Probability(j, i)) > 1e-12 {
				t.Fatalf("transpose mismatch at (%d,%d): %v vs %v",
					i, j, a.Probability(i, j), b.Probability(j, i))
			}
		}
	}
}

func TestDixonColesZeroRhoMatchesIndependent(t *testing.T) {
	adjusted, err := DixonColesDistribution(1.8, 1.2, 0, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	independent, err := IndependentDistribution(1.8, 1.2, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i := 0; i <= 5; i++ {
		for j := 0; j <= 5; j++ {
			if math.Abs(adjusted.Probability(i, j)-independent.Probability(i, j)) > 1e-12 {
				t.Fatalf("cell (%d,%d) differs at rho=0: %v vs %v",
					i, j, adjusted.Probability(i, j), independent.Probability(i, j))
			}
		}
	}
}

func TestDixonColesNormalized(t *testing.T) {
	dist, err := DixonColesDistribution(1.8, 1.2, -0.1, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(dist.Total()-1.0) > 1e-9 {
		t.Fatalf("expected total 1.0, got %v", dist.Total())
	}
}

func TestDixonColesShiftsLowScoreMass(t *testing.T) {
	// Negative rho inflates tau(0,0) and tau(1,1), moving mass toward the
	// diagonal low-score cells.
	adjusted, err := DixonColesDistribution(1.4, 1.1, -0.1, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	independent, err := IndependentDistribution(1.4, 1.1, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if adjusted.Probability(0, 0) <= independent.Probability(0, 0) {
		t.Errorf("expected 0-0 mass to grow under negative rho: %v vs %v",
			adjusted.Probability(0, 0), independent.Probability(0, 0))
	}
	if adjusted.Probability(1, 1) <= independent.Probability(1, 1) {
		t.Errorf("expected 1-1 mass to grow under negative rho: %v vs %v",
			adjusted.Probability(1, 1), independent.Probability(1, 1))
	}
}

func TestDixonColesClampsNegativeCells(t *testing.T) {
	// With lambda=2 on both sides and rho=0.9, tau(0,0) = 1 - 2*2*0.9 < 0.
	// The cell must clamp to zero, keeping the distribution valid.
	dist, err := DixonColesDistribution(2, 2, 0.9, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := dist.Probability(0, 0); got != 0 {
		t.Errorf("expected clamped 0-0 cell, got %v", got)
	}
	if math.Abs(dist.Total()-1.0) > 1e-9 {
		t.Errorf("expected total 1.0 after clamping, got %v", dist.Total())
	}
}

func TestConcreteExampleModalScoreline(t *testing.T) {
	dist, err := IndependentDistribution(1.8, 1.2, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	top := dist.Ranked()[0].Scoreline
	if top != (models.Scoreline{Home: 1, Away: 1}) && top != (models.Scoreline{Home: 1, Away: 0}) {
		t.Errorf("expected modal scoreline 1-1 or 1-0, got %v", top)
	}

	summary := Summarize(dist)
	if summary.HomeWin <= summary.AwayWin {
		t.Errorf("expected home win more likely than away win: %v vs %v",
			summary.HomeWin, summary.AwayWin)
	}
}

func TestFromParametersSelectsModel(t *testing.T) {
	params := models.MatchParameters{LambdaHome: 1.8, LambdaAway: 1.2, DependenceRho: -0.1, MaxGoals: 5}

	plain, err := FromParameters(params, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	corrected, err := FromParameters(params, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(plain.Probability(0, 0)-corrected.Probability(0, 0)) < 1e-12 {
		t.Errorf("expected dependence correction to change the 0-0 cell")
	}
}
