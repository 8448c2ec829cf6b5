package simulation

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/yourusername/match-edge/internal/models"
	"github.com/yourusername/match-edge/internal/poisson"
)

func buildDistribution(t *testing.T) models.ScorelineDistribution {
	t.Helper()
	dist, err := poisson.IndependentDistribution(1.8, 1.2, 5)
	if err != nil {
		t.Fatalf("failed to build distribution: %v", err)
	}
	return dist
}

func TestRunDeterministicForFixedSeed(t *testing.T) {
	dist := buildDistribution(t)
	cfg := Config{Samples: 10000, Seed: 42}

	first, err := Run(dist, cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Run(dist, cfg)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Fatalf("expected bit-identical results for identical seeds: %+v vs %+v", first, second)
	}
}

func TestRunProportionsConsistent(t *testing.T) {
	dist := buildDistribution(t)
	result, err := Run(dist, Config{Samples: 50000, Seed: 7})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	total := result.HomeWin + result.Draw + result.AwayWin
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("expected outcome proportions to sum to 1, got %v", total)
	}
	if result.Samples != 50000 {
		t.Errorf("expected sample count carried on result, got %d", result.Samples)
	}
	if result.BTTS < 0 || result.BTTS > 1 || result.OverThreshold < 0 || result.OverThreshold > 1 {
		t.Errorf("proportion out of range: %+v", result)
	}
}

func TestRunConvergesTowardExact(t *testing.T) {
	dist := buildDistribution(t)
	exact := poisson.Summarize(dist)

	// Average absolute error across seeds; one draw is too noisy to compare.
	avgError := func(samples int) float64 {
		total := 0.0
		seeds := []int64{1, 2, 3, 4, 5, 6, 7, 8}
		for _, seed := range seeds {
			result, err := Run(dist, Config{Samples: samples, Seed: seed})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			total += math.Abs(result.HomeWin - exact.HomeWin)
		}
		return total / float64(len(seeds))
	}

	small := avgError(1000)
	large := avgError(1000000)
	if large >= small {
		t.Fatalf("expected error to shrink with sample count: %v at 1e3 vs %v at 1e6", small, large)
	}
}

func TestRunParallelMatchesExpectation(t *testing.T) {
	dist := buildDistribution(t)
	exact := poisson.Summarize(dist)

	result, err := Run(dist, Config{Samples: 200000, Seed: 11, Workers: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Samples != 200000 {
		t.Fatalf("expected all samples tallied, got %d", result.Samples)
	}
	// Well within a few standard errors at this sample size.
	if math.Abs(result.HomeWin-exact.HomeWin) > 0.01 {
		t.Errorf("parallel estimate too far from exact: %v vs %v", result.HomeWin, exact.HomeWin)
	}

	repeat, err := Run(dist, Config{Samples: 200000, Seed: 11, Workers: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result != repeat {
		t.Errorf("expected parallel runs with identical seeds to agree: %+v vs %+v", result, repeat)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	dist := buildDistribution(t)
	if _, err := Run(dist, Config{Samples: 0, Seed: 1}); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("zero samples: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Run(dist, Config{Samples: -5, Seed: 1}); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("negative samples: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Run(dist, Config{Samples: 10, Workers: -1}); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("negative workers: expected ErrInvalidParameter, got %v", err)
	}
}

func TestSimulateWithCallerSuppliedSource(t *testing.T) {
	dist := buildDistribution(t)

	first, err := Simulate(dist, 10000, rand.New(rand.NewSource(99)), 2.5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Simulate(dist, 10000, rand.New(rand.NewSource(99)), 2.5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if first != second {
		t.Fatalf("expected identical rng streams to agree")
	}

	if _, err := Simulate(dist, 10000, nil, 2.5); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("nil rng: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := Simulate(dist, 0, rand.New(rand.NewSource(1)), 2.5); !errors.Is(err, models.ErrInvalidParameter) {
		t.Errorf("zero samples: expected ErrInvalidParameter, got %v", err)
	}
}

func TestOverUnderThresholdDefaulted(t *testing.T) {
	dist := buildDistribution(t)
	exactSplit := poisson.OverUnder(dist, poisson.DefaultOverUnderThreshold)

	result, err := Run(dist, Config{Samples: 200000, Seed: 3})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if math.Abs(result.OverThreshold-exactSplit.Over) > 0.01 {
		t.Errorf("expected default 2.5 threshold: %v vs %v", result.OverThreshold, exactSplit.Over)
	}
}
