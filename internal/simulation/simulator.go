// Package simulation estimates aggregate match outcome probabilities by
// sampling scorelines from a distribution, as a stochastic alternative to
// exact summation.
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/yourusername/match-edge/internal/models"
	"github.com/yourusername/match-edge/internal/poisson"
)

// Config configures a Monte Carlo run. Seed feeds an explicit random source;
// the process-global generator is never used, so identical configs produce
// identical results. Workers > 1 splits the draws across goroutines with
// independently seeded sub-streams, changing latency but not the estimator.
type Config struct {
	Samples            int
	Seed               int64
	Workers            int
	OverUnderThreshold float64
}

// Validate checks the sampling preconditions.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return models.NewValidationError("samples_not_positive", "sample count must be greater than zero")
	}
	if c.Workers < 0 {
		return models.NewValidationError("workers_negative", "worker count cannot be negative")
	}
	return nil
}

// tally accumulates outcome counts for a batch of sampled scorelines.
// Additions commute, so per-worker tallies can be summed in any order.
type tally struct {
	homeWin int
	draw    int
	awayWin int
	over    int
	btts    int
}

func (t *tally) add(other tally) {
	t.homeWin += other.homeWin
	t.draw += other.draw
	t.awayWin += other.awayWin
	t.over += other.over
	t.btts += other.btts
}

// sampler partitions [0,1) by cumulative probability in the distribution's
// deterministic ranking so a uniform draw locates a scoreline by binary
// search.
type sampler struct {
	scorelines []models.Scoreline
	cumulative []float64
}

func newSampler(dist models.ScorelineDistribution) sampler {
	ranked := dist.Ranked()
	s := sampler{
		scorelines: make([]models.Scoreline, len(ranked)),
		cumulative: make([]float64, len(ranked)),
	}
	running := 0.0
	for i, cell := range ranked {
		running += cell.Probability
		s.scorelines[i] = cell.Scoreline
		s.cumulative[i] = running
	}
	return s
}

func (s sampler) draw(rng *rand.Rand) models.Scoreline {
	u := rng.Float64()
	idx := sort.SearchFloat64s(s.cumulative, u)
	if idx >= len(s.scorelines) {
		idx = len(s.scorelines) - 1
	}
	return s.scorelines[idx]
}

// Run draws cfg.Samples scorelines from the distribution and tallies them
// into the aggregate outcome proportions.
func Run(dist models.ScorelineDistribution, cfg Config) (models.SimulationResult, error) {
	if err := cfg.Validate(); err != nil {
		return models.SimulationResult{}, fmt.Errorf("simulation: %w", err)
	}
	threshold := cfg.OverUnderThreshold
	if threshold == 0 {
		threshold = poisson.DefaultOverUnderThreshold
	}

	s := newSampler(dist)

	var total tally
	if cfg.Workers > 1 {
		total = runParallel(s, cfg, threshold)
	} else {
		rng := rand.New(rand.NewSource(cfg.Seed))
		total = runBatch(s, rng, cfg.Samples, threshold)
	}

	n := float64(cfg.Samples)
	return models.SimulationResult{
		HomeWin:       float64(total.homeWin) / n,
		Draw:          float64(total.draw) / n,
		AwayWin:       float64(total.awayWin) / n,
		OverThreshold: float64(total.over) / n,
		BTTS:          float64(total.btts) / n,
		Samples:       cfg.Samples,
	}, nil
}

// Simulate draws nSamples scorelines using a caller-supplied random source.
func Simulate(dist models.ScorelineDistribution, nSamples int, rng *rand.Rand, threshold float64) (models.SimulationResult, error) {
	if nSamples <= 0 {
		return models.SimulationResult{}, fmt.Errorf("simulation: %w",
			models.NewValidationError("samples_not_positive", "sample count must be greater than zero"))
	}
	if rng == nil {
		return models.SimulationResult{}, fmt.Errorf("simulation: %w",
			models.NewValidationError("rng_required", "an explicit random source is required"))
	}

	total := runBatch(newSampler(dist), rng, nSamples, threshold)
	n := float64(nSamples)
	return models.SimulationResult{
		HomeWin:       float64(total.homeWin) / n,
		Draw:          float64(total.draw) / n,
		AwayWin:       float64(total.awayWin) / n,
		OverThreshold: float64(total.over) / n,
		BTTS:          float64(total.btts) / n,
		Samples:       nSamples,
	}, nil
}

func runBatch(s sampler, rng *rand.Rand, samples int, threshold float64) tally {
	var t tally
	for i := 0; i < samples; i++ {
		score := s.draw(rng)
		switch {
		case score.Home > score.Away:
			t.homeWin++
		case score.Home == score.Away:
			t.draw++
		default:
			t.awayWin++
		}
		if float64(score.TotalGoals()) > threshold {
			t.over++
		}
		if score.Home > 0 && score.Away > 0 {
			t.btts++
		}
	}
	return t
}

func runParallel(s sampler, cfg Config, threshold float64) tally {
	workers := cfg.Workers
	if workers > cfg.Samples {
		workers = cfg.Samples
	}

	share := cfg.Samples / workers
	remainder := cfg.Samples % workers

	var mu sync.Mutex
	var wg sync.WaitGroup
	var total tally

	for w := 0; w < workers; w++ {
		batch := share
		if w < remainder {
			batch++
		}
		// Offset seeds give each worker an independent stream.
		rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))

		wg.Add(1)
		go func(rng *rand.Rand, batch int) {
			defer wg.Done()
			partial := runBatch(s, rng, batch, threshold)
			mu.Lock()
			total.add(partial)
			mu.Unlock()
		}(rng, batch)
	}

	wg.Wait()
	return total
}
