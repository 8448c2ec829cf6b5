// Package analysis composes the scoreline model, the Monte Carlo simulator,
// and the value calculator into a full match analysis. Every stage passes
// immutable values forward; the analyzer holds configuration only, never
// per-call state.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/match-edge/internal/logger"
	"github.com/yourusername/match-edge/internal/metrics"
	"github.com/yourusername/match-edge/internal/models"
	"github.com/yourusername/match-edge/internal/poisson"
	"github.com/yourusername/match-edge/internal/simulation"
	"github.com/yourusername/match-edge/internal/value"
)

// DefaultTopScorelines is the number of ranked scorelines carried on a
// report.
const DefaultTopScorelines = 5

// Request describes one match analysis.
type Request struct {
	Parameters              models.MatchParameters
	Prices                  models.MarketPrices
	Source                  models.ProbabilitySource
	UseDependenceCorrection bool
	OverUnderThreshold      float64
	Samples                 int
	Seed                    int64
	Workers                 int
	TopScorelines           int
}

// Settings hold the staking knobs applied to every assessed market.
type Settings struct {
	KellyFractionCap    float64
	Bankroll            decimal.Decimal
	MinEdge             float64
	ConfidenceThreshold float64
}

// MatchAnalysis is the complete structured output for one match.
type MatchAnalysis struct {
	ID              uuid.UUID                    `json:"id"`
	Source          models.ProbabilitySource     `json:"source"`
	Parameters      models.MatchParameters       `json:"parameters"`
	Outcomes        models.OutcomeSummary        `json:"outcomes"`
	OverUnder       models.OverUnderSplit        `json:"over_under"`
	BTTS            float64                      `json:"btts"`
	TopScorelines   []models.ScorelineProbability `json:"top_scorelines"`
	Simulation      *models.SimulationResult     `json:"simulation,omitempty"`
	Markets         []models.MarketAssessment    `json:"markets"`
	Recommendations []Recommendation             `json:"recommendations"`
	GeneratedAt     time.Time                    `json:"generated_at"`
}

// Analyzer runs the analysis pipeline.
type Analyzer struct {
	settings Settings
	logger   *logrus.Logger
	audit    *logger.AnalysisLogger
}

// NewAnalyzer creates an analyzer with the supplied staking settings.
func NewAnalyzer(settings Settings, log *logrus.Logger) *Analyzer {
	if settings.KellyFractionCap <= 0 || settings.KellyFractionCap > 1 {
		settings.KellyFractionCap = 1.0
	}
	if settings.ConfidenceThreshold <= 0 {
		settings.ConfidenceThreshold = 0.6
	}
	a := &Analyzer{settings: settings, logger: log}
	if log != nil {
		a.audit = logger.NewAnalysisLogger(log)
	}
	return a
}

// Analyze runs the full pipeline: parameters -> distribution -> aggregate
// probabilities (exact or simulated, per the request's explicit source) ->
// market assessments and recommendations.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*MatchAnalysis, error) {
	_ = ctx
	start := time.Now()

	if err := req.Parameters.Validate(); err != nil {
		metrics.RecordAnalysis(string(req.Source), "invalid")
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	if req.Source != models.SourceExact && req.Source != models.SourceSimulated {
		metrics.RecordAnalysis(string(req.Source), "invalid")
		return nil, fmt.Errorf("analysis request: %w", models.ErrUnknownSource)
	}

	threshold := req.OverUnderThreshold
	if threshold == 0 {
		threshold = poisson.DefaultOverUnderThreshold
	}
	topN := req.TopScorelines
	if topN <= 0 {
		topN = DefaultTopScorelines
	}

	buildStart := time.Now()
	dist, err := poisson.FromParameters(req.Parameters, req.UseDependenceCorrection)
	if err != nil {
		metrics.RecordAnalysis(string(req.Source), "failure")
		return nil, err
	}
	metrics.ObserveDistributionBuild(time.Since(buildStart))

	result := &MatchAnalysis{
		ID:            uuid.New(),
		Source:        req.Source,
		Parameters:    req.Parameters,
		TopScorelines: poisson.TopScorelines(dist, topN),
		GeneratedAt:   time.Now().UTC(),
	}
	if a.audit != nil {
		a.audit.LogDistributionBuilt(result.ID.String(), req.Parameters.LambdaHome, req.Parameters.LambdaAway,
			req.Parameters.DependenceRho, req.Parameters.MaxGoals, req.UseDependenceCorrection)
	}

	switch req.Source {
	case models.SourceSimulated:
		simStart := time.Now()
		sim, err := simulation.Run(dist, simulation.Config{
			Samples:            req.Samples,
			Seed:               req.Seed,
			Workers:            req.Workers,
			OverUnderThreshold: threshold,
		})
		if err != nil {
			metrics.RecordAnalysis(string(req.Source), "failure")
			return nil, err
		}
		metrics.ObserveSimulation(time.Since(simStart), sim.Samples)
		if a.audit != nil {
			a.audit.LogSimulationRun(result.ID.String(), sim.Samples, req.Seed, req.Workers,
				sim.HomeWin, sim.Draw, sim.AwayWin)
		}

		result.Simulation = &sim
		result.Outcomes = models.OutcomeSummary{HomeWin: sim.HomeWin, Draw: sim.Draw, AwayWin: sim.AwayWin}
		result.OverUnder = models.OverUnderSplit{Threshold: threshold, Over: sim.OverThreshold, Under: 1 - sim.OverThreshold}
		result.BTTS = sim.BTTS
	default:
		result.Outcomes = poisson.Summarize(dist)
		result.OverUnder = poisson.OverUnder(dist, threshold)
		result.BTTS = poisson.BothTeamsToScore(dist)
	}

	result.Markets, err = a.assessMarkets(result, req.Prices)
	if err != nil {
		metrics.RecordAnalysis(string(req.Source), "failure")
		return nil, err
	}
	result.Recommendations = a.recommend(result)

	metrics.RecordAnalysis(string(req.Source), "success")
	if a.logger != nil {
		a.logger.WithFields(logrus.Fields{
			"analysis_id": result.ID,
			"source":      result.Source,
			"lambda_home": req.Parameters.LambdaHome,
			"lambda_away": req.Parameters.LambdaAway,
			"markets":     len(result.Markets),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Match analysis completed")
	}

	return result, nil
}

// assessMarkets evaluates every priced market against the model
// probabilities.
func (a *Analyzer) assessMarkets(analysis *MatchAnalysis, prices models.MarketPrices) ([]models.MarketAssessment, error) {
	type priced struct {
		market      models.Market
		probability float64
		price       *float64
	}

	candidates := []priced{
		{models.MarketHomeWin, analysis.Outcomes.HomeWin, prices.HomeWin},
		{models.MarketDraw, analysis.Outcomes.Draw, prices.Draw},
		{models.MarketAwayWin, analysis.Outcomes.AwayWin, prices.AwayWin},
		{models.MarketOver, analysis.OverUnder.Over, prices.Over},
		{models.MarketUnder, analysis.OverUnder.Under, prices.Under},
		{models.MarketBTTSYes, analysis.BTTS, prices.BTTSYes},
		{models.MarketBTTSNo, 1 - analysis.BTTS, prices.BTTSNo},
	}

	assessments := make([]models.MarketAssessment, 0, len(candidates))
	for _, c := range candidates {
		if c.price == nil {
			continue
		}
		assessment, err := value.Assess(c.market, c.probability, *c.price, a.settings.KellyFractionCap, a.settings.Bankroll)
		if err != nil {
			return nil, fmt.Errorf("market %s: %w", c.market, err)
		}
		if assessment.HasValue() {
			metrics.RecordValueSignal(string(c.market))
			if a.audit != nil {
				a.audit.LogValueSignal(analysis.ID.String(), string(c.market), c.probability, *c.price,
					assessment.ExpectedValue, assessment.KellyFraction)
			}
		}
		assessments = append(assessments, assessment)
	}
	return assessments, nil
}
