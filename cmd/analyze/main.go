// Package main provides the command line interface for one-shot match
// analysis.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/match-edge/internal/analysis"
	"github.com/yourusername/match-edge/internal/config"
	"github.com/yourusername/match-edge/internal/logger"
	"github.com/yourusername/match-edge/internal/models"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config

	lambdaHome float64
	lambdaAway float64
	rho        float64
	maxGoals   int
	dixonColes bool
	source     string
	samples    int
	seed       int64
	workers    int
	threshold  float64
	topN       int
	jsonOutput bool

	priceHome    float64
	priceDraw    float64
	priceAway    float64
	priceOver    float64
	priceUnder   float64
	priceBTTSYes float64
	priceBTTSNo  float64
)

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")

	rootCmd.Flags().Float64Var(&lambdaHome, "lambda-home", 0, "Expected goals for the home side (required)")
	rootCmd.Flags().Float64Var(&lambdaAway, "lambda-away", 0, "Expected goals for the away side (required)")
	rootCmd.Flags().Float64Var(&rho, "rho", math.NaN(), "Dependence parameter for the low-score correction")
	rootCmd.Flags().IntVar(&maxGoals, "max-goals", -1, "Per-side goal grid bound")
	rootCmd.Flags().BoolVar(&dixonColes, "dixon-coles", true, "Apply the low-score dependence correction")
	rootCmd.Flags().StringVar(&source, "source", "exact", "Probability source: exact or simulated")
	rootCmd.Flags().IntVar(&samples, "samples", 0, "Monte Carlo sample count")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Monte Carlo random seed")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Monte Carlo worker goroutines")
	rootCmd.Flags().Float64Var(&threshold, "over-under", 0, "Goals line for the over/under split")
	rootCmd.Flags().IntVar(&topN, "top", analysis.DefaultTopScorelines, "Number of ranked scorelines to report")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the full analysis as JSON")

	rootCmd.Flags().Float64Var(&priceHome, "price-home", 0, "Offered decimal odds for home win")
	rootCmd.Flags().Float64Var(&priceDraw, "price-draw", 0, "Offered decimal odds for draw")
	rootCmd.Flags().Float64Var(&priceAway, "price-away", 0, "Offered decimal odds for away win")
	rootCmd.Flags().Float64Var(&priceOver, "price-over", 0, "Offered decimal odds for over the goals line")
	rootCmd.Flags().Float64Var(&priceUnder, "price-under", 0, "Offered decimal odds for under the goals line")
	rootCmd.Flags().Float64Var(&priceBTTSYes, "price-btts-yes", 0, "Offered decimal odds for both teams to score")
	rootCmd.Flags().Float64Var(&priceBTTSNo, "price-btts-no", 0, "Offered decimal odds against both teams scoring")

	_ = rootCmd.MarkFlagRequired("lambda-home")
	_ = rootCmd.MarkFlagRequired("lambda-away")
}

var rootCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a football match from expected-goals rates and market prices",
	Long: `Builds a scoreline probability distribution from the two sides' expected
goals, derives outcome probabilities exactly or by Monte Carlo simulation,
and assesses every priced market for betting value.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalysis(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runAnalysis(ctx context.Context) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	analyzer := analysis.NewAnalyzer(analysis.Settings{
		KellyFractionCap:    cfg.Value.KellyFractionCap,
		Bankroll:            decimal.NewFromFloat(cfg.Value.Bankroll),
		MinEdge:             cfg.Value.MinEdge,
		ConfidenceThreshold: cfg.Value.ConfidenceThreshold,
	}, appLogger)

	result, err := analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	fmt.Fprint(os.Stdout, consoleReport(result))
	return nil
}

func buildRequest() (analysis.Request, error) {
	parsedSource, err := models.ParseProbabilitySource(source)
	if err != nil {
		return analysis.Request{}, err
	}

	params := models.MatchParameters{
		LambdaHome:    lambdaHome,
		LambdaAway:    lambdaAway,
		DependenceRho: cfg.Model.DependenceRho,
		MaxGoals:      cfg.Model.MaxGoals,
	}
	if !math.IsNaN(rho) {
		params.DependenceRho = rho
	}
	if maxGoals >= 0 {
		params.MaxGoals = maxGoals
	}

	req := analysis.Request{
		Parameters:              params,
		Prices:                  buildPrices(),
		Source:                  parsedSource,
		UseDependenceCorrection: dixonColes,
		OverUnderThreshold:      cfg.Model.OverUnderThreshold,
		Samples:                 cfg.Simulation.Samples,
		Seed:                    cfg.Simulation.Seed,
		Workers:                 cfg.Simulation.Workers,
		TopScorelines:           topN,
	}
	if threshold > 0 {
		req.OverUnderThreshold = threshold
	}
	if samples > 0 {
		req.Samples = samples
	}
	if seed != 0 {
		req.Seed = seed
	}
	if workers > 0 {
		req.Workers = workers
	}
	return req, nil
}

func buildPrices() models.MarketPrices {
	optional := func(v float64) *float64 {
		if v > 1 {
			return &v
		}
		return nil
	}
	return models.MarketPrices{
		HomeWin: optional(priceHome),
		Draw:    optional(priceDraw),
		AwayWin: optional(priceAway),
		Over:    optional(priceOver),
		Under:   optional(priceUnder),
		BTTSYes: optional(priceBTTSYes),
		BTTSNo:  optional(priceBTTSNo),
	}
}

func consoleReport(result *analysis.MatchAnalysis) string {
	var builder strings.Builder
	builder.WriteString("Match Analysis\n")
	builder.WriteString("==============\n")
	builder.WriteString(fmt.Sprintf("Source: %s\n", result.Source))
	builder.WriteString(fmt.Sprintf("Expected Goals: home %.2f, away %.2f\n",
		result.Parameters.LambdaHome, result.Parameters.LambdaAway))
	builder.WriteString(fmt.Sprintf("Home Win: %.2f%%\n", result.Outcomes.HomeWin*100))
	builder.WriteString(fmt.Sprintf("Draw: %.2f%%\n", result.Outcomes.Draw*100))
	builder.WriteString(fmt.Sprintf("Away Win: %.2f%%\n", result.Outcomes.AwayWin*100))
	builder.WriteString(fmt.Sprintf("Over %.1f: %.2f%%\n", result.OverUnder.Threshold, result.OverUnder.Over*100))
	builder.WriteString(fmt.Sprintf("Under %.1f: %.2f%%\n", result.OverUnder.Threshold, result.OverUnder.Under*100))
	builder.WriteString(fmt.Sprintf("Both Teams To Score: %.2f%%\n", result.BTTS*100))

	if result.Simulation != nil {
		builder.WriteString(fmt.Sprintf("Simulation Samples: %d\n", result.Simulation.Samples))
	}

	builder.WriteString("\nTop Scorelines\n")
	for _, cell := range result.TopScorelines {
		builder.WriteString(fmt.Sprintf("  %s  %.2f%%\n", cell.Scoreline, cell.Probability*100))
	}

	if len(result.Markets) > 0 {
		builder.WriteString("\nMarket Assessments\n")
		for _, m := range result.Markets {
			fair := "-"
			if !math.IsInf(m.FairPrice, 1) {
				fair = fmt.Sprintf("%.2f", m.FairPrice)
			}
			builder.WriteString(fmt.Sprintf("  %-10s price %.2f  fair %s  EV %+.4f  kelly %.4f  stake %s\n",
				m.Market, m.Price, fair, m.ExpectedValue, m.KellyFraction, m.RecommendedStake))
		}
	}

	if len(result.Recommendations) > 0 {
		builder.WriteString("\nRecommendations\n")
		for _, rec := range result.Recommendations {
			builder.WriteString(fmt.Sprintf("  - %s\n", rec.Reasoning))
		}
	}

	return builder.String()
}
