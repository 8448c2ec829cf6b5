// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides a dedicated audit trail for model runs.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis audit logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// LogDistributionBuilt logs the construction of a scoreline distribution.
func (al *AnalysisLogger) LogDistributionBuilt(analysisID string, lambdaHome, lambdaAway, rho float64, maxGoals int, dependenceCorrected bool) {
	al.WithFields(logrus.Fields{
		"analysis_id":          analysisID,
		"lambda_home":          lambdaHome,
		"lambda_away":          lambdaAway,
		"dependence_rho":       rho,
		"max_goals":            maxGoals,
		"dependence_corrected": dependenceCorrected,
	}).Debug("Scoreline distribution built")
}

// LogSimulationRun logs a Monte Carlo simulation run.
func (al *AnalysisLogger) LogSimulationRun(analysisID string, samples int, seed int64, workers int, homeWin, draw, awayWin float64) {
	al.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"samples":     samples,
		"seed":        seed,
		"workers":     workers,
		"home_win":    homeWin,
		"draw":        draw,
		"away_win":    awayWin,
	}).Info("Monte Carlo simulation completed")
}

// LogValueSignal logs a positive expected value finding for a market.
func (al *AnalysisLogger) LogValueSignal(analysisID string, market string, probability, price, expectedValue, kellyFraction float64) {
	al.WithFields(logrus.Fields{
		"analysis_id":    analysisID,
		"market":         market,
		"probability":    probability,
		"price":          price,
		"expected_value": expectedValue,
		"kelly_fraction": kellyFraction,
	}).Info("Value signal recorded")
}
