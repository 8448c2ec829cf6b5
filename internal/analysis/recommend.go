package analysis

import (
	"fmt"

	"github.com/yourusername/match-edge/internal/models"
)

// RecommendationKind classifies what a recommendation is about.
type RecommendationKind string

const (
	RecommendationBestValue   RecommendationKind = "best_value"
	RecommendationGoalsLine   RecommendationKind = "goals_line"
	RecommendationBTTS        RecommendationKind = "btts"
	RecommendationLikelyScore RecommendationKind = "likely_scoreline"
)

// Recommendation is one actionable call derived from the analysis.
type Recommendation struct {
	Kind          RecommendationKind `json:"kind"`
	Market        models.Market      `json:"market,omitempty"`
	Scoreline     *models.Scoreline  `json:"scoreline,omitempty"`
	Probability   float64            `json:"probability"`
	ExpectedValue float64            `json:"expected_value,omitempty"`
	Reasoning     string             `json:"reasoning"`
}

// recommend derives the report's betting calls: the best positive-EV market,
// high-confidence goals-line and BTTS calls, and the most likely scoreline.
func (a *Analyzer) recommend(analysis *MatchAnalysis) []Recommendation {
	var recs []Recommendation

	if best, ok := bestValueMarket(analysis.Markets, a.settings.MinEdge); ok {
		recs = append(recs, Recommendation{
			Kind:          RecommendationBestValue,
			Market:        best.Market,
			Probability:   best.Probability,
			ExpectedValue: best.ExpectedValue,
			Reasoning:     fmt.Sprintf("best expected value at offered prices: %s (EV %.4f)", best.Market, best.ExpectedValue),
		})
	}

	confidence := a.settings.ConfidenceThreshold
	if analysis.OverUnder.Over > confidence {
		recs = append(recs, Recommendation{
			Kind:        RecommendationGoalsLine,
			Market:      models.MarketOver,
			Probability: analysis.OverUnder.Over,
			Reasoning:   fmt.Sprintf("over %.1f goals at %.1f%% probability", analysis.OverUnder.Threshold, analysis.OverUnder.Over*100),
		})
	} else if analysis.OverUnder.Under > confidence {
		recs = append(recs, Recommendation{
			Kind:        RecommendationGoalsLine,
			Market:      models.MarketUnder,
			Probability: analysis.OverUnder.Under,
			Reasoning:   fmt.Sprintf("under %.1f goals at %.1f%% probability", analysis.OverUnder.Threshold, analysis.OverUnder.Under*100),
		})
	}

	if analysis.BTTS > confidence {
		recs = append(recs, Recommendation{
			Kind:        RecommendationBTTS,
			Market:      models.MarketBTTSYes,
			Probability: analysis.BTTS,
			Reasoning:   fmt.Sprintf("both teams to score at %.1f%% probability", analysis.BTTS*100),
		})
	} else if noBTTS := 1 - analysis.BTTS; noBTTS > confidence {
		recs = append(recs, Recommendation{
			Kind:        RecommendationBTTS,
			Market:      models.MarketBTTSNo,
			Probability: noBTTS,
			Reasoning:   fmt.Sprintf("both teams to score 'no' at %.1f%% probability", noBTTS*100),
		})
	}

	if len(analysis.TopScorelines) > 0 {
		top := analysis.TopScorelines[0]
		score := top.Scoreline
		recs = append(recs, Recommendation{
			Kind:        RecommendationLikelyScore,
			Scoreline:   &score,
			Probability: top.Probability,
			Reasoning:   fmt.Sprintf("most likely scoreline %s at %.1f%% probability", score, top.Probability*100),
		})
	}

	return recs
}

func bestValueMarket(markets []models.MarketAssessment, minEdge float64) (models.MarketAssessment, bool) {
	var best models.MarketAssessment
	found := false
	for _, m := range markets {
		if m.ExpectedValue <= minEdge {
			continue
		}
		if !found || m.ExpectedValue > best.ExpectedValue {
			best = m
			found = true
		}
	}
	return best, found
}
