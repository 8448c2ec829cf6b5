package models

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// Market identifies a priced betting market on a single match.
type Market string

const (
	MarketHomeWin Market = "home_win"
	MarketDraw    Market = "draw"
	MarketAwayWin Market = "away_win"
	MarketOver    Market = "over"
	MarketUnder   Market = "under"
	MarketBTTSYes Market = "btts_yes"
	MarketBTTSNo  Market = "btts_no"
)

// MarketPrices holds the bookmaker's offered decimal odds (payout multiple
// including stake). Nil means the market was not priced; only priced markets
// are assessed.
type MarketPrices struct {
	HomeWin *float64 `json:"home_win,omitempty" validate:"omitempty,gt=1"`
	Draw    *float64 `json:"draw,omitempty" validate:"omitempty,gt=1"`
	AwayWin *float64 `json:"away_win,omitempty" validate:"omitempty,gt=1"`
	Over    *float64 `json:"over,omitempty" validate:"omitempty,gt=1"`
	Under   *float64 `json:"under,omitempty" validate:"omitempty,gt=1"`
	BTTSYes *float64 `json:"btts_yes,omitempty" validate:"omitempty,gt=1"`
	BTTSNo  *float64 `json:"btts_no,omitempty" validate:"omitempty,gt=1"`
}

// IsEmpty reports whether no market carries a price.
func (m MarketPrices) IsEmpty() bool {
	return m.HomeWin == nil && m.Draw == nil && m.AwayWin == nil &&
		m.Over == nil && m.Under == nil && m.BTTSYes == nil && m.BTTSNo == nil
}

// MarketAssessment holds the value signals for one (probability, price) pair.
// FairPrice is +Inf when the probability is zero.
type MarketAssessment struct {
	Market           Market          `json:"market"`
	Probability      float64         `json:"probability"`
	Price            float64         `json:"price"`
	ExpectedValue    float64         `json:"expected_value"`
	FairPrice        float64         `json:"fair_price"`
	KellyFraction    float64         `json:"kelly_fraction"`
	RecommendedStake decimal.Decimal `json:"recommended_stake"`
}

// HasValue reports whether the offered price overpays the model estimate.
func (a MarketAssessment) HasValue() bool {
	return a.ExpectedValue > 0
}

// MarshalJSON renders an infinite fair price as null; encoding/json cannot
// represent +Inf.
func (a MarketAssessment) MarshalJSON() ([]byte, error) {
	type alias MarketAssessment
	out := struct {
		alias
		FairPrice *float64 `json:"fair_price"`
	}{alias: alias(a)}
	if !math.IsInf(a.FairPrice, 1) {
		out.FairPrice = &a.FairPrice
	}
	return json.Marshal(out)
}
